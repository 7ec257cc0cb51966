// Package repo exposes the spec §6 external-interface surface: a single
// façade wiring the object store, ref resolver, history walker, and tree
// differ into the read-only operations an HTTP/query layer calls into.
package repo

import (
	"strings"

	"github.com/nivl-successor/gitlens/diffutil"
	"github.com/nivl-successor/gitlens/gerrors"
	"github.com/nivl-successor/gitlens/history"
	"github.com/nivl-successor/gitlens/object"
	"github.com/nivl-successor/gitlens/oid"
	"github.com/nivl-successor/gitlens/refs"
	"github.com/nivl-successor/gitlens/store"
	"github.com/nivl-successor/gitlens/treediff"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// Repository is the read-only façade over a single on-disk repository. It
// is wired once at Open time and is safe for concurrent use by multiple
// readers (spec §5).
type Repository struct {
	store   *store.Store
	refs    *refs.Resolver
	history *history.Walker
	diff    *treediff.Differ
	logger  logrus.FieldLogger
}

// Option configures a Repository at Open time.
type Option func(*options)

type options struct {
	cacheEntries int
	logger       logrus.FieldLogger
}

// WithCache bounds the object store's in-memory cache to maxEntries
// decoded objects. Zero disables caching.
func WithCache(maxEntries int) Option {
	return func(o *options) { o.cacheEntries = maxEntries }
}

// WithLogger injects a logger used for the recoverable-condition
// diagnostics described in spec §7. Defaults to logrus.StandardLogger().
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) { o.logger = logger }
}

// Open validates that root looks like a repository (spec §6 input
// layout) and wires a Repository against it. Returns
// gerrors.ErrNotARepository if root has no objects/ directory — fatal at
// init, per spec §7.
func Open(root string, opts ...Option) (*Repository, error) {
	if !store.IsValidRepository(root) {
		return nil, xerrors.Errorf("%s: %w", root, gerrors.ErrNotARepository)
	}

	o := &options{cacheEntries: store.DefaultCacheEntries}
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := store.New(root, store.WithCache(o.cacheEntries))
	return &Repository{
		store:   s,
		refs:    refs.New(root, s, logger),
		history: history.New(s, logger),
		diff:    treediff.New(s),
		logger:  logger,
	}, nil
}

// ReadObject reads a single object by id.
func (r *Repository) ReadObject(id oid.Oid) (object.Kind, []byte, error) {
	o, err := r.store.Read(id)
	if err != nil {
		return 0, nil, err
	}
	return o.Kind(), o.Bytes(), nil
}

// HasObject reports whether id exists in the store.
func (r *Repository) HasObject(id oid.Oid) (bool, error) {
	return r.store.Has(id)
}

// ListBranches enumerates every branch ref.
func (r *Repository) ListBranches() ([]refs.Branch, error) {
	return r.refs.ListBranches()
}

// ListTags enumerates every tag ref, classified annotated vs lightweight.
func (r *Repository) ListTags() ([]refs.Tag, error) {
	return r.refs.ListTags()
}

// CurrentBranch returns the branch HEAD points to, or nil if detached.
func (r *Repository) CurrentBranch() (*string, error) {
	return r.refs.CurrentBranch()
}

// GetCommit decodes a single commit by id.
func (r *Repository) GetCommit(id oid.Oid) (*object.Commit, error) {
	o, err := r.store.Read(id)
	if err != nil {
		return nil, err
	}
	return o.AsCommit()
}

// WalkHistory returns up to limit commits reachable from roots, in BFS
// order (spec §4.4).
func (r *Repository) WalkHistory(roots []oid.Oid, limit int) []*object.Commit {
	return r.history.Walk(roots, limit)
}

// GraphNode is a flattened commit view augmented with the branch and tag
// names whose refs resolve exactly to that commit (spec §3).
type GraphNode struct {
	Commit   *object.Commit
	Branches []string
	Tags     []string
}

// CommitGraph returns WalkHistory's output joined with the ref name sets
// that point exactly at each commit. The branch/tag index is built once
// per call rather than scanning refs per commit (SPEC_FULL.md §D.1).
func (r *Repository) CommitGraph(roots []oid.Oid, limit int) ([]GraphNode, error) {
	commits := r.history.Walk(roots, limit)

	branches, err := r.refs.ListBranches()
	if err != nil {
		return nil, xerrors.Errorf("commit graph: %w", err)
	}
	tags, err := r.refs.ListTags()
	if err != nil {
		return nil, xerrors.Errorf("commit graph: %w", err)
	}

	branchByID := make(map[oid.Oid][]string)
	for _, b := range branches {
		branchByID[b.Target] = append(branchByID[b.Target], b.Name)
	}
	tagByID := make(map[oid.Oid][]string)
	for _, t := range tags {
		tagByID[t.CommitID] = append(tagByID[t.CommitID], t.Name)
	}

	nodes := make([]GraphNode, 0, len(commits))
	for _, c := range commits {
		nodes = append(nodes, GraphNode{
			Commit:   c,
			Branches: branchByID[c.ID],
			Tags:     tagByID[c.ID],
		})
	}
	return nodes, nil
}

// Stats is the {files_changed, additions, deletions} bundle summed across
// a set of FileChanges (spec §6).
type Stats struct {
	FilesChanged int
	Additions    int
	Deletions    int
}

func statsOf(changes []treediff.FileChange) Stats {
	s := Stats{FilesChanged: len(changes)}
	for _, c := range changes {
		s.Additions += c.Additions
		s.Deletions += c.Deletions
	}
	return s
}

// CommitDetails decodes a commit, then diffs it against its first
// parent's tree (root commits compare against an empty tree), per spec
// §6: "uses the first parent's tree as the old side for merge commits".
func (r *Repository) CommitDetails(id oid.Oid) (*object.Commit, []treediff.FileChange, Stats, error) {
	commit, err := r.GetCommit(id)
	if err != nil {
		return nil, nil, Stats{}, err
	}

	var oldTreeID oid.Oid
	if len(commit.ParentIDs) > 0 {
		parent, err := r.GetCommit(commit.ParentIDs[0])
		if err != nil {
			return nil, nil, Stats{}, xerrors.Errorf("commit %s: first parent %s: %w", id, commit.ParentIDs[0], err)
		}
		oldTreeID = parent.TreeID
	}

	changes, err := r.diff.Compare(oldTreeID, commit.TreeID)
	if err != nil {
		return nil, nil, Stats{}, xerrors.Errorf("commit %s: %w", id, err)
	}
	return commit, changes, statsOf(changes), nil
}

// CompareTrees diffs two tree snapshots directly. oldID may be the zero
// Oid (treated as an empty tree).
func (r *Repository) CompareTrees(oldID, newID oid.Oid) ([]treediff.FileChange, error) {
	return r.diff.Compare(oldID, newID)
}

// DiffBlobs diffs two blobs by id, either of which may be the zero Oid
// (treated as empty content, per spec §4.6).
func (r *Repository) DiffBlobs(oldID, newID oid.Oid, path string) (diffutil.Record, error) {
	oldContent, err := r.blobContentOrEmpty(oldID)
	if err != nil {
		return diffutil.Record{}, err
	}
	newContent, err := r.blobContentOrEmpty(newID)
	if err != nil {
		return diffutil.Record{}, err
	}
	return diffutil.Diff(oldContent, newContent, path), nil
}

func (r *Repository) blobContentOrEmpty(id oid.Oid) ([]byte, error) {
	if id.IsZero() {
		return nil, nil
	}
	o, err := r.store.Read(id)
	if err != nil {
		return nil, err
	}
	blob, err := o.AsBlob()
	if err != nil {
		return nil, err
	}
	return blob.Content, nil
}

// CommitFilter is the predicate the commits query path applies to an
// already-decoded commit list (spec §6 "Filter predicate").
type CommitFilter struct {
	Author string
	Search string
	Since  *int64
	Until  *int64
	Path   string
}

// matches reports whether c satisfies every non-zero field of f. Path
// filtering requires diffing c against its first parent, which is the
// expensive branch — it's only paid when Path is set.
func (r *Repository) matches(c *object.Commit, f CommitFilter) bool {
	if f.Author != "" {
		needle := strings.ToLower(f.Author)
		if !strings.Contains(strings.ToLower(c.Author.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Author.Email), needle) {
			return false
		}
	}
	if f.Search != "" {
		if !strings.Contains(strings.ToLower(c.FullMessage), strings.ToLower(f.Search)) {
			return false
		}
	}
	if f.Since != nil && c.Author.Timestamp < *f.Since {
		return false
	}
	if f.Until != nil && c.Author.Timestamp > *f.Until {
		return false
	}
	if f.Path != "" {
		var oldTreeID oid.Oid
		if len(c.ParentIDs) > 0 {
			if parent, err := r.GetCommit(c.ParentIDs[0]); err == nil {
				oldTreeID = parent.TreeID
			}
		}
		changes, err := r.diff.Compare(oldTreeID, c.TreeID)
		if err != nil {
			return false
		}
		found := false
		for _, ch := range changes {
			if ch.Path == f.Path {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// overfetchFactor compensates for selective filters: the walk over-fetches
// this many times limit before filtering down, per spec §6.
const overfetchFactor = 3

// ListCommits walks history from roots and returns up to limit commits
// matching filter, over-fetching candidates to compensate for selective
// filters (spec §6).
func (r *Repository) ListCommits(roots []oid.Oid, limit int, filter CommitFilter) []*object.Commit {
	fetch := limit * overfetchFactor
	if fetch < limit {
		fetch = limit // overflow guard for very large limits
	}

	candidates := r.history.Walk(roots, fetch)
	result := make([]*object.Commit, 0, limit)
	for _, c := range candidates {
		if len(result) >= limit {
			break
		}
		if r.matches(c, filter) {
			result = append(result, c)
		}
	}
	return result
}

// ResolveRevision resolves a human-given name to a commit id: HEAD, a
// branch name, a tag name, a full hex hash, or a short hash prefix
// (SPEC_FULL.md §D.1, grounded on cmd/git-go/cat_file.go's toTry chain).
func (r *Repository) ResolveRevision(name string) (oid.Oid, error) {
	if name == "HEAD" {
		return r.refs.HeadCommit()
	}

	if id, err := oid.FromHex(name); err == nil {
		return id, nil
	}

	if branches, err := r.refs.ListBranches(); err == nil {
		for _, b := range branches {
			if b.Name == name {
				return b.Target, nil
			}
		}
	}
	if tags, err := r.refs.ListTags(); err == nil {
		for _, t := range tags {
			if t.Name == name {
				return t.CommitID, nil
			}
		}
	}

	if id, err := r.store.ResolveShortHash(name); err == nil {
		return id, nil
	}

	return oid.Null, xerrors.Errorf("%s: %w", name, gerrors.ErrNotFound)
}

// Root returns the repository path this façade was opened against.
func (r *Repository) Root() string {
	return r.store.Root()
}
