// Package refs implements the reference resolver: branch and tag
// enumeration and HEAD resolution from loose ref files. Packed refs
// (packed-refs) and symbolic-ref chains beyond HEAD are out of scope
// (spec §4.3, §9).
package refs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nivl-successor/gitlens/gerrors"
	"github.com/nivl-successor/gitlens/internal/gitpath"
	"github.com/nivl-successor/gitlens/object"
	"github.com/nivl-successor/gitlens/oid"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// ObjectReader is the narrow object-store dependency the resolver needs:
// enough to tell an annotated tag object from a lightweight tag's bare
// commit pointer.
type ObjectReader interface {
	Read(id oid.Oid) (*object.Object, error)
}

// Branch is a named pointer into refs/heads/, with whether it is the
// branch HEAD currently points to.
type Branch struct {
	Name      string
	Target    oid.Oid
	IsCurrent bool
}

// TagKind distinguishes a lightweight ref-only tag from an annotated tag
// object.
type TagKind int8

const (
	// Lightweight tags are plain refs pointing straight at a commit.
	Lightweight TagKind = iota + 1
	// Annotated tags wrap a target with their own identity and message.
	Annotated
)

// Tag is a named pointer into refs/tags/.
type Tag struct {
	Name     string
	Kind     TagKind
	CommitID oid.Oid   // the commit the tag ultimately resolves to
	TagID    oid.Oid   // zero for lightweight tags
	Tag      *object.Tag // nil for lightweight tags
}

// Resolver enumerates refs under a repository root.
type Resolver struct {
	root   string
	store  ObjectReader
	logger logrus.FieldLogger
}

// New creates a Resolver rooted at root (the repository's .git
// directory), using store to classify tag refs.
func New(root string, store ObjectReader, logger logrus.FieldLogger) *Resolver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Resolver{root: root, store: store, logger: logger}
}

// ListBranches enumerates every file under refs/heads/, recursively, so
// that nested names like "feature/foo" are preserved. Unreadable files
// are skipped with a diagnostic rather than failing the whole call.
func (r *Resolver) ListBranches() ([]Branch, error) {
	current, _ := r.CurrentBranch()

	var branches []Branch
	base := gitpath.HeadsPath(r.root)
	err := walkRegularFiles(base, func(relPath string) {
		name := filepath.ToSlash(relPath)
		id, err := r.readRefFile(filepath.Join(base, relPath))
		if err != nil {
			r.logger.WithError(err).WithField("ref", name).Warn("skipping unreadable branch ref")
			return
		}
		branches = append(branches, Branch{
			Name:      name,
			Target:    id,
			IsCurrent: current != nil && *current == name,
		})
	})
	if err != nil {
		return nil, xerrors.Errorf("listing branches: %w", err)
	}
	return branches, nil
}

// ListTags enumerates every file under refs/tags/. Each ref is probed
// against the object store: if it resolves to a tag object, the tag is
// annotated and its target is the tag object's own target; otherwise
// the ref's value is itself the commit id (spec §4.3).
func (r *Resolver) ListTags() ([]Tag, error) {
	var tags []Tag
	base := gitpath.TagsPath(r.root)
	err := walkRegularFiles(base, func(relPath string) {
		name := filepath.ToSlash(relPath)
		id, err := r.readRefFile(filepath.Join(base, relPath))
		if err != nil {
			r.logger.WithError(err).WithField("ref", name).Warn("skipping unreadable tag ref")
			return
		}

		tag, err := r.classifyTag(name, id)
		if err != nil {
			r.logger.WithError(err).WithField("ref", name).Warn("skipping unresolvable tag ref")
			return
		}
		tags = append(tags, *tag)
	})
	if err != nil {
		return nil, xerrors.Errorf("listing tags: %w", err)
	}
	return tags, nil
}

func (r *Resolver) classifyTag(name string, target oid.Oid) (*Tag, error) {
	o, err := r.store.Read(target)
	if err != nil {
		if xerrors.Is(err, gerrors.ErrNotFound) {
			return nil, xerrors.Errorf("tag %s: target %s: %w", name, target, err)
		}
		return nil, err
	}

	if o.Kind() != object.KindTag {
		return &Tag{Name: name, Kind: Lightweight, CommitID: target}, nil
	}

	decoded, err := o.AsTag()
	if err != nil {
		return nil, xerrors.Errorf("tag %s: %w", name, err)
	}
	commitID := decoded.Target
	if commitID.IsZero() {
		// Missing "object" field: fall back to the ref's raw value
		// (spec §4.2.4).
		commitID = target
	}
	return &Tag{Name: name, Kind: Annotated, CommitID: commitID, TagID: o.ID(), Tag: decoded}, nil
}

// CurrentBranch returns the name of the branch HEAD points to, or nil if
// HEAD is detached (or unreadable).
func (r *Resolver) CurrentBranch() (*string, error) {
	data, err := os.ReadFile(gitpath.HeadPath(r.root))
	if err != nil {
		return nil, xerrors.Errorf("reading HEAD: %w", err)
	}
	content := strings.TrimSpace(string(data))

	const prefix = "ref: refs/heads/"
	if !strings.HasPrefix(content, prefix) {
		return nil, nil
	}
	name := strings.TrimPrefix(content, prefix)
	return &name, nil
}

// HeadCommit resolves HEAD down to the commit id it ultimately points
// at, whether HEAD is symbolic or detached.
func (r *Resolver) HeadCommit() (oid.Oid, error) {
	data, err := os.ReadFile(gitpath.HeadPath(r.root))
	if err != nil {
		return oid.Null, xerrors.Errorf("reading HEAD: %w", err)
	}
	content := strings.TrimSpace(string(data))

	const prefix = "ref: "
	if strings.HasPrefix(content, prefix) {
		target := strings.TrimPrefix(content, prefix)
		id, err := r.readRefFile(filepath.Join(r.root, filepath.FromSlash(target)))
		if err != nil {
			return oid.Null, xerrors.Errorf("resolving HEAD -> %s: %w", target, err)
		}
		return id, nil
	}
	return oid.FromHex(content)
}

func (r *Resolver) readRefFile(path string) (oid.Oid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return oid.Null, err
	}
	return oid.FromHex(strings.TrimSpace(string(data)))
}

// walkRegularFiles recursively visits every regular file under root,
// invoking fn with the file's path relative to root (forward-slash
// joined). Missing root directories are treated as "no entries" rather
// than an error, matching an empty repository's refs/heads or refs/tags.
func walkRegularFiles(root string, fn func(relPath string)) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		fn(rel)
		return nil
	})
}
