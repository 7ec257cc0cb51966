// Package treediff implements the Tree Differ: recursive (explicit
// work-queue) materialization of a tree into a path-keyed blob map, and
// the path-set-union comparison between two tree snapshots (spec §4.5).
package treediff

import (
	"sort"

	"github.com/nivl-successor/gitlens/diffutil"
	"github.com/nivl-successor/gitlens/object"
	"github.com/nivl-successor/gitlens/oid"
	"golang.org/x/xerrors"
)

// ObjectReader is the narrow object-store dependency the differ needs.
type ObjectReader interface {
	Read(id oid.Oid) (*object.Object, error)
}

// ChangeKind classifies how a path changed between two tree snapshots.
type ChangeKind int8

const (
	// Added means the path exists only in the new tree.
	Added ChangeKind = iota + 1
	// Modified means the path's blob differs between the two trees.
	Modified
	// Deleted means the path exists only in the old tree.
	Deleted
)

// String renders the ChangeKind the way it's reported over the API.
func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// FileChange is one path-level delta between two tree snapshots, carrying
// the diff engine's add/delete counts (spec §3 "File Change").
type FileChange struct {
	Path      string
	Kind      ChangeKind
	Additions int
	Deletions int
}

// Differ flattens and compares trees against an object store.
type Differ struct {
	store ObjectReader
}

// New creates a Differ backed by store.
func New(store ObjectReader) *Differ {
	return &Differ{store: store}
}

// queueItem is one pending sub-tree to materialize, carrying the path
// prefix accumulated so far.
type queueItem struct {
	id     oid.Oid
	prefix string
}

// Flatten materializes a tree into a map of forward-slash path to blob
// id, using an explicit work queue rather than native recursion (spec §9:
// "adversarial inputs could blow a stack"). Submodule entries (mode
// 160000) are skipped, never traversed. A sub-tree that fails to read
// contributes nothing to the result but does not abort the rest of the
// walk (spec §4.5).
func (d *Differ) Flatten(treeID oid.Oid) (map[string]oid.Oid, error) {
	result := make(map[string]oid.Oid)
	if treeID.IsZero() {
		return result, nil
	}

	queue := []queueItem{{id: treeID, prefix: ""}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		tree, err := d.readTree(item.id)
		if err != nil {
			continue
		}

		for _, entry := range tree.Entries {
			path := entry.Name
			if item.prefix != "" {
				path = item.prefix + "/" + entry.Name
			}
			switch entry.Kind {
			case object.EntryBlob:
				result[path] = entry.ID
			case object.EntryTree:
				queue = append(queue, queueItem{id: entry.ID, prefix: path})
			case object.EntryCommit:
				// Submodule: recognized, never traversed (spec §3, §4.5).
			}
		}
	}
	return result, nil
}

func (d *Differ) readTree(id oid.Oid) (*object.Tree, error) {
	o, err := d.store.Read(id)
	if err != nil {
		return nil, err
	}
	return o.AsTree()
}

// Compare flattens oldTreeID and newTreeID and returns the FileChange set
// between them, sorted lexicographically by path (Unicode code point
// order, per spec §9). oldTreeID may be the zero Oid (root commit: empty
// old tree, every leaf reported as Added).
func (d *Differ) Compare(oldTreeID, newTreeID oid.Oid) ([]FileChange, error) {
	oldFiles, err := d.Flatten(oldTreeID)
	if err != nil {
		return nil, xerrors.Errorf("flattening old tree %s: %w", oldTreeID, err)
	}
	newFiles, err := d.Flatten(newTreeID)
	if err != nil {
		return nil, xerrors.Errorf("flattening new tree %s: %w", newTreeID, err)
	}

	paths := make(map[string]struct{}, len(oldFiles)+len(newFiles))
	for p := range oldFiles {
		paths[p] = struct{}{}
	}
	for p := range newFiles {
		paths[p] = struct{}{}
	}
	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	var changes []FileChange
	for _, p := range sorted {
		oldID, inOld := oldFiles[p]
		newID, inNew := newFiles[p]
		if inOld && inNew && oldID == newID {
			continue
		}

		var kind ChangeKind
		var oldBlob, newBlob []byte
		switch {
		case !inOld:
			kind = Added
			newBlob, err = d.blobContent(newID)
		case !inNew:
			kind = Deleted
			oldBlob, err = d.blobContent(oldID)
		default:
			kind = Modified
			oldBlob, err = d.blobContent(oldID)
			if err == nil {
				newBlob, err = d.blobContent(newID)
			}
		}
		if err != nil {
			return nil, xerrors.Errorf("diffing %s: %w", p, err)
		}

		rec := diffutil.Diff(oldBlob, newBlob, p)
		changes = append(changes, FileChange{
			Path:      p,
			Kind:      kind,
			Additions: rec.Additions,
			Deletions: rec.Deletions,
		})
	}
	return changes, nil
}

func (d *Differ) blobContent(id oid.Oid) ([]byte, error) {
	o, err := d.store.Read(id)
	if err != nil {
		return nil, err
	}
	blob, err := o.AsBlob()
	if err != nil {
		return nil, err
	}
	return blob.Content, nil
}
