// Package gitpath contains the path constants used to locate files inside
// a repository's .git directory.
package gitpath

import "path/filepath"

// Well-known files and directories inside .git/.
const (
	HEAD          = "HEAD"
	ObjectsDir    = "objects"
	RefsDir       = "refs"
	RefsHeadsDir  = "refs/heads"
	RefsTagsDir   = "refs/tags"
)

// ObjectPath returns the on-disk path of a loose object given its 40-char
// hex id: .git/objects/XX/YYYY...
func ObjectPath(root, hexOid string) string {
	return filepath.Join(root, ObjectsDir, hexOid[:2], hexOid[2:])
}

// ObjectsShard returns the directory holding every loose object sharing
// the given 2-character hex prefix.
func ObjectsShard(root, prefix string) string {
	return filepath.Join(root, ObjectsDir, prefix)
}

// HeadsPath returns the directory holding loose branch refs.
func HeadsPath(root string) string {
	return filepath.Join(root, RefsHeadsDir)
}

// TagsPath returns the directory holding loose tag refs.
func TagsPath(root string) string {
	return filepath.Join(root, RefsTagsDir)
}

// HeadPath returns the path of the HEAD file.
func HeadPath(root string) string {
	return filepath.Join(root, HEAD)
}
