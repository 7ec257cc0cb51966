// Package testhelper builds small synthetic repositories on disk for
// tests, by writing loose objects and refs directly rather than shelling
// out to a real git binary.
package testhelper

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/nivl-successor/gitlens/internal/gitpath"
	"github.com/nivl-successor/gitlens/oid"
	"github.com/stretchr/testify/require"
)

// NewRepo creates an empty repository layout (objects/, refs/heads/,
// refs/tags/) in a fresh temp directory and returns its root.
func NewRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, gitpath.ObjectsDir), 0o755))
	require.NoError(t, os.MkdirAll(gitpath.HeadsPath(root), 0o755))
	require.NoError(t, os.MkdirAll(gitpath.TagsPath(root), 0o755))
	return root
}

// WriteLooseObject compresses kind+payload into the "<kind> <size>\0<payload>"
// on-disk framing and writes it as a loose object, returning its id.
func WriteLooseObject(t *testing.T, root, kind string, payload []byte) oid.Oid {
	t.Helper()

	header := fmt.Sprintf("%s %d\x00", kind, len(payload))
	raw := append([]byte(header), payload...)
	id := oid.FromContent(raw)

	p := gitpath.ObjectPath(root, id.String())
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))

	buf := new(bytes.Buffer)
	zw := zlib.NewWriter(buf)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o444))
	return id
}

// WriteBranch writes a loose branch ref refs/heads/<name> pointing at id.
func WriteBranch(t *testing.T, root, name string, id oid.Oid) {
	t.Helper()
	writeRef(t, filepath.Join(gitpath.HeadsPath(root), name), id.String()+"\n")
}

// WriteTag writes a loose tag ref refs/tags/<name> pointing at id (either
// a commit, for a lightweight tag, or a tag object, for an annotated one).
func WriteTag(t *testing.T, root, name string, id oid.Oid) {
	t.Helper()
	writeRef(t, filepath.Join(gitpath.TagsPath(root), name), id.String()+"\n")
}

// WriteHeadSymbolic points HEAD at a branch.
func WriteHeadSymbolic(t *testing.T, root, branch string) {
	t.Helper()
	require.NoError(t, os.WriteFile(gitpath.HeadPath(root), []byte("ref: refs/heads/"+branch+"\n"), 0o644))
}

// WriteHeadDetached points HEAD directly at a commit.
func WriteHeadDetached(t *testing.T, root string, id oid.Oid) {
	t.Helper()
	require.NoError(t, os.WriteFile(gitpath.HeadPath(root), []byte(id.String()+"\n"), 0o644))
}

func writeRef(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
