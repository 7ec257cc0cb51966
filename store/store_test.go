package store_test

import (
	"bytes"
	"compress/zlib"
	"os"
	"path/filepath"
	"testing"

	"github.com/nivl-successor/gitlens/gerrors"
	"github.com/nivl-successor/gitlens/internal/testhelper"
	"github.com/nivl-successor/gitlens/object"
	"github.com/nivl-successor/gitlens/oid"
	"github.com/nivl-successor/gitlens/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLooseBlob(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	id := testhelper.WriteLooseObject(t, root, "blob", []byte("hello\n"))

	s := store.New(root)
	o, err := s.Read(id)
	require.NoError(t, err)
	assert.Equal(t, object.KindBlob, o.Kind())
	assert.Equal(t, "hello\n", string(o.Bytes()))
	assert.Equal(t, id, o.ID())
}

func TestReadMissingObjectIsNotFound(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	s := store.New(root)

	missing, err := oid.FromHex("9b91da06e69613397b38e0808e0ba5ee6983251b")
	require.NoError(t, err)

	_, err = s.Read(missing)
	assert.ErrorIs(t, err, gerrors.ErrNotFound)
}

func TestReadCorruptObjectSizeMismatch(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)

	// Write a loose object whose declared size doesn't match its payload.
	id, err := oid.FromHex("9b91da06e69613397b38e0808e0ba5ee6983251b")
	require.NoError(t, err)
	p := filepath.Join(root, "objects", id.String()[:2], id.String()[2:])
	require.NoError(t, writeCorruptObject(t, p))

	s := store.New(root)
	_, err = s.Read(id)
	assert.ErrorIs(t, err, gerrors.ErrCorrupt)
}

func TestHasObject(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	id := testhelper.WriteLooseObject(t, root, "blob", []byte("x"))

	s := store.New(root)
	found, err := s.Has(id)
	require.NoError(t, err)
	assert.True(t, found)

	missing, err := oid.FromHex("000000000000000000000000000000000000000a")
	require.NoError(t, err)
	found, err = s.Has(missing)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheServesRepeatedReads(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	id := testhelper.WriteLooseObject(t, root, "blob", []byte("cached"))

	s := store.New(root, store.WithCache(16))
	first, err := s.Read(id)
	require.NoError(t, err)
	second, err := s.Read(id)
	require.NoError(t, err)
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestResolveShortHash(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	id := testhelper.WriteLooseObject(t, root, "blob", []byte("short hash target"))

	s := store.New(root)
	resolved, err := s.ResolveShortHash(id.String()[:8])
	require.NoError(t, err)
	assert.Equal(t, id, resolved)
}

func TestResolveShortHashNotFound(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	s := store.New(root)
	_, err := s.ResolveShortHash("deadbeef")
	assert.ErrorIs(t, err, gerrors.ErrNotFound)
}

func TestIsValidRepository(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	assert.True(t, store.IsValidRepository(root))
	assert.False(t, store.IsValidRepository(t.TempDir()))
}

func writeCorruptObject(t *testing.T, path string) error {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	buf := new(bytes.Buffer)
	zw := zlib.NewWriter(buf)
	_, err := zw.Write([]byte("blob 100\x00short"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return os.WriteFile(path, buf.Bytes(), 0o444)
}
