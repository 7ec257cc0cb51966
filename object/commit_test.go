package object_test

import (
	"strings"
	"testing"

	"github.com/nivl-successor/gitlens/object"
	"github.com/nivl-successor/gitlens/oid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	treeHex   = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"
	parentHex = "9b91da06e69613397b38e0808e0ba5ee6983251b"
)

func TestDecodeCommitMinimal(t *testing.T) {
	t.Parallel()

	payload := []byte(
		"tree " + treeHex + "\n" +
			"author Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"committer Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"\n" +
			"initial commit\n",
	)
	id := oid.FromContent(payload)
	c, err := object.DecodeCommit(id, payload)
	require.NoError(t, err)

	assert.Equal(t, treeHex, c.TreeID.String())
	assert.Empty(t, c.ParentIDs)
	assert.Equal(t, "Jane Doe", c.Author.Name)
	assert.Equal(t, "initial commit", c.Message)
	assert.Equal(t, "initial commit", c.FullMessage)
}

func TestDecodeCommitMultipleParentsPreservesOrder(t *testing.T) {
	t.Parallel()

	secondParent := "1111111111111111111111111111111111111111"
	payload := []byte(
		"tree " + treeHex + "\n" +
			"parent " + parentHex + "\n" +
			"parent " + secondParent + "\n" +
			"author Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"committer Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"\n" +
			"merge commit\n",
	)
	id := oid.FromContent(payload)
	c, err := object.DecodeCommit(id, payload)
	require.NoError(t, err)

	require.Len(t, c.ParentIDs, 2)
	assert.Equal(t, parentHex, c.ParentIDs[0].String())
	assert.Equal(t, secondParent, c.ParentIDs[1].String())
}

func TestDecodeCommitMessageIsFirstPhysicalLine(t *testing.T) {
	t.Parallel()

	payload := []byte(
		"tree " + treeHex + "\n" +
			"author Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"committer Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"\n" +
			"Summary line\n\nBody paragraph with more detail.\n",
	)
	id := oid.FromContent(payload)
	c, err := object.DecodeCommit(id, payload)
	require.NoError(t, err)

	assert.Equal(t, "Summary line", c.Message)
	assert.True(t, strings.Contains(c.FullMessage, "Body paragraph"))
}

func TestDecodeCommitSkipsGPGSignatureContinuationLines(t *testing.T) {
	t.Parallel()

	payload := []byte(
		"tree " + treeHex + "\n" +
			"author Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"committer Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"gpgsig -----BEGIN PGP SIGNATURE-----\n" +
			" iQIzBAABCAAdFiEE\n" +
			" -----END PGP SIGNATURE-----\n" +
			"\n" +
			"signed commit\n",
	)
	id := oid.FromContent(payload)
	c, err := object.DecodeCommit(id, payload)
	require.NoError(t, err)

	assert.Equal(t, "signed commit", c.Message)
	assert.Equal(t, treeHex, c.TreeID.String())
}

func TestDecodeCommitMalformedAuthorFallsBackToSentinel(t *testing.T) {
	t.Parallel()

	payload := []byte(
		"tree " + treeHex + "\n" +
			"author not a valid identity line\n" +
			"committer Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"\n" +
			"oops\n",
	)
	id := oid.FromContent(payload)
	c, err := object.DecodeCommit(id, payload)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", c.Author.Name)
}

func TestDecodeCommitMissingTreeIsInvalid(t *testing.T) {
	t.Parallel()

	payload := []byte(
		"author Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"committer Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"\n" +
			"no tree\n",
	)
	id := oid.FromContent(payload)
	_, err := object.DecodeCommit(id, payload)
	require.ErrorIs(t, err, object.ErrCommitInvalid)
}

func TestCommitEncodeRoundTripsHeaderRegion(t *testing.T) {
	t.Parallel()

	payload := []byte(
		"tree " + treeHex + "\n" +
			"parent " + parentHex + "\n" +
			"author Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"committer Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"\n" +
			"initial commit\n",
	)
	id := oid.FromContent(payload)
	c, err := object.DecodeCommit(id, payload)
	require.NoError(t, err)

	assert.Equal(t, payload, c.Encode())
}
