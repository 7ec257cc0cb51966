package diffutil_test

import (
	"testing"

	"github.com/nivl-successor/gitlens/diffutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffIdenticalInputsIsEmpty(t *testing.T) {
	t.Parallel()

	rec := diffutil.Diff([]byte("a\nb\nc\n"), []byte("a\nb\nc\n"), "f.txt")
	assert.False(t, rec.IsBinary)
	assert.Empty(t, rec.Diff)
	assert.Zero(t, rec.Additions)
	assert.Zero(t, rec.Deletions)
}

func TestDiffAppendedLine(t *testing.T) {
	t.Parallel()

	rec := diffutil.Diff([]byte("hello\n"), []byte("hello\nworld\n"), "a.txt")
	assert.False(t, rec.IsBinary)
	assert.Equal(t, 1, rec.Additions)
	assert.Equal(t, 0, rec.Deletions)
	assert.Contains(t, rec.Diff, "--- a/a.txt")
	assert.Contains(t, rec.Diff, "+++ b/a.txt")
	assert.Contains(t, rec.Diff, "+world\n")
}

func TestDiffAgainstEmptyOldIsAllAdditions(t *testing.T) {
	t.Parallel()

	rec := diffutil.Diff(nil, []byte("a\nb\n"), "new.txt")
	assert.Equal(t, 2, rec.Additions)
	assert.Equal(t, 0, rec.Deletions)
}

func TestDiffAgainstEmptyNewIsAllDeletions(t *testing.T) {
	t.Parallel()

	rec := diffutil.Diff([]byte("a\nb\n"), nil, "old.txt")
	assert.Equal(t, 0, rec.Additions)
	assert.Equal(t, 2, rec.Deletions)
}

func TestDiffBinaryDetection(t *testing.T) {
	t.Parallel()

	binary := []byte{0, 1, 2, 255}
	rec := diffutil.Diff(nil, binary, "x.bin")
	assert.True(t, rec.IsBinary)
	assert.Empty(t, rec.Diff)
	assert.Zero(t, rec.Additions)
	assert.Zero(t, rec.Deletions)
}

func TestDiffEveryPlusLineAppearsInNewText(t *testing.T) {
	t.Parallel()

	oldText := []byte("a\nb\nc\nd\ne\nf\ng\n")
	newText := []byte("a\nb\nX\nd\ne\nf\ng\n")
	rec := diffutil.Diff(oldText, newText, "f.txt")
	require.NotEmpty(t, rec.Diff)
	assert.Contains(t, rec.Diff, "-c\n")
	assert.Contains(t, rec.Diff, "+X\n")
	assert.Equal(t, 1, rec.Additions)
	assert.Equal(t, 1, rec.Deletions)
}

func TestMyersDiffEmptySequences(t *testing.T) {
	t.Parallel()

	assert.Empty(t, diffutil.MyersDiff([]string{}, []string{}))
}

func TestMyersDiffNoChanges(t *testing.T) {
	t.Parallel()

	seq := []string{"a", "b", "c"}
	assert.Empty(t, diffutil.MyersDiff(seq, seq))
}
