package refs_test

import (
	"testing"

	"github.com/nivl-successor/gitlens/internal/testhelper"
	"github.com/nivl-successor/gitlens/oid"
	"github.com/nivl-successor/gitlens/refs"
	"github.com/nivl-successor/gitlens/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBranchesIncludesNestedNames(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	commit := testhelper.WriteLooseObject(t, root, "blob", []byte("c1"))
	testhelper.WriteBranch(t, root, "main", commit)
	testhelper.WriteBranch(t, root, "feature/foo", commit)
	testhelper.WriteHeadSymbolic(t, root, "main")

	r := refs.New(root, store.New(root), nil)
	branches, err := r.ListBranches()
	require.NoError(t, err)
	require.Len(t, branches, 2)

	byName := map[string]refs.Branch{}
	for _, b := range branches {
		byName[b.Name] = b
	}
	assert.Equal(t, commit, byName["main"].Target)
	assert.True(t, byName["main"].IsCurrent)
	assert.Equal(t, commit, byName["feature/foo"].Target)
	assert.False(t, byName["feature/foo"].IsCurrent)
}

func TestCurrentBranchDetachedIsNil(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	commit := testhelper.WriteLooseObject(t, root, "blob", []byte("c1"))
	testhelper.WriteHeadDetached(t, root, commit)

	r := refs.New(root, store.New(root), nil)
	cur, err := r.CurrentBranch()
	require.NoError(t, err)
	assert.Nil(t, cur)

	head, err := r.HeadCommit()
	require.NoError(t, err)
	assert.Equal(t, commit, head)
}

func TestHeadCommitFollowsSymbolicRef(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	commit := testhelper.WriteLooseObject(t, root, "blob", []byte("c1"))
	testhelper.WriteBranch(t, root, "main", commit)
	testhelper.WriteHeadSymbolic(t, root, "main")

	r := refs.New(root, store.New(root), nil)
	head, err := r.HeadCommit()
	require.NoError(t, err)
	assert.Equal(t, commit, head)
}

func TestListTagsLightweight(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	commit := testhelper.WriteLooseObject(t, root, "blob", []byte("c1"))
	testhelper.WriteTag(t, root, "v1.0.0", commit)

	r := refs.New(root, store.New(root), nil)
	tags, err := r.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, refs.Lightweight, tags[0].Kind)
	assert.Equal(t, commit, tags[0].CommitID)
	assert.True(t, tags[0].TagID.IsZero())
}

func TestListTagsAnnotated(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	commit := testhelper.WriteLooseObject(t, root, "blob", []byte("c1"))

	tagPayload := "object " + commit.String() + "\n" +
		"type commit\n" +
		"tag v2.0.0\n" +
		"tagger Jane Doe <jane@example.com> 1700000000 +0000\n" +
		"\n" +
		"release notes\n"
	tagID := testhelper.WriteLooseObject(t, root, "tag", []byte(tagPayload))
	testhelper.WriteTag(t, root, "v2.0.0", tagID)

	r := refs.New(root, store.New(root), nil)
	tags, err := r.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, refs.Annotated, tags[0].Kind)
	assert.Equal(t, commit, tags[0].CommitID)
	assert.Equal(t, tagID, tags[0].TagID)
	require.NotNil(t, tags[0].Tag)
	assert.Equal(t, "release notes", tags[0].Tag.Message)
}

func TestListBranchesEmptyRepoReturnsNoEntries(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	r := refs.New(root, store.New(root), nil)

	branches, err := r.ListBranches()
	require.NoError(t, err)
	assert.Empty(t, branches)

	tags, err := r.ListTags()
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestListTagsSkipsUnresolvableTarget(t *testing.T) {
	t.Parallel()

	root := testhelper.NewRepo(t)
	missing, err := oid.FromHex("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	require.NoError(t, err)
	testhelper.WriteTag(t, root, "broken", missing)

	r := refs.New(root, store.New(root), nil)
	tags, err := r.ListTags()
	require.NoError(t, err)
	assert.Empty(t, tags)
}
