package object_test

import (
	"testing"

	"github.com/nivl-successor/gitlens/object"
	"github.com/nivl-successor/gitlens/oid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTagAnnotated(t *testing.T) {
	t.Parallel()

	payload := []byte(
		"object " + parentHex + "\n" +
			"type commit\n" +
			"tag v1.0.0\n" +
			"tagger Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"\n" +
			"release notes\n",
	)
	id := oid.FromContent(payload)
	tag, err := object.DecodeTag(id, payload)
	require.NoError(t, err)

	assert.Equal(t, parentHex, tag.Target.String())
	assert.Equal(t, "v1.0.0", tag.Name)
	assert.Equal(t, "Jane Doe", tag.Tagger.Name)
	assert.Equal(t, "release notes", tag.Message)
}

func TestDecodeTagMissingObjectLeavesZeroTarget(t *testing.T) {
	t.Parallel()

	payload := []byte(
		"tag v1.0.0\n" +
			"tagger Jane Doe <jane@example.com> 1566115917 -0700\n" +
			"\n" +
			"notes\n",
	)
	id := oid.FromContent(payload)
	tag, err := object.DecodeTag(id, payload)
	require.NoError(t, err)
	assert.True(t, tag.Target.IsZero())
}
