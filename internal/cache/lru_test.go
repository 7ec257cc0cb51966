package cache_test

import (
	"testing"

	"github.com/nivl-successor/gitlens/internal/cache"
	"github.com/stretchr/testify/assert"
)

func TestAddAndGet(t *testing.T) {
	t.Parallel()

	c := cache.New(2)
	c.Add("a", 1)
	c.Add("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())
}

func TestEviction(t *testing.T) {
	t.Parallel()

	c := cache.New(1)
	c.Add("a", 1)
	c.Add("b", 2)

	_, ok := c.Get("a")
	assert.False(t, ok, "a should have been evicted")

	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMissingKey(t *testing.T) {
	t.Parallel()

	c := cache.New(4)
	_, ok := c.Get("missing")
	assert.False(t, ok)
}
