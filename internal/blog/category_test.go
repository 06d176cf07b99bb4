package blog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	require.Equal(t, 11, r.Len())

	seen := map[string]bool{}
	for _, c := range r.List() {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Name)
		assert.True(t, strings.HasPrefix(c.URL, SiteURL), c.URL)
		assert.True(t, strings.HasPrefix(c.FeedURL, SiteURL), c.FeedURL)
		assert.True(t, strings.HasSuffix(c.FeedURL, "/feed/"), c.FeedURL)
	}
	for _, id := range []string{"aws", "machine-learning", "security", "compute", "architecture"} {
		assert.True(t, seen[id], "missing %s", id)
	}
}

func TestRegistry_ListIsACopy(t *testing.T) {
	r := DefaultRegistry()
	first := r.List()
	first[0].Name = "mutated"

	second := r.List()
	assert.Len(t, second, 11)
	assert.Equal(t, "AWS News Blog", second[0].Name)
}

func TestRegistry_Lookup(t *testing.T) {
	r := DefaultRegistry()

	c, err := r.Lookup("security")
	require.NoError(t, err)
	assert.Equal(t, "AWS Security Blog", c.Name)
	assert.Equal(t, "https://aws.amazon.com/blogs/security/feed/", c.FeedURL)

	_, err = r.Lookup("not-a-real-category")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(newCategory("aws", "a"), newCategory("aws", "b"))
	assert.Error(t, err)

	_, err = NewRegistry(Category{Name: "no id"})
	assert.Error(t, err)
}
