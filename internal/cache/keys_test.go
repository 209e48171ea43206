package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listParams struct {
	Skip int `json:"skip"`
	Take int `json:"take"`
}

func TestKey(t *testing.T) {
	key, err := Key(DomainProducts, "tenant-a", listParams{Skip: 0, Take: 20})
	require.NoError(t, err)
	assert.Equal(t, `products:tenant-a:{"skip":0,"take":20}`, key)
}

func TestKey_TenantsNeverCollide(t *testing.T) {
	params := listParams{Take: 20}
	a, err := Key(DomainCategories, "tenant-a", params)
	require.NoError(t, err)
	b, err := Key(DomainCategories, "tenant-b", params)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestKey_UnserializableParams(t *testing.T) {
	_, err := Key(DomainCatalog, "tenant-a", make(chan int))
	assert.Error(t, err)
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "catalog:tenant-a:*", Pattern(DomainCatalog, "tenant-a"))
	assert.Equal(t, "catalog:tenant-a:", prefixOf(Pattern(DomainCatalog, "tenant-a")))
}
