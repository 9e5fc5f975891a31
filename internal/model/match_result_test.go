package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchResults(t *testing.T) {
	results := MatchResults{
		{Item: CatalogItem{ID: 4}, Score: 900, Matched: true},
		{Item: CatalogItem{ID: 2}, Score: 120, Matched: true},
		{Item: CatalogItem{ID: 1}},
		{Item: CatalogItem{ID: 3}},
	}

	assert.Equal(t, []int{4, 2, 1, 3}, results.IDs())
	assert.Equal(t, 2, results.MatchedCount())
	assert.Equal(t, []int{4, 2}, results.Matched().IDs())

	top := results.Top()
	require.NotNil(t, top)
	assert.Equal(t, 4, top.Item.ID)

	assert.Equal(t, []int{4, 2, 1}, results.Limit(3).IDs())
	assert.Len(t, results.Limit(0), 4)
	assert.Len(t, results.Limit(10), 4)
}

func TestMatchResults_TopWithoutMatches(t *testing.T) {
	assert.Nil(t, MatchResults{{Item: CatalogItem{ID: 1}}}.Top())
	assert.Nil(t, MatchResults{}.Top())
	assert.Empty(t, MatchResults{}.Matched())
}
