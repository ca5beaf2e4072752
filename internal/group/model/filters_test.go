package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByName, ParseSortKey(""))
	assert.Equal(t, SortByName, ParseSortKey("name"))
	assert.Equal(t, SortByMembers, ParseSortKey("members"))
	assert.Equal(t, SortByNewest, ParseSortKey("newest"))
	assert.Equal(t, SortByName, ParseSortKey("popularity"), "unknown key falls back")
}

func TestParseBoolFlag(t *testing.T) {
	t.Run("true values", func(t *testing.T) {
		assert.True(t, ParseBoolFlag("true", false))
		assert.True(t, ParseBoolFlag("1", false))
		assert.True(t, ParseBoolFlag("TRUE", false))
	})

	t.Run("false values", func(t *testing.T) {
		assert.False(t, ParseBoolFlag("false", true))
		assert.False(t, ParseBoolFlag("0", true))
	})

	t.Run("empty uses default", func(t *testing.T) {
		assert.True(t, ParseBoolFlag("", true))
		assert.False(t, ParseBoolFlag("", false))
	})

	t.Run("garbage uses default", func(t *testing.T) {
		assert.True(t, ParseBoolFlag("maybe", true))
		assert.False(t, ParseBoolFlag("maybe", false))
	})
}

func TestParsePageNumber(t *testing.T) {
	assert.Equal(t, 1, ParsePageNumber(""))
	assert.Equal(t, 1, ParsePageNumber("abc"))
	assert.Equal(t, 3, ParsePageNumber("3"))
	assert.Equal(t, -2, ParsePageNumber("-2"), "clamping happens in paging, not parsing")
}
