package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/lucidex/pkg/util"
)

func testIndex() *TokenIndex {
	return IndexCollection(BuildCollection(testSources(), util.Discard()))
}

// --- IndexCollection ---

func TestIndexCollection_Keys(t *testing.T) {
	idx := testIndex()
	assert.Equal(t, []string{
		"colors:brand-maroon",
		"colors:brand-sand-light",
		"colors:white",
		"spacing:md",
	}, idx.IDs())

	entry, ok := idx.Get("colors:white")
	require.True(t, ok)
	assert.Equal(t, "colors", entry.Category)
	assert.Equal(t, "colors.white", entry.Path)
	assert.Equal(t, "White", entry.Token.Name)
}

func TestCreateTokenIndex_Embedded(t *testing.T) {
	idx := CreateTokenIndex()
	assert.Equal(t, 35, idx.Len())
	_, ok := idx.Get("typography:font-size-2xl")
	assert.True(t, ok)
}

func TestIndexCollection_Nil(t *testing.T) {
	assert.Equal(t, 0, IndexCollection(nil).Len())
}

// --- SearchTokens ---

func TestSearchTokens_CaseInsensitive(t *testing.T) {
	res := SearchTokens(testIndex(), "MAROON", Filters{})
	assert.Equal(t, []string{"colors:brand-maroon"}, res.IDs())
}

func TestSearchTokens_MatchesDescription(t *testing.T) {
	res := SearchTokens(testIndex(), "warm", Filters{})
	assert.Equal(t, []string{"colors:brand-sand-light"}, res.IDs())
}

func TestSearchTokens_MatchesVariable(t *testing.T) {
	res := SearchTokens(testIndex(), "--spacing-", Filters{})
	assert.Equal(t, []string{"spacing:md"}, res.IDs())
}

func TestSearchTokens_MatchesTokenID(t *testing.T) {
	res := SearchTokens(testIndex(), "colors:wh", Filters{})
	assert.Equal(t, []string{"colors:white"}, res.IDs())
}

func TestSearchTokens_EmptyQueryMatchesAll(t *testing.T) {
	res := SearchTokens(testIndex(), "", Filters{})
	assert.Equal(t, 4, res.Len())
}

func TestSearchTokens_PreservesIndexOrder(t *testing.T) {
	res := SearchTokens(testIndex(), "brand", Filters{})
	assert.Equal(t, []string{"colors:brand-maroon", "colors:brand-sand-light"}, res.IDs())
}

func TestSearchTokens_CategoryFilter(t *testing.T) {
	res := SearchTokens(testIndex(), "", Filters{Category: "spacing"})
	assert.Equal(t, []string{"spacing:md"}, res.IDs())
}

func TestSearchTokens_TypeFilter(t *testing.T) {
	res := SearchTokens(testIndex(), "", Filters{Type: TypeColor})
	assert.Equal(t, 3, res.Len())

	res = SearchTokens(testIndex(), "maroon", Filters{Type: TypeSpacing})
	assert.Equal(t, 0, res.Len())
}

func TestSearchTokens_NoMatch(t *testing.T) {
	res := SearchTokens(testIndex(), "zzz_nonexistent", Filters{})
	require.NotNil(t, res)
	assert.Equal(t, 0, res.Len())
}

func TestSearchTokens_NilIndex(t *testing.T) {
	res := SearchTokens(nil, "x", Filters{})
	require.NotNil(t, res)
	assert.Equal(t, 0, res.Len())
}

func TestSearchTokens_SharesEntries(t *testing.T) {
	idx := testIndex()
	res := SearchTokens(idx, "white", Filters{})
	orig, _ := idx.Get("colors:white")
	got, _ := res.Get("colors:white")
	assert.Same(t, orig.Token, got.Token)
}
