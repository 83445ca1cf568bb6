package tokens

import "strings"

// CreateTokenIndex indexes the embedded collection.
func CreateTokenIndex() *TokenIndex {
	return IndexCollection(CreateTokenCollection())
}

// IndexCollection flattens a collection into "<category>:<tokenKey>" entries.
func IndexCollection(c *TokenCollection) *TokenIndex {
	index := NewTokenIndex()
	if c == nil {
		return index
	}
	for _, catKey := range c.Keys() {
		cat, _ := c.Get(catKey)
		for pair := cat.Tokens.Oldest(); pair != nil; pair = pair.Next() {
			index.Set(TokenID(catKey, pair.Key), IndexEntry{
				Token:    pair.Value,
				Category: catKey,
				Path:     catKey + "." + pair.Key,
			})
		}
	}
	return index
}

// TokenID builds the index id of a token.
func TokenID(category, tokenKey string) string {
	return category + ":" + tokenKey
}

// SearchTokens returns the entries whose name, description, variable,
// category or id contain query (case-insensitive), narrowed by filters.
// There is no ranking: matches keep index order. An empty query matches everything.
func SearchTokens(index *TokenIndex, query string, filters Filters) *TokenIndex {
	result := NewTokenIndex()
	if index == nil {
		return result
	}

	query = strings.ToLower(query)
	index.Each(func(id string, entry IndexEntry) bool {
		if filters.Category != "" && entry.Category != filters.Category {
			return true
		}
		if entry.Token == nil {
			return true
		}
		if filters.Type != "" && entry.Token.Type != filters.Type {
			return true
		}
		haystack := strings.ToLower(entry.Token.Name + entry.Token.Description +
			entry.Token.Variable + entry.Token.Category + id)
		if strings.Contains(haystack, query) {
			result.Set(id, entry)
		}
		return true
	})
	return result
}
