package tokens

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultSnapshotCacheSize bounds how many distinct source sets stay built.
const defaultSnapshotCacheSize = 8

// snapshot is a built collection and its index for one source set.
type snapshot struct {
	collection *TokenCollection
	index      *TokenIndex
}

// Store serves the token collection for the active source set.
//
// Building is a pure transform of the sources, so results are memoized per
// source digest; switching back to a previously seen source set (for example
// after an editor undo picked up by the Watcher) is a cache hit.
//
// Thread Safety: safe for concurrent use. Returned collections and indexes
// are shared and must not be mutated.
type Store struct {
	mu      sync.RWMutex
	sources []Source
	digest  string

	cache  *lru.Cache[string, *snapshot]
	logger *slog.Logger
}

// NewStore creates a Store over sources.
func NewStore(sources []Source, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := lru.New[string, *snapshot](defaultSnapshotCacheSize)
	if err != nil {
		// Only possible with a non-positive size.
		panic(err)
	}
	s := &Store{cache: cache, logger: logger}
	s.Reload(sources)
	return s
}

// NewDefaultStore creates a Store over the embedded sources.
func NewDefaultStore(logger *slog.Logger) *Store {
	return NewStore(DefaultSources(), logger)
}

// Reload replaces the active source set.
func (s *Store) Reload(sources []Source) {
	digest := digestSources(sources)

	s.mu.Lock()
	changed := digest != s.digest
	s.sources = sources
	s.digest = digest
	s.mu.Unlock()

	if changed {
		s.logger.Info("token sources loaded", "sources", len(sources), "digest", digest[:12])
	}
}

// Collection returns the collection for the active sources.
func (s *Store) Collection() *TokenCollection {
	return s.current().collection
}

// Index returns the token index for the active sources.
func (s *Store) Index() *TokenIndex {
	return s.current().index
}

// Search runs SearchTokens over the active index.
func (s *Store) Search(query string, filters Filters) *TokenIndex {
	return SearchTokens(s.Index(), query, filters)
}

// Categories summarizes the active collection.
func (s *Store) Categories() []CategoryInfo {
	return GetTokenCategories(s.Collection())
}

// CategoryInfo returns the summary for key, or nil.
func (s *Store) CategoryInfo(key string) *CategoryInfo {
	return GetCategoryInfo(s.Collection(), key)
}

// Token looks a token up by its "<category>:<tokenKey>" id.
func (s *Store) Token(id string) (*DesignToken, bool) {
	entry, ok := s.Index().Get(id)
	if !ok {
		return nil, false
	}
	return entry.Token, true
}

func (s *Store) current() *snapshot {
	s.mu.RLock()
	sources, digest := s.sources, s.digest
	s.mu.RUnlock()

	if snap, ok := s.cache.Get(digest); ok {
		return snap
	}

	collection := BuildCollection(sources, s.logger)
	snap := &snapshot{collection: collection, index: IndexCollection(collection)}
	s.cache.Add(digest, snap)
	s.logger.Debug("token collection built",
		"categories", collection.Len(),
		"tokens", snap.index.Len())
	return snap
}

func digestSources(sources []Source) string {
	h := sha256.New()
	for _, src := range sources {
		h.Write([]byte(src.Key))
		h.Write([]byte{0})
		h.Write(src.Data)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
