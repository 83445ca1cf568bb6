package parser

import (
	"fmt"
	"log/slog"
	"sync"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// Manager owns one lazily created parser pool per grammar.
//
// Callers own the returned trees and must Close them. Manager itself must be
// closed to free its parsers.
type Manager struct {
	mutex  sync.RWMutex
	pools  map[Grammar]*parserPool
	parses int
	logger *slog.Logger
}

// NewManager creates a Manager.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		pools:  make(map[Grammar]*parserPool),
		logger: logger,
	}
}

// Parse parses source with grammar. The tree may contain ERROR nodes; it is
// returned anyway so callers can locate them.
func (m *Manager) Parse(source []byte, grammar Grammar) (*ts.Tree, error) {
	pool, err := m.pool(grammar)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	m.parses++
	m.mutex.Unlock()

	parser, err := pool.acquire()
	if err != nil {
		return nil, fmt.Errorf("acquire %s parser: %w", grammar, err)
	}
	tree := parser.Parse(source, nil)
	pool.release(parser)

	if tree == nil {
		return nil, fmt.Errorf("parse %s: no tree returned", grammar)
	}
	return tree, nil
}

// pool returns the pool for grammar, creating it on first use.
func (m *Manager) pool(grammar Grammar) (*parserPool, error) {
	m.mutex.RLock()
	p, ok := m.pools[grammar]
	m.mutex.RUnlock()
	if ok {
		return p, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	if p, ok = m.pools[grammar]; ok {
		return p, nil
	}

	ptr, err := grammar.languagePointer()
	if err != nil {
		return nil, err
	}
	size := defaultPoolSize()
	p = newParserPool(grammar, ptr, size, m.logger)
	m.pools[grammar] = p
	m.logger.Debug("created parser pool", "grammar", grammar.String(), "max_size", size)
	return p, nil
}

// Stats reports parser usage.
type Stats struct {
	ParsersCreated int `json:"parsers_created"`
	ParsesCalled   int `json:"parses_called"`
}

// Stats returns usage counters across all pools.
func (m *Manager) Stats() Stats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	s := Stats{ParsesCalled: m.parses}
	for _, p := range m.pools {
		s.ParsersCreated += p.createdCount()
	}
	return s
}

// Close frees every pooled parser.
func (m *Manager) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.logger.Debug("closing parser manager", "parses", m.parses)
	for _, p := range m.pools {
		p.close()
	}
	m.pools = make(map[Grammar]*parserPool)
	return nil
}
