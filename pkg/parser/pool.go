package parser

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// parserPool hands out tree-sitter parsers for one grammar. Parsers are
// created lazily up to maxSize; past that, acquire waits for a release.
type parserPool struct {
	pool    chan *ts.Parser // idle parsers
	langPtr unsafe.Pointer
	grammar Grammar
	maxSize int
	logger  *slog.Logger

	mutex   sync.Mutex // guards created
	created int
}

// newParserPool creates an empty pool that grows up to maxSize parsers.
func newParserPool(grammar Grammar, langPtr unsafe.Pointer, maxSize int, logger *slog.Logger) *parserPool {
	return &parserPool{
		pool:    make(chan *ts.Parser, maxSize),
		langPtr: langPtr,
		grammar: grammar,
		maxSize: maxSize,
		logger:  logger,
	}
}

// acquire returns an idle parser, creating one if the pool may still grow.
func (p *parserPool) acquire() (*ts.Parser, error) {
	select {
	case parser := <-p.pool:
		return parser, nil
	default:
		return p.grow()
	}
}

// grow creates a parser while the pool is below maxSize; otherwise it waits
// for a release.
func (p *parserPool) grow() (*ts.Parser, error) {
	p.mutex.Lock()

	if p.created < p.maxSize {
		parser := ts.NewParser()
		if parser == nil {
			p.mutex.Unlock()
			return nil, fmt.Errorf("failed to create parser")
		}

		tsLang := ts.NewLanguage(p.langPtr)
		if err := parser.SetLanguage(tsLang); err != nil {
			parser.Close()
			p.mutex.Unlock()
			return nil, fmt.Errorf("failed to set language: %w", err)
		}

		p.created++
		p.logger.Debug("created parser in pool",
			"grammar", p.grammar.String(),
			"pool_size", p.created)

		p.mutex.Unlock()
		return parser, nil
	}

	p.mutex.Unlock()
	parser := <-p.pool
	return parser, nil
}

// release returns a parser to the pool. It never blocks.
func (p *parserPool) release(parser *ts.Parser) {
	if parser == nil {
		return
	}

	select {
	case p.pool <- parser:
	default:
		parser.Close()
		p.logger.Warn("parser pool full, closing excess parser",
			"grammar", p.grammar.String())
	}
}

// close frees every idle parser. The pool is unusable afterwards.
func (p *parserPool) close() {
	close(p.pool)

	count := 0
	for parser := range p.pool {
		if parser != nil {
			parser.Close()
			count++
		}
	}

	p.logger.Debug("closed parser pool",
		"grammar", p.grammar.String(),
		"parsers_closed", count)
}

func (p *parserPool) createdCount() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.created
}
