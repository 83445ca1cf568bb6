package parser

import (
	"fmt"
	"runtime"
	"unsafe"

	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/gnana997/lucidex/pkg/builder"
)

// Grammar is a tree-sitter grammar the checker can parse with.
type Grammar int

const (
	// GrammarJavaScript parses JavaScript with JSX.
	GrammarJavaScript Grammar = iota
	// GrammarTSX parses TypeScript with JSX.
	GrammarTSX
	// GrammarNone marks dialects without a grammar (html, blazor).
	GrammarNone
)

// String returns the grammar name.
func (g Grammar) String() string {
	switch g {
	case GrammarJavaScript:
		return "javascript"
	case GrammarTSX:
		return "tsx"
	default:
		return "none"
	}
}

// GrammarFor returns the grammar that parses code generated for framework.
func GrammarFor(framework builder.Framework) Grammar {
	switch framework {
	case builder.FrameworkReact, builder.FrameworkNextJS:
		return GrammarJavaScript
	case builder.FrameworkTypeScript:
		return GrammarTSX
	default:
		return GrammarNone
	}
}

func (g Grammar) languagePointer() (unsafe.Pointer, error) {
	switch g {
	case GrammarJavaScript:
		return ts_javascript.Language(), nil
	case GrammarTSX:
		return ts_typescript.LanguageTSX(), nil
	default:
		return nil, fmt.Errorf("unsupported grammar: %s", g)
	}
}

// defaultPoolSize is one parser per CPU, between 2 and 8.
func defaultPoolSize() int {
	n := runtime.NumCPU()
	if n < 2 {
		return 2
	}
	if n > 8 {
		return 8
	}
	return n
}
