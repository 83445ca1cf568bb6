package parser

import (
	"log/slog"
	"strings"
	"unicode"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/gnana997/lucidex/pkg/builder"
)

// Issue kinds.
const (
	IssueError   = "error"   // unparseable span
	IssueMissing = "missing" // token the parser had to insert
)

// SyntaxIssue locates one parse problem. Line and Column are 1-based.
type SyntaxIssue struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
}

// ComponentUsage is a capitalized JSX element found in the code.
type ComponentUsage struct {
	Name   string `json:"name"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// CheckResult is the outcome of Checker.Check.
type CheckResult struct {
	Framework  builder.Framework `json:"framework"`
	Grammar    string            `json:"grammar"`
	Supported  bool              `json:"supported"`
	Valid      bool              `json:"valid"`
	Issues     []SyntaxIssue     `json:"issues"`
	Components []ComponentUsage  `json:"components"`
}

// Checker syntax-checks generated layout code.
type Checker struct {
	manager *Manager
	logger  *slog.Logger
}

// NewChecker creates a Checker parsing through manager.
func NewChecker(manager *Manager, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{manager: manager, logger: logger}
}

// Check parses code with the grammar matching framework. Markup dialects
// have no grammar and come back with Supported=false and Valid=true.
func (c *Checker) Check(code string, framework builder.Framework) (*CheckResult, error) {
	framework = builder.ParseFramework(string(framework))
	grammar := GrammarFor(framework)
	result := &CheckResult{
		Framework:  framework,
		Grammar:    grammar.String(),
		Issues:     []SyntaxIssue{},
		Components: []ComponentUsage{},
	}
	if grammar == GrammarNone {
		result.Valid = true
		return result, nil
	}
	result.Supported = true

	source := []byte(code)
	tree, err := c.manager.Parse(source, grammar)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	collectIssues(root, source, &result.Issues)
	collectComponents(root, source, &result.Components)
	result.Valid = len(result.Issues) == 0

	if !result.Valid {
		c.logger.Debug("generated code has syntax issues",
			"framework", string(framework),
			"issues", len(result.Issues))
	}
	return result, nil
}

func position(node *ts.Node) (line, column int) {
	p := node.StartPosition()
	return int(p.Row) + 1, int(p.Column) + 1
}

// collectIssues records ERROR and MISSING nodes, skipping subtrees that
// contain neither.
func collectIssues(node *ts.Node, source []byte, out *[]SyntaxIssue) {
	switch {
	case node.IsMissing():
		line, col := position(node)
		*out = append(*out, SyntaxIssue{Line: line, Column: col, Kind: IssueMissing, Text: node.Kind()})
		return
	case node.IsError():
		line, col := position(node)
		*out = append(*out, SyntaxIssue{Line: line, Column: col, Kind: IssueError, Text: snippet(node.Utf8Text(source))})
		return
	case !node.HasError():
		return
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		collectIssues(node.Child(i), source, out)
	}
}

// collectComponents records capitalized JSX tags in document order.
func collectComponents(node *ts.Node, source []byte, out *[]ComponentUsage) {
	switch node.Kind() {
	case "jsx_opening_element", "jsx_self_closing_element":
		if name := tagName(node, source); isComponentName(name) {
			line, col := position(node)
			*out = append(*out, ComponentUsage{Name: name, Line: line, Column: col})
		}
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		collectComponents(node.Child(i), source, out)
	}
}

func tagName(node *ts.Node, source []byte) string {
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "identifier", "member_expression", "nested_identifier":
			return child.Utf8Text(source)
		}
	}
	return ""
}

func isComponentName(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

func snippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
