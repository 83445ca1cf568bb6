// Package mcplog writes one JSONL line per MCP tool call so that agent
// sessions against the explorer can be replayed and measured.
package mcplog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// shortStringMax is the longest string argument logged verbatim. Layout
// documents and generated code are replaced with their length.
const shortStringMax = 64

// LogEntry is the schema for one JSONL line.
type LogEntry struct {
	Ts            string         `json:"ts"`
	Tool          string         `json:"tool"`
	Params        map[string]any `json:"params"`
	DurationMs    int64          `json:"duration_ms"`
	ResponseBytes int            `json:"response_bytes"`
	TokensEst     int            `json:"tokens_est"`
	// ToolError is set when the handler answered with an error result
	// (bad hex color, unknown component id) rather than a Go error.
	ToolError bool    `json:"tool_error,omitempty"`
	Error     *string `json:"error"`
}

// NewEntry builds the entry for a call to tool that started at start.
func NewEntry(tool string, args map[string]any, start time.Time, result *mcp.CallToolResult, err error) LogEntry {
	rb := ResponseBytes(result)
	entry := LogEntry{
		Ts:            start.UTC().Format(time.RFC3339),
		Tool:          tool,
		Params:        SanitizeParams(args),
		DurationMs:    Now().Sub(start).Milliseconds(),
		ResponseBytes: rb,
		TokensEst:     rb / 4,
		ToolError:     result != nil && result.IsError,
	}
	if err != nil {
		msg := err.Error()
		entry.Error = &msg
	}
	return entry
}

// Logger appends entries to a file. It is safe for concurrent use.
type Logger struct {
	mu   sync.Mutex
	path string
	f    *os.File
	enc  *json.Encoder
}

// NewLogger opens (or creates) the file at path for appending, creating
// parent directories as needed. An empty path yields a nil Logger, which
// callers treat as disabled.
func NewLogger(path string) (*Logger, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("mcplog: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("mcplog: open log file: %w", err)
	}
	return &Logger{path: path, f: f, enc: json.NewEncoder(f)}, nil
}

// Path returns the file the logger appends to.
func (l *Logger) Path() string {
	return l.path
}

// Write appends a single entry. Callers usually ignore the error so that
// log failures never change a tool result.
func (l *Logger) Write(entry LogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(entry)
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

// SanitizeParams returns a copy of args safe for logging. Long strings
// become "{key}_len", objects become "{key}_keys" and arrays become
// "{key}_items", each holding a size instead of the payload.
func SanitizeParams(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		switch val := v.(type) {
		case string:
			if len(val) > shortStringMax {
				out[k+"_len"] = len(val)
			} else {
				out[k] = val
			}
		case map[string]any:
			out[k+"_keys"] = len(val)
		case []any:
			out[k+"_items"] = len(val)
		default:
			out[k] = v
		}
	}
	return out
}

// ResponseBytes returns the encoded size of a result's content, or 0 for a
// nil result or on marshal error.
func ResponseBytes(result *mcp.CallToolResult) int {
	if result == nil {
		return 0
	}
	b, err := json.Marshal(result.Content)
	if err != nil {
		return 0
	}
	return len(b)
}

// Now is a replaceable clock for testing.
var Now = func() time.Time { return time.Now() }
