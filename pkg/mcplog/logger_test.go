package mcplog

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestSanitizeParams(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		wantKeys map[string]any // keys expected in output, with values
		wantSkip []string       // keys that should NOT appear
	}{
		{
			name:     "nil map returns empty",
			input:    nil,
			wantKeys: map[string]any{},
		},
		{
			name:     "short string passes through",
			input:    map[string]any{"category": "colors"},
			wantKeys: map[string]any{"category": "colors"},
		},
		{
			name:     "long layout document replaced with _len key",
			input:    map[string]any{"layout": strings.Repeat("x", 200)},
			wantKeys: map[string]any{"layout_len": 200},
			wantSkip: []string{"layout"},
		},
		{
			name: "props object replaced with _keys count",
			input: map[string]any{
				"id":    "button-1700000000000",
				"props": map[string]any{"variant": "primary", "size": "lg"},
			},
			wantKeys: map[string]any{"id": "button-1700000000000", "props_keys": 2},
			wantSkip: []string{"props"},
		},
		{
			name:     "array replaced with _items count",
			input:    map[string]any{"accepts": []any{"component", "layout"}},
			wantKeys: map[string]any{"accepts_items": 2},
			wantSkip: []string{"accepts"},
		},
		{
			name:     "numbers, bools and nil pass through",
			input:    map[string]any{"index": float64(2), "check": true, "zone": nil},
			wantKeys: map[string]any{"index": float64(2), "check": true, "zone": nil},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := SanitizeParams(tc.input)
			for k, want := range tc.wantKeys {
				got, ok := out[k]
				if !ok {
					t.Errorf("expected key %q in output", k)
					continue
				}
				if got != want {
					t.Errorf("key %q = %v, want %v", k, got, want)
				}
			}
			for _, k := range tc.wantSkip {
				if _, ok := out[k]; ok {
					t.Errorf("unexpected key %q in output", k)
				}
			}
		})
	}
}

func TestResponseBytes(t *testing.T) {
	t.Run("nil returns zero", func(t *testing.T) {
		if got := ResponseBytes(nil); got != 0 {
			t.Errorf("got %d, want 0", got)
		}
	})

	t.Run("text content is measured", func(t *testing.T) {
		if got := ResponseBytes(mcp.NewToolResultText("hello")); got == 0 {
			t.Errorf("got 0, want a positive size")
		}
	})
}

func TestNewEntry(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	orig := Now
	Now = func() time.Time { return start.Add(25 * time.Millisecond) }
	defer func() { Now = orig }()

	t.Run("successful call", func(t *testing.T) {
		result := mcp.NewToolResultText(`{"ratio":21}`)
		e := NewEntry("contrast_ratio", map[string]any{"foreground": "#000000"}, start, result, nil)

		if e.Ts != "2024-03-01T12:00:00Z" {
			t.Errorf("ts = %q", e.Ts)
		}
		if e.Tool != "contrast_ratio" {
			t.Errorf("tool = %q", e.Tool)
		}
		if e.DurationMs != 25 {
			t.Errorf("duration_ms = %d, want 25", e.DurationMs)
		}
		if e.ResponseBytes == 0 || e.TokensEst != e.ResponseBytes/4 {
			t.Errorf("response_bytes = %d, tokens_est = %d", e.ResponseBytes, e.TokensEst)
		}
		if e.ToolError || e.Error != nil {
			t.Errorf("unexpected error fields: %v %v", e.ToolError, e.Error)
		}
	})

	t.Run("error result", func(t *testing.T) {
		e := NewEntry("generate_palette", nil, start, mcp.NewToolResultError("invalid hex color"), nil)
		if !e.ToolError {
			t.Errorf("expected tool_error to be set")
		}
	})

	t.Run("go error", func(t *testing.T) {
		e := NewEntry("get_layout", nil, start, nil, errors.New("boom"))
		if e.Error == nil || *e.Error != "boom" {
			t.Errorf("error = %v, want boom", e.Error)
		}
	})
}

func readEntries(t *testing.T, path string) []LogEntry {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var got []LogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var e LogEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("torn or invalid line %d %q: %v", len(got)+1, line, err)
		}
		got = append(got, e)
	}
	return got
}

func TestLoggerWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.jsonl")

	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger.Path() != path {
		t.Errorf("Path() = %q, want %q", logger.Path(), path)
	}

	ts := time.Now().UTC().Format(time.RFC3339)
	entries := []LogEntry{
		{Ts: ts, Tool: "list_token_categories", Params: map[string]any{}, DurationMs: 5, ResponseBytes: 100, TokensEst: 25},
		{Ts: ts, Tool: "import_layout", Params: map[string]any{"layout_len": 1200}, DurationMs: 42, ResponseBytes: 800, TokensEst: 200},
		{Ts: ts, Tool: "search_tokens", Params: map[string]any{"query": "primary"}, DurationMs: 3, ResponseBytes: 50, TokensEst: 12},
	}
	for _, e := range entries {
		if err := logger.Write(e); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got := readEntries(t, path)
	if len(got) != len(entries) {
		t.Fatalf("got %d lines, want %d", len(got), len(entries))
	}
	for i, e := range entries {
		if got[i].Tool != e.Tool {
			t.Errorf("line %d: tool=%q, want %q", i, got[i].Tool, e.Tool)
		}
		if got[i].DurationMs != e.DurationMs {
			t.Errorf("line %d: duration_ms=%d, want %d", i, got[i].DurationMs, e.DurationMs)
		}
	}
}

func TestLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "append.jsonl")

	for i := 0; i < 2; i++ {
		logger, err := NewLogger(path)
		if err != nil {
			t.Fatalf("NewLogger: %v", err)
		}
		if err := logger.Write(LogEntry{Tool: "get_layout"}); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := logger.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	if got := readEntries(t, path); len(got) != 2 {
		t.Errorf("got %d lines, want 2", len(got))
	}
}

func TestLoggerConcurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.jsonl")

	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	const goroutines = 50
	const writesEach = 10

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < writesEach; j++ {
				_ = logger.Write(LogEntry{
					Ts:   time.Now().UTC().Format(time.RFC3339),
					Tool: "add_component",
				})
			}
		}()
	}
	wg.Wait()

	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := readEntries(t, path); len(got) != goroutines*writesEach {
		t.Errorf("got %d lines, want %d", len(got), goroutines*writesEach)
	}
}

func TestNewLoggerCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "mcp.jsonl")

	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestNewLoggerEmptyPath(t *testing.T) {
	logger, err := NewLogger("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger != nil {
		t.Errorf("expected nil logger for empty path")
	}
}
