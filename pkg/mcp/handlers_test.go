package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/lucidex/pkg/builder"
	"github.com/gnana997/lucidex/pkg/catalog"
	"github.com/gnana997/lucidex/pkg/mcplog"
	"github.com/gnana997/lucidex/pkg/parser"
	"github.com/gnana997/lucidex/pkg/theme"
	"github.com/gnana997/lucidex/pkg/tokens"
	"github.com/gnana997/lucidex/pkg/util"
)

// --- helpers ---

func testDeps(t *testing.T) Deps {
	t.Helper()
	qs, err := catalog.LoadDefaultQuery()
	require.NoError(t, err)

	clock := time.UnixMilli(1_700_000_000_000)
	return Deps{
		Tokens:  tokens.NewDefaultStore(util.Discard()),
		Themes:  theme.NewGenerator(4, util.Discard()),
		Catalog: qs,
		Builder: builder.New(
			builder.WithClock(func() time.Time { return clock }),
			builder.WithLogger(util.Discard()),
		),
	}
}

func testServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(testDeps(t), nil, util.Discard())
}

func callTool(t *testing.T, s *Server, req mcp.CallToolRequest) *mcp.CallToolResult {
	t.Helper()
	var handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	for _, st := range s.tools() {
		if st.Tool.Name == req.Params.Name {
			handler = st.Handler
		}
	}
	if handler == nil {
		t.Fatalf("unknown tool: %s", req.Params.Name)
	}

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

func decode(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()
	require.False(t, result.IsError, resultJSON(t, result))
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), v))
}

func addComponent(t *testing.T, s *Server, args map[string]any) string {
	t.Helper()
	var out map[string]any
	decode(t, callTool(t, s, makeRequest("add_component", args)), &out)
	return out["id"].(string)
}

// --- registration ---

func TestToolNames(t *testing.T) {
	s := testServer(t)
	assert.Equal(t, []string{
		"list_token_categories", "get_token_category", "search_tokens", "get_token_value",
		"generate_palette", "contrast_ratio", "generate_theme",
		"list_components", "search_components",
		"add_component", "remove_component", "move_component", "update_component_props",
		"select_component", "set_builder_settings", "get_layout", "export_layout",
		"import_layout", "generate_layout_code", "clear_layout",
	}, s.ToolNames())
}

// --- tokens ---

func TestHandleListTokenCategories(t *testing.T) {
	s := testServer(t)

	var cats []map[string]any
	decode(t, callTool(t, s, makeRequest("list_token_categories", nil)), &cats)
	require.Len(t, cats, 5)
	assert.Equal(t, "colors", cats[0]["key"])
	assert.Equal(t, "color", cats[0]["type"])
	assert.Greater(t, cats[0]["token_count"], float64(0))
}

func TestHandleGetTokenCategory(t *testing.T) {
	s := testServer(t)

	var cat map[string]any
	decode(t, callTool(t, s, makeRequest("get_token_category", map[string]any{"category": "colors"})), &cat)
	assert.Equal(t, "colors", cat["key"])
	toks, ok := cat["tokens"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, toks, "brand-maroon")
}

func TestHandleGetTokenCategory_Unknown(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("get_token_category", map[string]any{"category": "motion"}))
	assert.True(t, result.IsError)
	assert.Contains(t, resultJSON(t, result), "unknown token category: motion")
}

func TestHandleGetTokenCategory_MissingArg(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("get_token_category", nil))
	assert.True(t, result.IsError)
}

func TestHandleSearchTokens(t *testing.T) {
	s := testServer(t)

	var hits []map[string]any
	decode(t, callTool(t, s, makeRequest("search_tokens", map[string]any{"query": "maroon"})), &hits)
	require.NotEmpty(t, hits)
	assert.Equal(t, "colors:brand-maroon", hits[0]["id"])
	assert.Equal(t, "#8A1538", hits[0]["light"])
	assert.Equal(t, "#C4365F", hits[0]["dark"])
}

func TestHandleSearchTokens_TypeFilter(t *testing.T) {
	s := testServer(t)

	var hits []map[string]any
	decode(t, callTool(t, s, makeRequest("search_tokens", map[string]any{"type": "shadow"})), &hits)
	require.NotEmpty(t, hits)
	for _, h := range hits {
		assert.Equal(t, "shadow", h["type"])
	}
}

func TestHandleSearchTokens_NoMatch(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("search_tokens", map[string]any{"query": "zzz-nothing"}))
	assert.Equal(t, "[]", resultJSON(t, result))
}

func TestHandleGetTokenValue(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		theme string
		want  string
	}{
		{"", "#8A1538"},
		{"light", "#8A1538"},
		{"dark", "#C4365F"},
		{"DARK", "#C4365F"},
	}
	for _, tc := range tests {
		t.Run(tc.theme, func(t *testing.T) {
			args := map[string]any{"id": "colors:brand-maroon"}
			if tc.theme != "" {
				args["theme"] = tc.theme
			}
			var out map[string]any
			decode(t, callTool(t, s, makeRequest("get_token_value", args)), &out)
			assert.Equal(t, tc.want, out["value"])
			assert.Equal(t, "--color-brand-maroon", out["variable"])
		})
	}
}

func TestHandleGetTokenValue_Unknown(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("get_token_value", map[string]any{"id": "colors:nope"}))
	assert.True(t, result.IsError)
}

// --- theme ---

func TestHandleGeneratePalette(t *testing.T) {
	s := testServer(t)

	var token theme.ColorToken
	decode(t, callTool(t, s, makeRequest("generate_palette", map[string]any{"color": "#8A1538", "name": "brand"})), &token)
	assert.Equal(t, "brand", token.Name)
	require.Len(t, token.Variants, len(theme.ShadeNames))
	v, ok := token.Variant("500")
	require.True(t, ok)
	assert.Equal(t, "#8A1538", v.Value)
}

func TestHandleGeneratePalette_Modes(t *testing.T) {
	s := testServer(t)

	var accessible theme.ColorToken
	decode(t, callTool(t, s, makeRequest("generate_palette", map[string]any{"color": "#3b82f6", "mode": "accessible"})), &accessible)
	assert.Equal(t, "accessible", accessible.Name)

	var harmony []theme.HarmonyColor
	decode(t, callTool(t, s, makeRequest("generate_palette", map[string]any{"color": "#ff0000", "mode": "complementary"})), &harmony)
	require.Len(t, harmony, 5)
	assert.Equal(t, "complementary", harmony[0].Name)
	assert.Equal(t, "#00ffff", harmony[0].Value)
}

func TestHandleGeneratePalette_Errors(t *testing.T) {
	s := testServer(t)

	result := callTool(t, s, makeRequest("generate_palette", map[string]any{"color": "maroon"}))
	assert.True(t, result.IsError)
	assert.Contains(t, resultJSON(t, result), "invalid hex color")

	result = callTool(t, s, makeRequest("generate_palette", map[string]any{"color": "#8A1538", "mode": "pastel"}))
	assert.True(t, result.IsError)
}

func TestHandleContrastRatio(t *testing.T) {
	s := testServer(t)

	var out map[string]any
	decode(t, callTool(t, s, makeRequest("contrast_ratio", map[string]any{
		"foreground": "#000000",
		"background": "#ffffff",
	})), &out)
	assert.Equal(t, float64(21), out["ratio"])
	assert.Equal(t, "AAA", out["level"])
	assert.Equal(t, true, out["passesAA"])
	assert.Equal(t, true, out["passesAAA"])

	decode(t, callTool(t, s, makeRequest("contrast_ratio", map[string]any{
		"foreground": "#777777",
		"background": "#ffffff",
	})), &out)
	assert.Equal(t, "AA Large", out["level"])
	assert.Equal(t, false, out["passesAA"])
}

func TestHandleContrastRatio_InvalidColor(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("contrast_ratio", map[string]any{
		"foreground": "#000",
		"background": "#ffffff",
	}))
	assert.True(t, result.IsError)
}

func TestHandleGenerateTheme_DefaultCSS(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("generate_theme", nil))
	require.False(t, result.IsError)
	css := resultJSON(t, result)
	assert.Contains(t, css, ":root {")
	assert.Contains(t, css, "--color-primary: #8A1538;")
	assert.Contains(t, css, `[data-theme="dark"]`)
}

func TestHandleGenerateTheme_Formats(t *testing.T) {
	s := testServer(t)
	cfg := "name: demo\ncolors:\n  brand: \"#1d4ed8\"\n"

	var tw map[string]any
	decode(t, callTool(t, s, makeRequest("generate_theme", map[string]any{"config": cfg, "format": "tailwind"})), &tw)
	assert.Contains(t, tw, "theme")

	var figma map[string]any
	decode(t, callTool(t, s, makeRequest("generate_theme", map[string]any{"config": cfg, "format": "figma"})), &figma)
	assert.Contains(t, figma, "global")
	assert.Contains(t, figma, "$metadata")

	var bundle map[string]any
	decode(t, callTool(t, s, makeRequest("generate_theme", map[string]any{"config": cfg, "format": "json"})), &bundle)
	assert.Contains(t, bundle["css"], "--color-brand: #1d4ed8;")
}

func TestHandleGenerateTheme_Errors(t *testing.T) {
	s := testServer(t)

	result := callTool(t, s, makeRequest("generate_theme", map[string]any{"config": "name: bad\ncolors:\n  x: nothex\n"}))
	assert.True(t, result.IsError)
	assert.Contains(t, resultJSON(t, result), "invalid hex color")

	result = callTool(t, s, makeRequest("generate_theme", map[string]any{"format": "scss"}))
	assert.True(t, result.IsError)
}

// --- catalog ---

func TestHandleListComponents(t *testing.T) {
	s := testServer(t)

	var all []map[string]any
	decode(t, callTool(t, s, makeRequest("list_components", nil)), &all)
	assert.Len(t, all, 10)

	var layout []map[string]any
	decode(t, callTool(t, s, makeRequest("list_components", map[string]any{"category": "Layout"})), &layout)
	assert.Len(t, layout, 5)

	var none []map[string]any
	decode(t, callTool(t, s, makeRequest("list_components", map[string]any{"category": "Nope"})), &none)
	assert.Empty(t, none)
}

func TestHandleSearchComponents(t *testing.T) {
	s := testServer(t)

	var results []map[string]any
	decode(t, callTool(t, s, makeRequest("search_components", map[string]any{"query": "cta"})), &results)
	require.Len(t, results, 1)
	assert.Equal(t, "tag:cta", results[0]["match_reason"])
}

// --- builder ---

func TestHandleAddComponent(t *testing.T) {
	s := testServer(t)

	id := addComponent(t, s, map[string]any{"component": "button"})
	assert.Equal(t, "button-1700000000000", id)

	// Lookup by name works too.
	id = addComponent(t, s, map[string]any{"component": "Card", "index": float64(0)})
	assert.Equal(t, "card-1700000000001", id)

	var state builder.BuilderState
	decode(t, callTool(t, s, makeRequest("get_layout", nil)), &state)
	require.Len(t, state.DropZones, 1)
	require.Len(t, state.DropZones[0].Children, 2)
	assert.Equal(t, "card-1700000000001", state.DropZones[0].Children[0].ID)
	assert.Len(t, state.Components, 2)
}

func TestHandleAddComponent_Errors(t *testing.T) {
	s := testServer(t)

	result := callTool(t, s, makeRequest("add_component", map[string]any{"component": "carousel"}))
	assert.True(t, result.IsError)
	assert.Contains(t, resultJSON(t, result), "unknown component template")

	result = callTool(t, s, makeRequest("add_component", map[string]any{"component": "button", "zone": "sidebar"}))
	assert.True(t, result.IsError)
	assert.Contains(t, resultJSON(t, result), "unknown zone: sidebar")
}

func TestHandleRemoveComponent(t *testing.T) {
	s := testServer(t)
	id := addComponent(t, s, map[string]any{"component": "button"})

	result := callTool(t, s, makeRequest("remove_component", map[string]any{"id": id}))
	assert.False(t, result.IsError)

	result = callTool(t, s, makeRequest("remove_component", map[string]any{"id": id}))
	assert.True(t, result.IsError)
}

func TestHandleMoveComponent(t *testing.T) {
	s := testServer(t)
	a := addComponent(t, s, map[string]any{"component": "heading"})
	b := addComponent(t, s, map[string]any{"component": "text"})
	c := addComponent(t, s, map[string]any{"component": "button"})

	var out map[string]any
	decode(t, callTool(t, s, makeRequest("move_component", map[string]any{
		"id": c, "source_zone": "canvas", "source_index": float64(2),
		"target_zone": "canvas", "target_index": float64(0),
	})), &out)
	assert.Equal(t, []any{c, a, b}, out["children"])
}

func TestHandleMoveComponent_Mismatch(t *testing.T) {
	s := testServer(t)
	a := addComponent(t, s, map[string]any{"component": "heading"})
	addComponent(t, s, map[string]any{"component": "text"})

	result := callTool(t, s, makeRequest("move_component", map[string]any{
		"id": a, "source_zone": "canvas", "source_index": float64(1),
		"target_zone": "canvas", "target_index": float64(0),
	}))
	assert.True(t, result.IsError)
	assert.Contains(t, resultJSON(t, result), "is not at canvas[1]")

	result = callTool(t, s, makeRequest("move_component", map[string]any{
		"id": a, "source_zone": "canvas", "source_index": float64(0),
		"target_zone": "footer", "target_index": float64(0),
	}))
	assert.True(t, result.IsError)
}

func TestHandleUpdateComponentProps(t *testing.T) {
	s := testServer(t)
	id := addComponent(t, s, map[string]any{"component": "button"})

	var node map[string]any
	decode(t, callTool(t, s, makeRequest("update_component_props", map[string]any{
		"id":    id,
		"props": map[string]any{"variant": "secondary", "label": "Apply"},
	})), &node)
	props := node["props"].(map[string]any)
	assert.Equal(t, "secondary", props["variant"])
	assert.Equal(t, "Apply", props["label"])
	assert.Equal(t, false, props["disabled"])

	// A JSON string is accepted as well.
	decode(t, callTool(t, s, makeRequest("update_component_props", map[string]any{
		"id":    id,
		"props": `{"disabled": true}`,
	})), &node)
	assert.Equal(t, true, node["props"].(map[string]any)["disabled"])
}

func TestHandleUpdateComponentProps_Errors(t *testing.T) {
	s := testServer(t)
	id := addComponent(t, s, map[string]any{"component": "button"})

	result := callTool(t, s, makeRequest("update_component_props", map[string]any{"id": id}))
	assert.True(t, result.IsError)

	result = callTool(t, s, makeRequest("update_component_props", map[string]any{"id": id, "props": "[1,2]"}))
	assert.True(t, result.IsError)

	result = callTool(t, s, makeRequest("update_component_props", map[string]any{"id": "ghost", "props": map[string]any{"a": 1}}))
	assert.True(t, result.IsError)
}

func TestBuilderSession_ConcurrentUpdatesAndReads(t *testing.T) {
	s := testServer(t)
	id := addComponent(t, s, map[string]any{"component": "card"})

	handlers := make(map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error))
	for _, st := range s.tools() {
		handlers[st.Tool.Name] = st.Handler
	}

	const workers, calls = 4, 100
	errs := make(chan error, 2*workers*calls)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < calls; i++ {
				req := makeRequest("update_component_props", map[string]any{
					"id":    id,
					"props": map[string]any{fmt.Sprintf("k%d_%d", w, i): i},
				})
				if _, err := handlers["update_component_props"](context.Background(), req); err != nil {
					errs <- err
				}
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < calls; i++ {
				result, err := handlers["get_layout"](context.Background(), makeRequest("get_layout", nil))
				if err != nil {
					errs <- err
					continue
				}
				var state map[string]any
				if err := json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &state); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	var node map[string]any
	decode(t, callTool(t, s, makeRequest("update_component_props", map[string]any{
		"id":    id,
		"props": map[string]any{"done": true},
	})), &node)
	// padding from the template plus one key per update plus "done".
	assert.GreaterOrEqual(t, len(node["props"].(map[string]any)), workers*calls+1)
}

func TestHandleSelectComponent(t *testing.T) {
	s := testServer(t)
	id := addComponent(t, s, map[string]any{"component": "card"})

	decode(t, callTool(t, s, makeRequest("select_component", map[string]any{"id": id})), &map[string]any{})

	var state builder.BuilderState
	decode(t, callTool(t, s, makeRequest("get_layout", nil)), &state)
	assert.Equal(t, id, state.SelectedComponent)

	result := callTool(t, s, makeRequest("select_component", map[string]any{"id": "ghost"}))
	assert.True(t, result.IsError)

	decode(t, callTool(t, s, makeRequest("select_component", nil)), &map[string]any{})
	var cleared builder.BuilderState
	decode(t, callTool(t, s, makeRequest("get_layout", nil)), &cleared)
	assert.Empty(t, cleared.SelectedComponent)
}

func TestHandleSetBuilderSettings(t *testing.T) {
	s := testServer(t)

	var out map[string]any
	decode(t, callTool(t, s, makeRequest("set_builder_settings", map[string]any{
		"preview_mode": true,
		"grid_size":    float64(100),
	})), &out)
	assert.Equal(t, true, out["previewMode"])
	assert.Equal(t, true, out["snapToGrid"])
	assert.Equal(t, float64(builder.MaxGridSize), out["gridSize"])

	decode(t, callTool(t, s, makeRequest("set_builder_settings", map[string]any{"snap_to_grid": false})), &out)
	assert.Equal(t, false, out["snapToGrid"])
	assert.Equal(t, true, out["previewMode"])
}

func TestHandleExportImportLayout(t *testing.T) {
	s := testServer(t)
	addComponent(t, s, map[string]any{"component": "grid"})
	addComponent(t, s, map[string]any{"component": "button"})

	exported := resultJSON(t, callTool(t, s, makeRequest("export_layout", nil)))
	var doc builder.ExportedLayout
	require.NoError(t, json.Unmarshal([]byte(exported), &doc))
	assert.Equal(t, builder.LayoutVersion, doc.Version)
	assert.Equal(t, 2, doc.Metadata.ComponentCount)

	other := testServer(t)
	var out map[string]any
	decode(t, callTool(t, other, makeRequest("import_layout", map[string]any{"layout": exported})), &out)
	assert.Equal(t, float64(2), out["components"])
	assert.Equal(t, float64(1), out["zones"])

	assert.JSONEq(t,
		resultJSON(t, callTool(t, s, makeRequest("get_layout", nil))),
		resultJSON(t, callTool(t, other, makeRequest("get_layout", nil))))
}

func TestHandleImportLayout_Invalid(t *testing.T) {
	s := testServer(t)
	id := addComponent(t, s, map[string]any{"component": "button"})

	result := callTool(t, s, makeRequest("import_layout", map[string]any{"layout": "{not json"}))
	assert.True(t, result.IsError)
	assert.Contains(t, resultJSON(t, result), "invalid layout data")

	// The session is untouched.
	var state builder.BuilderState
	decode(t, callTool(t, s, makeRequest("get_layout", nil)), &state)
	require.Len(t, state.Components, 1)
	assert.Equal(t, id, state.Components[0].ID)
}

func TestHandleGenerateLayoutCode(t *testing.T) {
	s := testServer(t)
	addComponent(t, s, map[string]any{"component": "button"})

	react := resultJSON(t, callTool(t, s, makeRequest("generate_layout_code", nil)))
	assert.Contains(t, react, "export default function Layout()")
	assert.Contains(t, react, "<Button")

	html := resultJSON(t, callTool(t, s, makeRequest("generate_layout_code", map[string]any{"framework": "html"})))
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `class="`)
}

func TestHandleGenerateLayoutCode_Check(t *testing.T) {
	deps := testDeps(t)
	m := parser.NewManager(util.Discard())
	t.Cleanup(func() { m.Close() })
	deps.Checker = parser.NewChecker(m, util.Discard())
	s := NewServer(deps, nil, util.Discard())
	addComponent(t, s, map[string]any{"component": "card"})

	var out struct {
		Framework string              `json:"framework"`
		Code      string              `json:"code"`
		Check     *parser.CheckResult `json:"check"`
	}
	decode(t, callTool(t, s, makeRequest("generate_layout_code", map[string]any{"framework": "typescript", "check": true})), &out)
	assert.Equal(t, "typescript", out.Framework)
	require.NotNil(t, out.Check)
	assert.True(t, out.Check.Supported)
	assert.True(t, out.Check.Valid, "issues: %+v", out.Check.Issues)
}

func TestHandleGenerateLayoutCode_CheckUnavailable(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("generate_layout_code", map[string]any{"check": true}))
	assert.True(t, result.IsError)
}

func TestHandleClearLayout(t *testing.T) {
	s := testServer(t)
	addComponent(t, s, map[string]any{"component": "button"})
	callTool(t, s, makeRequest("set_builder_settings", map[string]any{"grid_size": float64(16)}))

	decode(t, callTool(t, s, makeRequest("clear_layout", nil)), &map[string]any{})

	var state builder.BuilderState
	decode(t, callTool(t, s, makeRequest("get_layout", nil)), &state)
	assert.Empty(t, state.Components)
	assert.Equal(t, builder.DefaultGridSize, state.GridSize)
}

// --- notifications ---

type fakeSession struct {
	id    string
	notes chan mcp.JSONRPCNotification
}

func (f *fakeSession) SessionID() string { return f.id }
func (f *fakeSession) NotificationChannel() chan<- mcp.JSONRPCNotification {
	return f.notes
}
func (f *fakeSession) Initialize()       {}
func (f *fakeSession) Initialized() bool { return true }

func TestLayoutChangedNotification(t *testing.T) {
	s := testServer(t)
	session := &fakeSession{id: "test", notes: make(chan mcp.JSONRPCNotification, 8)}
	require.NoError(t, s.MCPServer().RegisterSession(context.Background(), session))

	addComponent(t, s, map[string]any{"component": "button"})

	select {
	case n := <-session.notes:
		assert.Equal(t, LayoutChangedMethod, n.Method)
	case <-time.After(time.Second):
		t.Fatal("no layout_changed notification")
	}
}

func TestClose_Unsubscribes(t *testing.T) {
	s := testServer(t)
	session := &fakeSession{id: "test", notes: make(chan mcp.JSONRPCNotification, 8)}
	require.NoError(t, s.MCPServer().RegisterSession(context.Background(), session))
	require.NoError(t, s.Close())

	s.withSession(func(b *builder.Builder) { b.SetPreviewMode(true) })
	select {
	case n := <-session.notes:
		t.Fatalf("unexpected notification %s", n.Method)
	default:
	}
}

// --- middleware & resources ---

func TestLoggingMiddleware(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.jsonl")
	toolLog, err := mcplog.NewLogger(path)
	require.NoError(t, err)

	s := NewServer(testDeps(t), toolLog, util.Discard())
	handler := s.loggingMiddleware()(s.handleImportLayout)
	_, err = handler(context.Background(), makeRequest("import_layout", map[string]any{"layout": "null"}))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var entry mcplog.LogEntry
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, "import_layout", entry.Tool)
	assert.True(t, entry.ToolError)
	assert.Equal(t, "null", entry.Params["layout"])
	assert.Greater(t, entry.ResponseBytes, 0)
}

func TestReadResources(t *testing.T) {
	s := testServer(t)

	contents, err := s.readThemeCSS(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	css := contents[0].(mcp.TextResourceContents)
	assert.Equal(t, "text/css", css.MIMEType)
	assert.Contains(t, css.Text, "--color-primary")

	addComponent(t, s, map[string]any{"component": "text"})
	contents, err = s.readLayout(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	layout := contents[0].(mcp.TextResourceContents)
	assert.Contains(t, layout.Text, "text-1700000000000")
}
