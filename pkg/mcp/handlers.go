package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/gnana997/lucidex/pkg/catalog"
	"github.com/gnana997/lucidex/pkg/theme"
	"github.com/gnana997/lucidex/pkg/tokens"
	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult encodes v as the text content of a successful result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// --- tokens ---

func (s *Server) handleListTokenCategories(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.tokens.Categories())
}

type categoryResponse struct {
	tokens.CategoryInfo
	Tokens any `json:"tokens"`
}

func (s *Server) handleGetTokenCategory(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	info := s.tokens.CategoryInfo(key)
	cat, ok := s.tokens.Collection().Get(key)
	if info == nil || !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown token category: %s", key)), nil
	}
	return jsonResult(categoryResponse{CategoryInfo: *info, Tokens: cat.Tokens})
}

// tokenHit is one search_tokens match with both theme values resolved.
type tokenHit struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Type     tokens.TokenType `json:"type"`
	Variable string           `json:"variable"`
	Light    string           `json:"light"`
	Dark     string           `json:"dark"`
}

func (s *Server) handleSearchTokens(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filters := tokens.Filters{
		Category: req.GetString("category", ""),
		Type:     tokens.TokenType(req.GetString("type", "")),
	}
	matches := s.tokens.Search(req.GetString("query", ""), filters)

	hits := make([]tokenHit, 0, matches.Len())
	matches.Each(func(id string, entry tokens.IndexEntry) bool {
		hits = append(hits, tokenHit{
			ID:       id,
			Name:     entry.Token.Name,
			Category: entry.Category,
			Type:     entry.Token.Type,
			Variable: entry.Token.Variable,
			Light:    tokens.GetTokenValue(entry.Token, tokens.ThemeLight),
			Dark:     tokens.GetTokenValue(entry.Token, tokens.ThemeDark),
		})
		return true
	})
	return jsonResult(hits)
}

func (s *Server) handleGetTokenValue(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	token, ok := s.tokens.Token(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown token: %s", id)), nil
	}
	th := tokens.ParseTheme(req.GetString("theme", string(tokens.ThemeLight)))
	return jsonResult(map[string]any{
		"id":       id,
		"theme":    th,
		"value":    tokens.GetTokenValue(token, th),
		"variable": token.Variable,
	})
}

// --- theme ---

func (s *Server) handleGeneratePalette(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	color, err := req.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var out any
	switch mode := req.GetString("mode", "standard"); mode {
	case "standard":
		out, err = theme.GenerateColorVariants(color, req.GetString("name", "primary"))
	case "accessible":
		out, err = theme.GenerateAccessiblePalette(color)
	case "complementary":
		out, err = theme.GenerateComplementaryColors(color)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown palette mode: %s", mode)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(out)
}

func (s *Server) handleContrastRatio(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fg, err := req.RequireString("foreground")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bg, err := req.RequireString("background")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ratio, err := theme.CalculateContrastRatio(fg, bg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"ratio":     math.Round(ratio*100) / 100,
		"level":     theme.WCAGLevel(ratio),
		"passesAA":  ratio >= theme.ContrastAA,
		"passesAAA": ratio >= theme.ContrastAAA,
	})
}

func (s *Server) handleGenerateTheme(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := theme.DefaultThemeConfig()
	if raw := req.GetString("config", ""); raw != "" {
		parsed, err := theme.ParseConfig([]byte(raw))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cfg = parsed
	}

	generated, err := s.themes.Generate(cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch format := req.GetString("format", "css"); format {
	case "css":
		return mcp.NewToolResultText(generated.CSS), nil
	case "tailwind":
		return jsonResult(generated.TailwindConfig)
	case "figma":
		return jsonResult(generated.FigmaTokens)
	case "json":
		return jsonResult(generated)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown theme format: %s", format)), nil
	}
}

// --- catalog ---

func (s *Server) handleListComponents(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	comps := s.catalog.ListComponents(req.GetString("category", ""), req.GetString("keyword", ""))
	if comps == nil {
		comps = []catalog.Template{}
	}
	return jsonResult(comps)
}

func (s *Server) handleSearchComponents(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results := s.catalog.SearchComponents(query)
	if results == nil {
		results = []catalog.SearchResult{}
	}
	return jsonResult(results)
}
