package mcp

import (
	"context"
	"fmt"

	"github.com/gnana997/lucidex/pkg/builder"
	"github.com/gnana997/lucidex/pkg/theme"
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs.
const (
	ThemeCSSURI = "lucidex://theme.css"
	LayoutURI   = "lucidex://layout.json"
)

func (s *Server) addResources() {
	s.mcpServer.AddResource(
		mcp.NewResource(ThemeCSSURI, "Theme CSS",
			mcp.WithResourceDescription("CSS custom properties of the built-in Qatar GBA theme."),
			mcp.WithMIMEType("text/css"),
		),
		s.readThemeCSS,
	)
	s.mcpServer.AddResource(
		mcp.NewResource(LayoutURI, "Current Layout",
			mcp.WithResourceDescription("The builder session exported as a layout document."),
			mcp.WithMIMEType("application/json"),
		),
		s.readLayout,
	)
}

func (s *Server) readThemeCSS(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	generated, err := s.themes.Generate(theme.DefaultThemeConfig())
	if err != nil {
		return nil, fmt.Errorf("generate default theme: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: ThemeCSSURI, MIMEType: "text/css", Text: generated.CSS},
	}, nil
}

func (s *Server) readLayout(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var (
		data []byte
		err  error
	)
	s.withSession(func(b *builder.Builder) {
		data, err = b.ExportJSON()
	})
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: LayoutURI, MIMEType: "application/json", Text: string(data)},
	}, nil
}
