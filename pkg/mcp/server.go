package mcp

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gnana997/lucidex/pkg/builder"
	"github.com/gnana997/lucidex/pkg/catalog"
	"github.com/gnana997/lucidex/pkg/mcplog"
	"github.com/gnana997/lucidex/pkg/parser"
	"github.com/gnana997/lucidex/pkg/theme"
	"github.com/gnana997/lucidex/pkg/tokens"
	"github.com/mark3labs/mcp-go/server"
)

const serverVersion = "0.1.0-dev"

// LayoutChangedMethod is the notification sent to every client after the
// builder session changes.
const LayoutChangedMethod = "notifications/layout_changed"

// Deps are the core services exposed over MCP. Tokens and Catalog are
// required; a nil Themes gets a default generator, a nil Checker disables
// the check flag of generate_layout_code and a nil Builder starts an empty
// session.
type Deps struct {
	Tokens  *tokens.Store
	Themes  *theme.Generator
	Catalog *catalog.QueryService
	Checker *parser.Checker
	Builder *builder.Builder
}

// Server implements the Lucidex MCP server: token lookup, theme generation,
// the template catalog and one shared layout builder session.
type Server struct {
	mcpServer *server.MCPServer

	tokens  *tokens.Store
	themes  *theme.Generator
	catalog *catalog.QueryService
	checker *parser.Checker

	// mu guards session; the builder itself is not safe for concurrent use.
	mu          sync.Mutex
	session     *builder.Builder
	unsubscribe func()

	toolLog *mcplog.Logger // may be nil
	logger  *slog.Logger
}

// NewServer creates a server over deps. toolLog may be nil to disable the
// JSONL tool-call log.
func NewServer(deps Deps, toolLog *mcplog.Logger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		tokens:  deps.Tokens,
		themes:  deps.Themes,
		catalog: deps.Catalog,
		checker: deps.Checker,
		session: deps.Builder,
		toolLog: toolLog,
		logger:  logger,
	}
	if s.themes == nil {
		s.themes = theme.NewGenerator(theme.DefaultCacheSize, logger)
	}
	if s.session == nil {
		s.session = builder.New(builder.WithLogger(logger))
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	}
	if toolLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}
	s.mcpServer = server.NewMCPServer("lucidex", serverVersion, opts...)

	s.mcpServer.AddTools(s.tools()...)
	s.addResources()
	s.unsubscribe = s.session.Subscribe(s.forwardLayoutChange)

	return s
}

// tools pairs every tool definition with its handler.
func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		// tokens
		{Tool: listTokenCategoriesTool(), Handler: s.handleListTokenCategories},
		{Tool: getTokenCategoryTool(), Handler: s.handleGetTokenCategory},
		{Tool: searchTokensTool(), Handler: s.handleSearchTokens},
		{Tool: getTokenValueTool(), Handler: s.handleGetTokenValue},
		// theme
		{Tool: generatePaletteTool(), Handler: s.handleGeneratePalette},
		{Tool: contrastRatioTool(), Handler: s.handleContrastRatio},
		{Tool: generateThemeTool(), Handler: s.handleGenerateTheme},
		// catalog
		{Tool: listComponentsTool(), Handler: s.handleListComponents},
		{Tool: searchComponentsTool(), Handler: s.handleSearchComponents},
		// builder
		{Tool: addComponentTool(), Handler: s.handleAddComponent},
		{Tool: removeComponentTool(), Handler: s.handleRemoveComponent},
		{Tool: moveComponentTool(), Handler: s.handleMoveComponent},
		{Tool: updateComponentPropsTool(), Handler: s.handleUpdateComponentProps},
		{Tool: selectComponentTool(), Handler: s.handleSelectComponent},
		{Tool: setBuilderSettingsTool(), Handler: s.handleSetBuilderSettings},
		{Tool: getLayoutTool(), Handler: s.handleGetLayout},
		{Tool: exportLayoutTool(), Handler: s.handleExportLayout},
		{Tool: importLayoutTool(), Handler: s.handleImportLayout},
		{Tool: generateLayoutCodeTool(), Handler: s.handleGenerateLayoutCode},
		{Tool: clearLayoutTool(), Handler: s.handleClearLayout},
	}
}

// ToolNames returns the registered tool names in registration order.
func (s *Server) ToolNames() []string {
	tools := s.tools()
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Tool.Name
	}
	return names
}

// forwardLayoutChange runs inside builder mutations, so s.mu is already held.
func (s *Server) forwardLayoutChange(state builder.BuilderState) {
	params := map[string]any{
		"components":  len(state.Components),
		"zones":       len(state.DropZones),
		"previewMode": state.PreviewMode,
		"gridSize":    state.GridSize,
		"snapToGrid":  state.SnapToGrid,
	}
	if state.SelectedComponent != "" {
		params["selected"] = state.SelectedComponent
	}
	s.mcpServer.SendNotificationToAllClients(LayoutChangedMethod, params)
	s.logger.Debug("layout changed", "components", len(state.Components))
}

// withSession runs fn with exclusive access to the builder session.
func (s *Server) withSession(fn func(b *builder.Builder)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.session)
}

// marshalSession runs fn under the session lock and encodes its result
// before the lock is released, since results may share nodes and props with
// the builder. A nil result encodes as nil data.
func (s *Server) marshalSession(fn func(b *builder.Builder) any) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := fn(s.session)
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return data, nil
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Close detaches the server from the builder session and closes the tool log.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.mu.Unlock()
	if s.toolLog != nil {
		return s.toolLog.Close()
	}
	return nil
}
