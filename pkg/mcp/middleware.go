package mcp

import (
	"context"

	"github.com/gnana997/lucidex/pkg/mcplog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// loggingMiddleware records every tool call in the JSONL tool log. NewServer
// only installs it when a tool log is configured.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := mcplog.Now()
			result, err := next(ctx, req)

			entry := mcplog.NewEntry(req.Params.Name, req.GetArguments(), start, result, err)
			if werr := s.toolLog.Write(entry); werr != nil {
				s.logger.Warn("tool log write failed", "tool", entry.Tool, "error", werr)
			}
			if entry.ToolError {
				s.logger.Debug("tool returned error result", "tool", entry.Tool)
			}
			return result, err
		}
	}
}
