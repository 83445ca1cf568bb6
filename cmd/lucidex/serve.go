package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnana997/lucidex/pkg/builder"
	mcpserver "github.com/gnana997/lucidex/pkg/mcp"
	"github.com/gnana997/lucidex/pkg/mcplog"
	"github.com/gnana997/lucidex/pkg/parser"
	"github.com/gnana997/lucidex/pkg/theme"
	"github.com/gnana997/lucidex/pkg/tokens"
)

type serveOptions struct {
	tokensDir   string
	catalogPath string
	logFile     string
	watch       bool
}

func newServeCmd(app *appContext) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("watch") {
				opts.watch = app.config.Watch
			}
			opts.tokensDir = firstNonEmpty(opts.tokensDir, app.config.TokensDir)
			opts.catalogPath = firstNonEmpty(opts.catalogPath, app.config.CatalogPath)
			opts.logFile = firstNonEmpty(opts.logFile, app.config.LogFile)
			return runServe(app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.tokensDir, "tokens-dir", "", "Directory of token documents (default: embedded Qatar GBA tokens)")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "Component catalog JSON (default: embedded catalog)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Append a JSONL record of every tool call to this file")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload tokens when files under --tokens-dir change")

	return cmd
}

func runServe(app *appContext, opts *serveOptions) error {
	logger := app.logger

	if opts.watch && opts.tokensDir == "" {
		return fmt.Errorf("--watch requires --tokens-dir")
	}

	store, err := loadTokenStore(opts.tokensDir, logger)
	if err != nil {
		return err
	}
	qs, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}

	if opts.watch {
		watcher, err := tokens.NewWatcher(opts.tokensDir, store, tokens.WatchOptions{
			OnReload: func(sources int) {
				logger.Info("token sources reloaded", "sources", sources)
			},
		}, logger)
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("start token watcher: %w", err)
		}
		defer watcher.Stop()
	}

	manager := parser.NewManager(logger)
	defer manager.Close()

	toolLog, err := mcplog.NewLogger(opts.logFile)
	if err != nil {
		return err
	}

	srv := mcpserver.NewServer(mcpserver.Deps{
		Tokens:  store,
		Themes:  theme.NewGenerator(theme.DefaultCacheSize, logger),
		Catalog: qs,
		Checker: parser.NewChecker(manager, logger),
		Builder: builder.New(builder.WithLogger(logger)),
	}, toolLog, logger)
	defer srv.Close()

	logger.Info("serving MCP on stdio",
		"tools", len(srv.ToolNames()),
		"tokens_dir", opts.tokensDir,
		"watch", opts.watch,
		"log_file", opts.logFile,
	)
	return srv.ServeStdio()
}
