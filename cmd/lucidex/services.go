package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnana997/lucidex/pkg/catalog"
	"github.com/gnana997/lucidex/pkg/tokens"
)

// loadTokenStore builds a store over dir, or over the embedded sources when
// dir is empty.
func loadTokenStore(dir string, logger *slog.Logger) (*tokens.Store, error) {
	if dir == "" {
		return tokens.NewDefaultStore(logger), nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("load token sources from %s: %w", dir, err)
	}
	sources, err := tokens.LoadSourcesFromDir(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("load token sources from %s: %w", dir, err)
	}
	return tokens.NewStore(sources, logger), nil
}

// loadCatalog loads the template catalog at path, or the embedded one.
func loadCatalog(path string) (*catalog.QueryService, error) {
	if path == "" {
		return catalog.LoadDefaultQuery()
	}
	qs, err := catalog.LoadAndQuery(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return qs, nil
}
