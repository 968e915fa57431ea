package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/xpense/xpense/internal/ledger"
	"github.com/xpense/xpense/internal/storage"
)

// openLedger opens the blob store and loads the ledger from it. The
// returned cleanup function closes the store and must always be called.
func openLedger() (*ledger.Store, func(), error) {
	path := viper.GetString("ledger.path")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ".local", "share", "xpense", "ledger.db")
	}

	blob, err := storage.NewBoltStore(path)
	if err != nil {
		return nil, nil, err
	}

	store, err := ledger.Open(blob, slog.Default())
	if err != nil {
		_ = blob.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if closeErr := blob.Close(); closeErr != nil {
			slog.Warn("failed to close ledger database", "error", closeErr)
		}
	}
	return store, cleanup, nil
}
