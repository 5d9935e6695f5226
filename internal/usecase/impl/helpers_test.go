package impl

import (
	"io"
	"log/slog"

	"musika/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSearchTestConfig() *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			MinQueryLength: 2,
			MaxSuggestions: 10,
			FrontendURL:    "https://musika.example",
		},
	}
}

func newInventoryTestConfig(threshold int) *config.Config {
	return &config.Config{
		Inventory: &config.InventoryConfig{
			LowStockThreshold: threshold,
		},
	}
}
