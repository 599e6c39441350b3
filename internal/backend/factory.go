// Package backend selects and wires a transaction source from the
// application configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"finview/internal/config"
	"finview/internal/source"
	"finview/internal/source/excel"
	gsheet "finview/internal/source/google"
	"finview/internal/source/memory"
	"finview/internal/storage"
)

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result holds the selected reader and an optional cleanup function.
type Result struct {
	Reader  source.TransactionReader
	Cleanup CleanupFunc
}

// New builds the transaction source named by cfg.DataBackend.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.DataBackend {
	case "excel":
		logger.Info("Initialized excel backend", "path", cfg.ExcelFilePath, "sheet", cfg.ExcelSheetName)
		return &Result{Reader: excel.New(cfg.ExcelFilePath, cfg.ExcelSheetName)}, nil

	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Reader: repo, Cleanup: repo.Close}, nil

	case "sheets":
		src, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets source: %w", err)
		}
		logger.Info("Initialized Google Sheets backend", "spreadsheet_id", cfg.GoogleSpreadsheetID, "sheet", cfg.GoogleSheetName)
		return &Result{Reader: src}, nil

	case "memory":
		logger.Info("Initialized memory backend")
		return &Result{Reader: memory.New(nil)}, nil

	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
