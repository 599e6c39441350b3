// finview-import loads an xlsx workbook of bank operations into the SQLite
// store so the server can run with DATA_BACKEND=sqlite.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"finview/internal/config"
	applog "finview/internal/log"
	"finview/internal/source/excel"
	"finview/internal/storage"
)

func main() {
	_ = godotenv.Load()

	fileFlag := flag.String("file", "", "path to the xlsx workbook (default: EXCEL_FILE_PATH)")
	sheetFlag := flag.String("sheet", "", "sheet name (default: the workbook's first sheet)")
	flag.Parse()

	logger := applog.New(applog.Config{Level: slog.LevelInfo})
	applog.SetDefault(logger)

	cfg := config.Load()
	path := *fileFlag
	if path == "" {
		path = cfg.ExcelFilePath
	}

	ctx := context.Background()
	txns, err := excel.New(path, *sheetFlag).ReadTransactions(ctx)
	if err != nil {
		logger.Error("Failed to read workbook", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("Workbook loaded", "path", path, "rows", len(txns))

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "path", cfg.SQLiteDBPath, "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	n, err := repo.WriteTransactions(ctx, txns)
	if err != nil {
		logger.Error("Import failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Import finished", "imported", n, "db_path", cfg.SQLiteDBPath)
}
