// finview-report builds the dashboard JSON for one anchor date and prints
// it to stdout or writes it to a file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"finview/internal/backend"
	"finview/internal/config"
	"finview/internal/feeds"
	applog "finview/internal/log"
	"finview/internal/report"
)

func main() {
	_ = godotenv.Load()

	dateFlag := flag.String("date", "", "anchor date in YYYY-MM-DD HH:MM:SS form (default: now)")
	outFlag := flag.String("out", "", "write the dashboard JSON to this file instead of stdout")
	flag.Parse()

	logger := applog.New(applog.Config{Level: slog.LevelWarn})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	src, err := backend.New(ctx, cfg, logger.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "source error:", err)
		os.Exit(1)
	}
	if src.Cleanup != nil {
		defer src.Cleanup()
	}

	composer := report.NewComposer(
		src.Reader,
		feeds.NewCurrencyClient(cfg.CurrencyAPIURL, cfg.CurrencyAPIKey, nil),
		feeds.NewStockClient(cfg.StockAPIURL, cfg.StockAPIKey, nil, nil),
		cfg.PreferencesPath,
	)

	d, err := composer.Dashboard(ctx, *dateFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "report error:", err)
		os.Exit(1)
	}

	if *outFlag != "" {
		if err := report.WriteJSONFile(*outFlag, d); err != nil {
			fmt.Fprintln(os.Stderr, "write error:", err)
			os.Exit(1)
		}
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		fmt.Fprintln(os.Stderr, "encode error:", err)
		os.Exit(1)
	}
}
