// Package report composes the JSON reports served by finview: the combined
// dashboard, the trailing-90-day category report, and the transaction
// search.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"finview/internal/core"
	"finview/internal/feeds"
	"finview/internal/source"
)

type (
	// RatesFetcher and PricesFetcher are the feed ports the composer
	// degrades over when a remote service is down.
	RatesFetcher interface {
		Latest(ctx context.Context) ([]feeds.Rate, error)
	}

	PricesFetcher interface {
		LatestCloses(ctx context.Context) ([]feeds.Price, error)
	}

	// EventPublisher is notified after each successful dashboard build.
	EventPublisher interface {
		PublishReportBuilt(ctx context.Context, anchor time.Time) error
	}
)

// Dashboard is the combined payload served for one anchor instant.
type Dashboard struct {
	Greeting        string                `json:"greeting"`
	Cards           []core.CardSummary    `json:"cards"`
	TopTransactions []core.TopTransaction `json:"top_transactions"`
	CurrencyRates   []feeds.Rate          `json:"currency_rates"`
	StockPrices     []feeds.Price         `json:"stock_prices"`
}

// Preferences is the static user-settings payload rewritten wholesale on
// every dashboard build.
type Preferences struct {
	UserCurrencies []string `json:"user_currencies"`
	UserStocks     []string `json:"user_stocks"`
}

var defaultPreferences = Preferences{
	UserCurrencies: []string{"USD", "EUR"},
	UserStocks:     []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"},
}

type Composer struct {
	src       source.TransactionReader
	rates     RatesFetcher
	stocks    PricesFetcher
	events    EventPublisher
	prefsPath string
}

func NewComposer(src source.TransactionReader, rates RatesFetcher, stocks PricesFetcher, prefsPath string) *Composer {
	return &Composer{src: src, rates: rates, stocks: stocks, prefsPath: prefsPath}
}

// SetEventPublisher attaches an optional publisher for report-built events.
func (c *Composer) SetEventPublisher(p EventPublisher) {
	c.events = p
}

// Dashboard assembles the combined report for an anchor string in
// YYYY-MM-DD HH:MM:SS form; the empty string means now. A malformed anchor
// surfaces as *core.FormatError. Feed failures never do: each feed degrades
// independently to an empty list.
func (c *Composer) Dashboard(ctx context.Context, anchorStr string) (Dashboard, error) {
	anchor, err := core.ParseAnchor(anchorStr)
	if err != nil {
		return Dashboard{}, err
	}

	txns, err := c.src.ReadTransactions(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load transactions: %w", err)
	}
	window := core.FilterWindow(txns, anchor, core.MonthToDate)

	d := Dashboard{
		Greeting:        core.Greeting(anchor),
		Cards:           core.CardSummaries(window),
		TopTransactions: core.TopTransactions(window, core.DefaultTopLimit),
		CurrencyRates:   []feeds.Rate{},
		StockPrices:     []feeds.Price{},
	}

	// The feeds are independent, so fetch them concurrently. Errors are
	// logged and swallowed here: a down feed leaves its list empty.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rates, err := c.rates.Latest(gctx)
		if err != nil {
			slog.WarnContext(gctx, "Currency feed degraded to empty result", "error", err)
			return nil
		}
		d.CurrencyRates = rates
		return nil
	})
	g.Go(func() error {
		prices, err := c.stocks.LatestCloses(gctx)
		if err != nil {
			slog.WarnContext(gctx, "Stock feed degraded to empty result", "error", err)
			return nil
		}
		d.StockPrices = prices
		return nil
	})
	_ = g.Wait()

	if err := WriteJSONFile(c.prefsPath, defaultPreferences); err != nil {
		slog.WarnContext(ctx, "Preferences write failed", "path", c.prefsPath, "error", err)
	}

	if c.events != nil {
		if err := c.events.PublishReportBuilt(ctx, anchor); err != nil {
			slog.WarnContext(ctx, "Report event publish failed", "error", err)
		}
	}

	return d, nil
}

// Row mirrors one transaction in search and category-report output.
type Row struct {
	Date        string  `json:"date"`
	Card        string  `json:"card_number"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"payment_amount"`
	Cashback    float64 `json:"cashback"`
}

func rowFromTransaction(t core.Transaction) Row {
	return Row{
		Date:        t.Timestamp.Format(core.OperationLayout),
		Card:        t.Card,
		Category:    t.Category,
		Description: t.Description,
		Amount:      t.Amount.InexactFloat64(),
		Cashback:    t.Cashback.InexactFloat64(),
	}
}

// ExpensesByCategory returns the rows of the given category within the
// trailing 90 days ending at the anchor. A malformed anchor surfaces as
// *core.FormatError; a failing source degrades to an empty list.
func (c *Composer) ExpensesByCategory(ctx context.Context, category, anchorStr string) ([]Row, error) {
	anchor, err := core.ParseAnchor(anchorStr)
	if err != nil {
		return nil, err
	}

	txns, err := c.src.ReadTransactions(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Category report degraded to empty result", "category", category, "error", err)
		return []Row{}, nil
	}

	rows := make([]Row, 0)
	for _, t := range core.FilterWindow(txns, anchor, core.Trailing90Days) {
		if t.Category != category {
			continue
		}
		rows = append(rows, rowFromTransaction(t))
	}
	return rows, nil
}

// SearchTransactions runs the case-insensitive search over the full
// transaction set. A failing source degrades to an empty list.
func (c *Composer) SearchTransactions(ctx context.Context, pattern string) []Row {
	txns, err := c.src.ReadTransactions(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Search degraded to empty result", "pattern", pattern, "error", err)
		return []Row{}
	}

	rows := make([]Row, 0)
	for _, t := range core.Search(txns, pattern) {
		rows = append(rows, rowFromTransaction(t))
	}
	return rows
}
