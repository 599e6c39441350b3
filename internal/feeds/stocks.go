package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultWatchList is the fixed set of tickers shown on the dashboard.
var DefaultWatchList = []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"}

// Price is one closing quote.
type Price struct {
	Symbol string  `json:"symbol"`
	Close  float64 `json:"close"`
}

// StockClient fetches end-of-day closes from a marketstack-compatible
// endpoint.
type StockClient struct {
	url    string
	apiKey string
	watch  []string
	http   *http.Client
}

func NewStockClient(url, apiKey string, watch []string, client *http.Client) *StockClient {
	if len(watch) == 0 {
		watch = DefaultWatchList
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &StockClient{url: url, apiKey: apiKey, watch: watch, http: client}
}

// LatestCloses returns {symbol, close} records for the watch list in
// payload order, truncated to the watch-list size.
func (c *StockClient) LatestCloses(ctx context.Context) ([]Price, error) {
	if c.apiKey == "" {
		return nil, &ConfigError{Missing: "STOCK_API_KEY"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build stock request: %w", err)
	}
	q := req.URL.Query()
	q.Set("access_key", c.apiKey)
	q.Set("symbols", strings.Join(c.watch, ","))
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch stock prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteServiceError{Service: "stocks", StatusCode: resp.StatusCode}
	}

	var payload struct {
		Data []struct {
			Symbol string  `json:"symbol"`
			Close  float64 `json:"close"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &RemoteServiceError{Service: "stocks", StatusCode: resp.StatusCode, Err: err}
	}

	out := make([]Price, 0, len(payload.Data))
	for _, d := range payload.Data {
		out = append(out, Price{Symbol: d.Symbol, Close: d.Close})
	}
	if len(out) > len(c.watch) {
		out = out[:len(c.watch)]
	}
	return out, nil
}
