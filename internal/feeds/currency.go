// Package feeds fetches currency rates and stock closes from external HTTP
// APIs and reshapes them into flat record lists for the dashboard.
package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Rate is one flattened currency quote.
type Rate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// CurrencyClient fetches the latest exchange rates from an
// apilayer-compatible endpoint.
type CurrencyClient struct {
	url    string
	apiKey string
	http   *http.Client
}

func NewCurrencyClient(url, apiKey string, client *http.Client) *CurrencyClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &CurrencyClient{url: url, apiKey: apiKey, http: client}
}

// Latest returns the remote rates object flattened into a list, preserving
// the key order of the payload.
func (c *CurrencyClient) Latest(ctx context.Context) ([]Rate, error) {
	if c.apiKey == "" {
		return nil, &ConfigError{Missing: "CURRENCY_API_KEY"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build currency request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch currency rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteServiceError{Service: "currency", StatusCode: resp.StatusCode}
	}

	rates, err := decodeRates(resp.Body)
	if err != nil {
		return nil, &RemoteServiceError{Service: "currency", StatusCode: resp.StatusCode, Err: err}
	}
	return rates, nil
}

// decodeRates walks the JSON token stream so the order of keys inside the
// rates object survives; decoding into a Go map would shuffle it.
func decodeRates(r io.Reader) ([]Rate, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		if key != "rates" {
			// Consume and discard the value of any other top-level key.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
			continue
		}
		return decodeRatesObject(dec)
	}
	return nil, fmt.Errorf("payload has no rates object")
}

func decodeRatesObject(dec *json.Decoder) ([]Rate, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("rates is not an object")
	}

	out := make([]Rate, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		currency, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected rates key %v", keyTok)
		}
		var rate float64
		if err := dec.Decode(&rate); err != nil {
			return nil, fmt.Errorf("rate for %s: %w", currency, err)
		}
		out = append(out, Rate{Currency: currency, Rate: rate})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}
