// Package source defines the transaction loading ports and the row parsing
// shared by the concrete spreadsheet loaders.
package source

import (
	"context"

	"finview/internal/core"
)

type (
	// TransactionReader loads the full transaction set for one request.
	// Implementations return rows in source order; callers treat the result
	// as immutable for the duration of the request.
	TransactionReader interface {
		ReadTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	// TransactionWriter persists transactions, used by the import tool.
	TransactionWriter interface {
		WriteTransactions(ctx context.Context, txns []core.Transaction) (int, error)
	}
)
