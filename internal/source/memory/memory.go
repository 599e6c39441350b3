// Package memory provides an in-memory transaction store for tests and
// local development.
package memory

import (
	"context"
	"sync"

	"finview/internal/core"
)

type Store struct {
	mu   sync.Mutex
	rows []core.Transaction
}

// New seeds a store with the given rows.
func New(rows []core.Transaction) *Store {
	s := &Store{}
	s.rows = append(s.rows, rows...)
	return s
}

// ReadTransactions returns a copy of the stored rows in insertion order.
func (s *Store) ReadTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

// WriteTransactions appends rows and returns the number stored.
func (s *Store) WriteTransactions(_ context.Context, txns []core.Transaction) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, txns...)
	return len(txns), nil
}
