package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CardSummary is the aggregate of debits for one card.
type CardSummary struct {
	Card     string  `json:"card_number"`
	Spent    float64 `json:"total_spent"`
	Cashback float64 `json:"cashback"`
}

// CardSummaries groups debit rows by card number, summing absolute payment
// amounts and cashback per card. Credits and refunds (positive amounts) are
// excluded. Rows without a card number group under the empty key. Output is
// sorted by card key ascending so the result is deterministic for a fixed
// input; empty input yields an empty slice.
func CardSummaries(txns []Transaction) []CardSummary {
	type sums struct {
		spent    decimal.Decimal
		cashback decimal.Decimal
	}
	byCard := make(map[string]*sums)
	for _, t := range txns {
		if !t.IsDebit() {
			continue
		}
		s, ok := byCard[t.Card]
		if !ok {
			s = &sums{}
			byCard[t.Card] = s
		}
		s.spent = s.spent.Add(t.Amount.Abs())
		s.cashback = s.cashback.Add(t.Cashback)
	}

	cards := make([]string, 0, len(byCard))
	for card := range byCard {
		cards = append(cards, card)
	}
	sort.Strings(cards)

	out := make([]CardSummary, 0, len(cards))
	for _, card := range cards {
		s := byCard[card]
		out = append(out, CardSummary{
			Card:     card,
			Spent:    s.spent.InexactFloat64(),
			Cashback: s.cashback.InexactFloat64(),
		})
	}
	return out
}
