// Package transactions keeps the append-only record of completed sales shown
// in the caja view.
package transactions

import (
	"sync"
	"time"

	"github.com/mibarrunto/barrunto-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Transaction is one recorded sale. Items and total are frozen snapshots
// taken at checkout.
type Transaction struct {
	ID       string             `json:"id"`
	Items    []types.LineItem   `json:"items"`
	Total    decimal.Decimal    `json:"total"`
	Date     time.Time          `json:"date"`
	Customer types.CustomerInfo `json:"customer"`
}

// Ledger stores transactions newest-first. Entries are never updated or
// removed.
type Ledger struct {
	mu      sync.Mutex
	entries []Transaction
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record inserts the transaction at the front.
func (l *Ledger) Record(tx Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Transaction{tx}, l.entries...)
}

// All returns a copy of the entries, most recent first.
func (l *Ledger) All() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// TotalSales derives the sum of all recorded totals. Reporting is a read,
// not stored state.
func (l *Ledger) TotalSales() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := decimal.Zero
	for _, tx := range l.entries {
		total = total.Add(tx.Total)
	}
	return total
}

// Len returns the number of recorded sales.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}
