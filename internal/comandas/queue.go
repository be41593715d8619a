// Package comandas manages kitchen tickets. A ticket is created pending at
// checkout, moves exactly once to ready or canceled, and is retained forever
// for history.
package comandas

import (
	"sync"
	"time"

	"github.com/mibarrunto/barrunto-backend/internal/transactions"
	"github.com/mibarrunto/barrunto-backend/pkg/enums"
	"github.com/mibarrunto/barrunto-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// FilterAll selects every ticket regardless of status.
const FilterAll = "all"

// Comanda is one kitchen ticket. Items and total are frozen at creation;
// later catalog edits never touch historical tickets.
type Comanda struct {
	ID       string              `json:"id"`
	TxID     string              `json:"txId"`
	Items    []types.LineItem    `json:"items"`
	Total    decimal.Decimal     `json:"total"`
	Status   enums.ComandaStatus `json:"status"`
	Time     time.Time           `json:"time"`
	Customer types.CustomerInfo  `json:"customer"`
}

// TransactionRecorder receives the sale when a ticket becomes ready. Under
// the lazy materialization policy this is the transaction ledger; under the
// eager policy the checkout coordinator records instead and the queue gets
// nil.
type TransactionRecorder interface {
	Record(tx transactions.Transaction)
}

// Queue holds tickets in creation order.
type Queue struct {
	mu       sync.Mutex
	tickets  []Comanda
	recorder TransactionRecorder
	clock    func() time.Time
}

// NewQueue builds a ticket queue. recorder may be nil when sales are
// recorded eagerly at checkout.
func NewQueue(recorder TransactionRecorder, clock func() time.Time) *Queue {
	if clock == nil {
		clock = time.Now
	}
	return &Queue{recorder: recorder, clock: clock}
}

// Append adds a freshly created pending ticket. Checkout is the only caller.
func (q *Queue) Append(c Comanda) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.tickets = append(q.tickets, c)
}

// Get returns a copy of the ticket, answering the "would cancel" query the
// UI raises before asking for confirmation.
func (q *Queue) Get(id string) (Comanda, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, ticket := range q.tickets {
		if ticket.ID == id {
			return ticket, true
		}
	}
	return Comanda{}, false
}

// MarkReady moves a pending ticket to ready and, when a recorder is wired,
// materializes the sale from the ticket's frozen snapshot. Unknown ids and
// tickets already in a terminal state are no-ops, so a double click cannot
// record the sale twice.
func (q *Queue) MarkReady(id string) (Comanda, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.tickets {
		if q.tickets[i].ID != id {
			continue
		}
		if q.tickets[i].Status != enums.ComandaStatusPending {
			return q.tickets[i], false
		}
		q.tickets[i].Status = enums.ComandaStatusReady
		if q.recorder != nil {
			q.recorder.Record(transactions.Transaction{
				ID:       q.tickets[i].TxID,
				Items:    q.tickets[i].Items,
				Total:    q.tickets[i].Total,
				Date:     q.clock(),
				Customer: q.tickets[i].Customer,
			})
		}
		return q.tickets[i], true
	}
	return Comanda{}, false
}

// Cancel moves a pending ticket to canceled. No transaction is ever created
// for a canceled ticket. Unknown ids and terminal tickets are no-ops.
func (q *Queue) Cancel(id string) (Comanda, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.tickets {
		if q.tickets[i].ID != id {
			continue
		}
		if q.tickets[i].Status != enums.ComandaStatusPending {
			return q.tickets[i], false
		}
		q.tickets[i].Status = enums.ComandaStatusCanceled
		return q.tickets[i], true
	}
	return Comanda{}, false
}

// Filter returns tickets matching the status, or every ticket for FilterAll.
// The projection preserves creation order and never mutates the queue.
func (q *Queue) Filter(filter string) []Comanda {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Comanda, 0, len(q.tickets))
	for _, ticket := range q.tickets {
		if filter == FilterAll || string(ticket.Status) == filter {
			out = append(out, ticket)
		}
	}
	return out
}

// Len returns the total ticket count across all statuses.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.tickets)
}
