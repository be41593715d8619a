// Package checkout coordinates the jump from cart to kitchen ticket: it
// snapshots the cart, mints the ticket and sale identifiers, enqueues the
// comanda and emits the printable receipt.
package checkout

import (
	"fmt"
	"time"

	"github.com/mibarrunto/barrunto-backend/internal/cart"
	"github.com/mibarrunto/barrunto-backend/internal/comandas"
	"github.com/mibarrunto/barrunto-backend/internal/transactions"
	"github.com/mibarrunto/barrunto-backend/pkg/enums"
	"github.com/mibarrunto/barrunto-backend/pkg/ids"
	"github.com/mibarrunto/barrunto-backend/pkg/types"
)

const (
	txIDPrefix      = "TX-"
	comandaIDPrefix = "CMD-"
)

// Policy selects when a sale is recorded in the transaction ledger.
type Policy string

const (
	// PolicyLazy records the sale when the comanda is marked ready. This is
	// the default: money counts once the kitchen delivered.
	PolicyLazy Policy = "lazy"
	// PolicyEager records the sale at checkout finalization.
	PolicyEager Policy = "eager"
)

// Options configures a session. Zero values fall back to production
// defaults.
type Options struct {
	IDs    ids.Generator
	Clock  func() time.Time
	Policy Policy
}

// Session owns the mutable order state for one storefront: the cart, the
// ticket queue and the sales ledger, all constructed empty. Tests build as
// many independent sessions as they need.
type Session struct {
	Cart         *cart.Cart
	Comandas     *comandas.Queue
	Transactions *transactions.Ledger

	ids    ids.Generator
	clock  func() time.Time
	policy Policy
}

// NewSession wires an empty session with the materialization policy applied
// consistently: under the lazy policy the queue records sales on ready,
// under the eager policy finalize records them directly.
func NewSession(opts Options) *Session {
	if opts.IDs == nil {
		opts.IDs = ids.NewGenerator()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Policy == "" {
		opts.Policy = PolicyLazy
	}

	ledger := transactions.NewLedger()
	var recorder comandas.TransactionRecorder
	if opts.Policy == PolicyLazy {
		recorder = ledger
	}

	return &Session{
		Cart:         cart.New(),
		Comandas:     comandas.NewQueue(recorder, opts.Clock),
		Transactions: ledger,
		ids:          opts.IDs,
		clock:        opts.Clock,
		policy:       opts.Policy,
	}
}

// Open reports whether checkout may proceed. An empty cart is a no-op, not
// an error; the storefront simply keeps the cart modal open.
func (s *Session) Open() bool {
	return s.Cart.Len() > 0
}

// Finalize turns the cart into a pending comanda and a receipt. The whole
// step is atomic from the caller's view: the cart drain either yields the
// full snapshot and empties the cart, or nothing happens at all.
func (s *Session) Finalize(customer types.CustomerInfo) (Receipt, error) {
	lines, total, ok := s.Cart.Drain()
	if !ok {
		return Receipt{}, ErrEmptyCart
	}

	now := s.clock()
	txID := s.ids.Next(txIDPrefix)
	cmdID := s.ids.Next(comandaIDPrefix)

	s.Comandas.Append(comandas.Comanda{
		ID:       cmdID,
		TxID:     txID,
		Items:    lines,
		Total:    total,
		Status:   enums.ComandaStatusPending,
		Time:     now,
		Customer: customer,
	})

	tx := transactions.Transaction{
		ID:       txID,
		Items:    lines,
		Total:    total,
		Date:     now,
		Customer: customer,
	}
	if s.policy == PolicyEager {
		s.Transactions.Record(tx)
	}

	return NewReceipt(tx), nil
}

// ErrEmptyCart signals the finalize precondition failed; callers treat it as
// a no-op rather than a user-facing error.
var ErrEmptyCart = fmt.Errorf("cart is empty")
