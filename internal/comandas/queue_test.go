package comandas

import (
	"testing"
	"time"

	"github.com/mibarrunto/barrunto-backend/internal/transactions"
	"github.com/mibarrunto/barrunto-backend/pkg/enums"
	"github.com/mibarrunto/barrunto-backend/pkg/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingTicket(id, txID string) Comanda {
	return Comanda{
		ID:   id,
		TxID: txID,
		Items: []types.LineItem{
			{Code: "P1", Name: "Bidón", Price: decimal.RequireFromString("12.50"), Qty: 2},
		},
		Total:    decimal.RequireFromString("25.00"),
		Status:   enums.ComandaStatusPending,
		Time:     time.Now(),
		Customer: types.CustomerInfo{Name: "Luis", Phone: "987654321"},
	}
}

func TestMarkReadyRecordsTransactionOnce(t *testing.T) {
	ledger := transactions.NewLedger()
	q := NewQueue(ledger, nil)
	q.Append(pendingTicket("CMD-000001", "TX-000001"))

	ticket, ok := q.MarkReady("CMD-000001")
	require.True(t, ok)
	assert.Equal(t, enums.ComandaStatusReady, ticket.Status)

	require.Equal(t, 1, ledger.Len())
	tx := ledger.All()[0]
	assert.Equal(t, "TX-000001", tx.ID)
	assert.True(t, tx.Total.Equal(decimal.RequireFromString("25.00")))
	assert.Equal(t, "Luis", tx.Customer.Name)

	// Double click: no second transaction, status unchanged.
	ticket, ok = q.MarkReady("CMD-000001")
	assert.False(t, ok)
	assert.Equal(t, enums.ComandaStatusReady, ticket.Status)
	assert.Equal(t, 1, ledger.Len())
}

func TestCancelNeverCreatesTransaction(t *testing.T) {
	ledger := transactions.NewLedger()
	q := NewQueue(ledger, nil)
	q.Append(pendingTicket("CMD-000002", "TX-000002"))

	ticket, ok := q.Cancel("CMD-000002")
	require.True(t, ok)
	assert.Equal(t, enums.ComandaStatusCanceled, ticket.Status)
	assert.Equal(t, 0, ledger.Len())
}

func TestTransitionsAreMonotonic(t *testing.T) {
	q := NewQueue(nil, nil)
	q.Append(pendingTicket("CMD-000003", "TX-000003"))
	q.Append(pendingTicket("CMD-000004", "TX-000004"))

	_, ok := q.MarkReady("CMD-000003")
	require.True(t, ok)
	_, ok = q.Cancel("CMD-000004")
	require.True(t, ok)

	// Ready tickets cannot regress to canceled and vice versa.
	ticket, ok := q.Cancel("CMD-000003")
	assert.False(t, ok)
	assert.Equal(t, enums.ComandaStatusReady, ticket.Status)

	ticket, ok = q.MarkReady("CMD-000004")
	assert.False(t, ok)
	assert.Equal(t, enums.ComandaStatusCanceled, ticket.Status)
}

func TestUnknownIDIsNoOp(t *testing.T) {
	q := NewQueue(nil, nil)
	if _, ok := q.MarkReady("CMD-404"); ok {
		t.Fatalf("unknown ticket should not transition")
	}
	if _, ok := q.Cancel("CMD-404"); ok {
		t.Fatalf("unknown ticket should not transition")
	}
	if _, ok := q.Get("CMD-404"); ok {
		t.Fatalf("unknown ticket should not be found")
	}
}

func TestFilterIsPureAndOrderPreserving(t *testing.T) {
	q := NewQueue(nil, nil)
	q.Append(pendingTicket("CMD-000005", "TX-000005"))
	q.Append(pendingTicket("CMD-000006", "TX-000006"))
	q.Append(pendingTicket("CMD-000007", "TX-000007"))
	q.MarkReady("CMD-000006")

	ready := q.Filter("ready")
	require.Len(t, ready, 1)
	assert.Equal(t, "CMD-000006", ready[0].ID)

	all := q.Filter(FilterAll)
	require.Len(t, all, 3)
	assert.Equal(t, "CMD-000005", all[0].ID)
	assert.Equal(t, "CMD-000006", all[1].ID)
	assert.Equal(t, "CMD-000007", all[2].ID)
	assert.Equal(t, enums.ComandaStatusPending, all[0].Status)
	assert.Equal(t, enums.ComandaStatusReady, all[1].Status)

	// Filtering twice must not discard or reorder underlying tickets.
	assert.Equal(t, 3, q.Len())
}

func TestTicketSnapshotIsFrozen(t *testing.T) {
	q := NewQueue(nil, nil)
	ticket := pendingTicket("CMD-000008", "TX-000008")
	q.Append(ticket)

	// Mutating the caller's copy must not affect the stored ticket.
	ticket.Total = decimal.RequireFromString("999.00")
	stored, ok := q.Get("CMD-000008")
	require.True(t, ok)
	assert.True(t, stored.Total.Equal(decimal.RequireFromString("25.00")))
}
