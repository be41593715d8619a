package transactions

import (
	"testing"
	"time"

	"github.com/mibarrunto/barrunto-backend/pkg/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id string, total string) Transaction {
	return Transaction{
		ID:       id,
		Total:    decimal.RequireFromString(total),
		Date:     time.Now(),
		Customer: types.CustomerInfo{Name: "Ana", Phone: "999"},
	}
}

func TestRecordKeepsNewestFirst(t *testing.T) {
	l := NewLedger()
	l.Record(tx("TX-000001", "10.00"))
	l.Record(tx("TX-000002", "20.00"))
	l.Record(tx("TX-000003", "30.00"))

	all := l.All()
	require.Len(t, all, 3)
	assert.Equal(t, "TX-000003", all[0].ID)
	assert.Equal(t, "TX-000001", all[2].ID)
}

func TestTotalSalesIsDerived(t *testing.T) {
	l := NewLedger()
	assert.True(t, l.TotalSales().IsZero())

	l.Record(tx("TX-000001", "12.50"))
	l.Record(tx("TX-000002", "7.50"))
	assert.True(t, l.TotalSales().Equal(decimal.RequireFromString("20.00")))
}

func TestAllReturnsCopy(t *testing.T) {
	l := NewLedger()
	l.Record(tx("TX-000001", "5.00"))

	all := l.All()
	all[0].ID = "mutated"

	assert.Equal(t, "TX-000001", l.All()[0].ID)
}
