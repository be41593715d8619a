package types

import "github.com/shopspring/decimal"

// LineItem is the snapshot shape shared by the cart, comanda tickets and
// recorded transactions. Price is retained per line so totals can always be
// recomputed independently of the stored aggregate.
type LineItem struct {
	Code  string          `json:"code,omitempty"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
}

// LineTotal returns price multiplied by quantity.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// SumLineItems adds up the line totals of the given items.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
