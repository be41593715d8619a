package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/mibarrunto/barrunto-backend/internal/transactions"
	"github.com/mibarrunto/barrunto-backend/pkg/types"
	"github.com/shopspring/decimal"
)

const (
	receiptTitle    = "BOLETA DE VENTA"
	receiptBusiness = "Mi Barrunto S.A.C."
	receiptRUC      = "20123456789"
	receiptFooter   = "¡Gracias por su preferencia!"
)

// ReceiptLine is one printed row of the boleta.
type ReceiptLine struct {
	Qty       int             `json:"qty"`
	Name      string          `json:"name"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Receipt is a pure projection of a transaction into the printable boleta.
// It carries no state of its own; the presentation surface decides how to
// render it.
type Receipt struct {
	Title    string             `json:"title"`
	Business string             `json:"business"`
	RUC      string             `json:"ruc"`
	TicketID string             `json:"ticketId"`
	Customer types.CustomerInfo `json:"customer"`
	Lines    []ReceiptLine      `json:"lines"`
	Total    decimal.Decimal    `json:"total"`
	Footer   string             `json:"footer"`
	IssuedAt time.Time          `json:"issuedAt"`
}

// NewReceipt projects the transaction into receipt form.
func NewReceipt(tx transactions.Transaction) Receipt {
	lines := make([]ReceiptLine, 0, len(tx.Items))
	for _, item := range tx.Items {
		lines = append(lines, ReceiptLine{
			Qty:       item.Qty,
			Name:      item.Name,
			LineTotal: item.LineTotal(),
		})
	}
	return Receipt{
		Title:    receiptTitle,
		Business: receiptBusiness,
		RUC:      receiptRUC,
		TicketID: tx.ID,
		Customer: tx.Customer,
		Lines:    lines,
		Total:    tx.Total,
		Footer:   receiptFooter,
		IssuedAt: tx.Date,
	}
}

// Format renders the receipt as plain text for ticket printers.
func (r Receipt) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Title)
	fmt.Fprintf(&b, "RUC: %s\n", r.RUC)
	fmt.Fprintf(&b, "%s\n", r.Business)
	fmt.Fprintf(&b, "Ticket #%s\n", r.TicketID)
	fmt.Fprintf(&b, "Cliente: %s\n", r.Customer.Name)
	fmt.Fprintf(&b, "Teléfono: %s\n", r.Customer.Phone)
	b.WriteString("--------------------------------\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%d x %-20s %8s\n", line.Qty, line.Name, line.LineTotal.StringFixed(2))
	}
	b.WriteString("--------------------------------\n")
	fmt.Fprintf(&b, "TOTAL: S/ %s\n", r.Total.StringFixed(2))
	fmt.Fprintf(&b, "%s\n", r.Footer)
	return b.String()
}
