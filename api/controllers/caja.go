package controllers

import (
	"net/http"

	"github.com/mibarrunto/barrunto-backend/api/responses"
	"github.com/mibarrunto/barrunto-backend/internal/checkout"
	"github.com/mibarrunto/barrunto-backend/internal/transactions"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type cajaView struct {
	Transactions []transactions.Transaction `json:"transactions"`
	TotalSales   decimal.Decimal            `json:"totalSales"`
}

// CajaReport serves the sales ledger, newest first, with the derived total.
func CajaReport(session *checkout.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, cajaView{
			Transactions: session.Transactions.All(),
			TotalSales:   session.Transactions.TotalSales(),
		})
	}
}
