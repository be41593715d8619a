package controllers

import (
	"errors"
	"net/http"

	"github.com/mibarrunto/barrunto-backend/api/responses"
	"github.com/mibarrunto/barrunto-backend/api/validators"
	"github.com/mibarrunto/barrunto-backend/internal/checkout"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
	"github.com/mibarrunto/barrunto-backend/pkg/metrics"
	"github.com/mibarrunto/barrunto-backend/pkg/types"
)

type checkoutRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

// CheckoutOpen reports whether the checkout modal may open. An empty cart
// keeps it closed without raising an error.
func CheckoutOpen(session *checkout.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"open":  session.Open(),
			"count": session.Cart.Count(),
		})
	}
}

// CheckoutFinalize drains the cart into a pending comanda and returns the
// printable receipt.
func CheckoutFinalize(session *checkout.Session, m *metrics.OrderMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := session.Finalize(types.CustomerInfo{
			Name:    payload.Name,
			Phone:   payload.Phone,
			Address: payload.Address,
		})
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty"))
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncPlaced()
		if logg != nil {
			ctx := logg.WithField(r.Context(), "ticket_id", receipt.TicketID)
			logg.Info(ctx, "checkout.finalized")
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}
