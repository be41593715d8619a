package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mibarrunto/barrunto-backend/api/responses"
	"github.com/mibarrunto/barrunto-backend/api/validators"
	"github.com/mibarrunto/barrunto-backend/internal/checkout"
	"github.com/mibarrunto/barrunto-backend/internal/comandas"
	"github.com/mibarrunto/barrunto-backend/pkg/enums"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
	"github.com/mibarrunto/barrunto-backend/pkg/metrics"
)

// ComandasList serves the kitchen queue, optionally filtered by status.
func ComandasList(session *checkout.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := validators.StringQuery(r, "status", comandas.FilterAll)
		if filter != comandas.FilterAll {
			if _, err := enums.ParseComandaStatus(filter); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
		}

		responses.WriteSuccess(w, session.Comandas.Filter(filter))
	}
}

// ComandaDetail returns one ticket, backing the cancel confirmation prompt.
func ComandaDetail(session *checkout.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		ticket, ok := session.Comandas.Get(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "comanda not found"))
			return
		}
		responses.WriteSuccess(w, ticket)
	}
}

// ComandaReady moves a pending ticket to ready, which under the lazy policy
// also records the sale.
func ComandaReady(session *checkout.Session, m *metrics.OrderMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ticket, ok := session.Comandas.MarkReady(id)
		if !ok {
			writeTransitionError(w, r, session, id, logg)
			return
		}

		m.IncReady()
		if logg != nil {
			ctx := logg.WithComandaID(r.Context(), ticket.ID)
			logg.Info(ctx, "comanda.ready")
		}

		responses.WriteSuccess(w, ticket)
	}
}

// ComandaCancel moves a pending ticket to canceled. The client collects the
// confirmation first; no sale is ever recorded for a canceled ticket.
func ComandaCancel(session *checkout.Session, m *metrics.OrderMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ticket, ok := session.Comandas.Cancel(id)
		if !ok {
			writeTransitionError(w, r, session, id, logg)
			return
		}

		m.IncCanceled()
		if logg != nil {
			ctx := logg.WithComandaID(r.Context(), ticket.ID)
			logg.Info(ctx, "comanda.canceled")
		}

		responses.WriteSuccess(w, ticket)
	}
}

// writeTransitionError distinguishes an unknown ticket from one already in a
// terminal state.
func writeTransitionError(w http.ResponseWriter, r *http.Request, session *checkout.Session, id string, logg *logger.Logger) {
	ticket, exists := session.Comandas.Get(id)
	if !exists {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "comanda not found"))
		return
	}
	responses.WriteError(r.Context(), logg, w,
		pkgerrors.New(pkgerrors.CodeStateConflict, "comanda is already "+ticket.Status.String()))
}
