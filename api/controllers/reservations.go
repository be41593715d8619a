package controllers

import (
	"net/http"

	"github.com/mibarrunto/barrunto-backend/api/responses"
	"github.com/mibarrunto/barrunto-backend/api/validators"
	"github.com/mibarrunto/barrunto-backend/internal/reservations"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
)

type reservationRequest struct {
	Product string `json:"product" validate:"required"`
	Qty     int    `json:"qty" validate:"required,min=1"`
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// ReservationCreate books a delivery from the storefront.
func ReservationCreate(store *reservations.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload reservationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		res, err := store.Add(reservations.Input{
			Product: payload.Product,
			Qty:     payload.Qty,
			Name:    payload.Name,
			Phone:   payload.Phone,
			Address: payload.Address,
			Date:    payload.Date,
			Time:    payload.Time,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, res)
	}
}

// AdminReservationsList serves the bookings, newest first.
func AdminReservationsList(store *reservations.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.All())
	}
}
