package controllers

import (
	"net/http"

	"github.com/mibarrunto/barrunto-backend/api/responses"
	"github.com/mibarrunto/barrunto-backend/api/validators"
	"github.com/mibarrunto/barrunto-backend/internal/reviews"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
)

type reviewRequest struct {
	Name   string `json:"name" validate:"required"`
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

// ReviewsList serves customer reviews, newest first.
func ReviewsList(store *reviews.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.All())
	}
}

// ReviewCreate stores a customer rating.
func ReviewCreate(store *reviews.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload reviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		review, err := store.Add(reviews.Input{
			Name:   payload.Name,
			Text:   payload.Text,
			Rating: payload.Rating,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}
