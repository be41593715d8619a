package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mibarrunto/barrunto-backend/api/responses"
	"github.com/mibarrunto/barrunto-backend/api/validators"
	promosvc "github.com/mibarrunto/barrunto-backend/internal/promotions"
	"github.com/mibarrunto/barrunto-backend/pkg/db/models"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type promotionRequest struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"desc"`
	Price       *decimal.Decimal `json:"price"`
	OldPrice    *decimal.Decimal `json:"oldPrice"`
	Img         string           `json:"img"`
	Duration    string           `json:"duration"`
	Tiers       []models.Tier    `json:"tiers"`
}

func (r promotionRequest) toInput() promosvc.PromotionInput {
	return promosvc.PromotionInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		OldPrice:    r.OldPrice,
		Img:         r.Img,
		Duration:    r.Duration,
		Tiers:       r.Tiers,
	}
}

// PromotionsList serves the active offers shown on the storefront.
func PromotionsList(svc promosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "promotions service unavailable"))
			return
		}

		promos, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, promos)
	}
}

// AdminCreatePromotion publishes a new offer.
func AdminCreatePromotion(svc promosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "promotions service unavailable"))
			return
		}

		var payload promotionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		promo, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, promo)
	}
}

// AdminDeletePromotion retires an offer.
func AdminDeletePromotion(svc promosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "promotions service unavailable"))
			return
		}

		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"deleted": id})
	}
}
