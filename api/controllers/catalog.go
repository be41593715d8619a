package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mibarrunto/barrunto-backend/api/responses"
	"github.com/mibarrunto/barrunto-backend/api/validators"
	catalogsvc "github.com/mibarrunto/barrunto-backend/internal/catalog"
	"github.com/mibarrunto/barrunto-backend/pkg/db/models"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"desc"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Img         string          `json:"img"`
	Tiers       []models.Tier   `json:"tiers"`
}

func (r productRequest) toInput() catalogsvc.ProductInput {
	return catalogsvc.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Img:         r.Img,
		Tiers:       r.Tiers,
	}
}

// CatalogList serves the public menu.
func CatalogList(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// AdminCreateProduct adds a product to the menu.
func AdminCreateProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct replaces the editable fields of a product.
func AdminUpdateProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		code := chi.URLParam(r, "code")

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), code, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product from the menu. Historical comandas
// keep their frozen snapshots.
func AdminDeleteProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		code := chi.URLParam(r, "code")
		if err := svc.Delete(r.Context(), code); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"deleted": code})
	}
}
