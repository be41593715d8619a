package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mibarrunto/barrunto-backend/api/responses"
	"github.com/mibarrunto/barrunto-backend/api/validators"
	cartpkg "github.com/mibarrunto/barrunto-backend/internal/cart"
	"github.com/mibarrunto/barrunto-backend/internal/checkout"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
	"github.com/mibarrunto/barrunto-backend/pkg/types"
	"github.com/shopspring/decimal"
)

type cartView struct {
	Lines []types.LineItem `json:"lines"`
	Total decimal.Decimal  `json:"total"`
	Count int              `json:"count"`
}

func newCartView(c *cartpkg.Cart) cartView {
	return cartView{
		Lines: c.Lines(),
		Total: c.Total(),
		Count: c.Count(),
	}
}

type addToCartRequest struct {
	Code  string          `json:"code" validate:"required"`
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

type adjustQtyRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CartFetch returns the current cart contents, total and badge count.
func CartFetch(session *checkout.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newCartView(session.Cart))
	}
}

// CartAdd merges one unit of the item into the cart. Products, tiers and
// promotions all arrive through this endpoint with a code, display name and
// unit price.
func CartAdd(session *checkout.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addToCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if payload.Price.IsNegative() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative"))
			return
		}

		session.Cart.Add(cartpkg.Item{
			Code:  payload.Code,
			Name:  payload.Name,
			Price: payload.Price,
		})
		responses.WriteSuccess(w, newCartView(session.Cart))
	}
}

// CartAdjustQty changes a line's quantity by the signed delta. Dropping to
// zero or below removes the line.
func CartAdjustQty(session *checkout.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := cartIndex(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload adjustQtyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, ok := session.Cart.LineAt(index); !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found"))
			return
		}

		session.Cart.AdjustQuantity(index, payload.Delta)
		responses.WriteSuccess(w, newCartView(session.Cart))
	}
}

// CartRemove deletes a line. The client collects the user's confirmation
// before calling; the delete itself is unconditional.
func CartRemove(session *checkout.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := cartIndex(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, ok := session.Cart.LineAt(index); !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found"))
			return
		}

		session.Cart.Remove(index)
		responses.WriteSuccess(w, newCartView(session.Cart))
	}
}

func cartIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid cart line index")
	}
	return index, nil
}
