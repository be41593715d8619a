package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mibarrunto/barrunto-backend/internal/cart"
	"github.com/mibarrunto/barrunto-backend/internal/checkout"
	"github.com/shopspring/decimal"
)

func TestCheckoutOpenReflectsCart(t *testing.T) {
	session := testSession()
	handler := CheckoutOpen(session, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/checkout/open", nil))

	var envelope struct {
		Data struct {
			Open  bool `json:"open"`
			Count int  `json:"count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Open {
		t.Fatal("expected closed checkout for empty cart")
	}

	session.Cart.Add(cart.Item{Code: "P1", Name: "Bidón", Price: decimal.RequireFromString("12.50")})
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/checkout/open", nil))
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Open || envelope.Data.Count != 1 {
		t.Fatalf("expected open checkout with count 1 got %+v", envelope.Data)
	}
}

func TestCheckoutFinalizeReturnsReceipt(t *testing.T) {
	session := testSession()
	session.Cart.Add(cart.Item{Code: "P1", Name: "Bidón", Price: decimal.RequireFromString("12.50")})
	session.Cart.Add(cart.Item{Code: "P1", Name: "Bidón", Price: decimal.RequireFromString("12.50")})

	handler := CheckoutFinalize(session, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader([]byte(`{"name":"Luis","phone":"987654321"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data checkout.Receipt `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Title != "BOLETA DE VENTA" {
		t.Fatalf("expected boleta title got %q", envelope.Data.Title)
	}
	if !envelope.Data.Total.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("expected total 25.00 got %s", envelope.Data.Total)
	}
	if session.Cart.Len() != 0 {
		t.Fatal("expected cart cleared after finalize")
	}
	if session.Comandas.Len() != 1 {
		t.Fatalf("expected one comanda got %d", session.Comandas.Len())
	}
}

func TestCheckoutFinalizeEmptyCartIsUnprocessable(t *testing.T) {
	session := testSession()
	handler := CheckoutFinalize(session, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader([]byte(`{"name":"Luis","phone":"987654321"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

func TestCheckoutFinalizeRequiresCustomer(t *testing.T) {
	session := testSession()
	session.Cart.Add(cart.Item{Code: "P1", Name: "Bidón", Price: decimal.RequireFromString("12.50")})
	handler := CheckoutFinalize(session, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader([]byte(`{"phone":"987654321"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if session.Cart.Len() != 1 {
		t.Fatal("validation failure must not drain the cart")
	}
}
