package controllers

import (
	"net/http"

	"github.com/mibarrunto/barrunto-backend/api/responses"
	"github.com/mibarrunto/barrunto-backend/api/validators"
	authsvc "github.com/mibarrunto/barrunto-backend/internal/auth"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
)

type loginRequest struct {
	User     string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthLogin exchanges the back-office credential pair for a bearer token.
func AuthLogin(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Login(payload.User, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}
