package auth

import "github.com/golang-jwt/jwt/v5"

// RoleAdmin is the only role the back office knows about.
const RoleAdmin = "admin"

// AccessTokenClaims represents the typed JWT issued to the admin session.
type AccessTokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims grant back-office access.
func (c *AccessTokenClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
