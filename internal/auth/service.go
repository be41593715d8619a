package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	pkgauth "github.com/mibarrunto/barrunto-backend/pkg/auth"
	"github.com/mibarrunto/barrunto-backend/pkg/config"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
)

// Session is the result of a successful back-office login.
type Session struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service authenticates the single back-office operator.
type Service interface {
	Login(user, password string) (Session, error)
}

type service struct {
	admin config.AdminConfig
	jwt   config.JWTConfig
	clock func() time.Time
}

func NewService(admin config.AdminConfig, jwt config.JWTConfig) (Service, error) {
	if admin.User == "" || admin.Password == "" {
		return nil, fmt.Errorf("admin credentials required")
	}
	return &service{admin: admin, jwt: jwt, clock: time.Now}, nil
}

// NewServiceAt is NewService with an injectable clock for tests.
func NewServiceAt(admin config.AdminConfig, jwt config.JWTConfig, clock func() time.Time) (Service, error) {
	svc, err := NewService(admin, jwt)
	if err != nil {
		return nil, err
	}
	svc.(*service).clock = clock
	return svc, nil
}

func (s *service) Login(user, password string) (Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.admin.User)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	if !userOK || !passOK {
		return Session{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.clock()
	token, err := pkgauth.MintAccessToken(s.jwt, now, pkgauth.RoleAdmin)
	if err != nil {
		return Session{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return Session{
		Token:     token,
		Role:      pkgauth.RoleAdmin,
		ExpiresAt: now.Add(time.Duration(s.jwt.ExpirationMinutes) * time.Minute),
	}, nil
}
