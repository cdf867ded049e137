package usecase

import (
	"cart-recovery/internal/pkg/jwt"
)

// TokenValidator decouples the auth middleware from the concrete JWT
// implementation.
type TokenValidator interface {
	ValidateToken(token string) (email string, err error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (string, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}
