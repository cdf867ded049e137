package usecase

import (
	"context"

	"cart-recovery/internal/pkg/config"
	"cart-recovery/internal/pkg/errs"
	"cart-recovery/internal/pkg/jwt"
	"cart-recovery/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

// AuthUseCase authenticates the single admin identity guarding the
// reporting and settings API.
type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (string, error)
}

type authUseCaseImpl struct {
	jwtService *jwt.Service
	adminEmail string
	adminHash  string
}

func NewAuthUseCase(jwtService *jwt.Service, cfg config.Config) AuthUseCase {
	return &authUseCaseImpl{
		jwtService: jwtService,
		adminEmail: cfg.Recovery.AdminEmail,
		adminHash:  cfg.Recovery.AdminPasswordHash,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, email, plainPassword string) (string, error) {
	if email != a.adminEmail {
		return "", ErrInvalidCredentials
	}
	if err := password.Verify(a.adminHash, plainPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(email)
	if err != nil {
		return "", errs.Wrap(err, "failed to generate token")
	}
	return token, nil
}
