package usecase

import (
	"haggle-service/internal/domain/identity"
	"haggle-service/internal/pkg/errs"
	"haggle-service/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides access token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, identity.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, identity.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role := identity.Role(claims.Role)
	if !role.IsValid() {
		return uuid.Nil, "", errs.New("unknown role in token claims")
	}

	return claims.UserID, role, nil
}
