package usecase

import (
	"github.com/Nathan-Yinka/vendy-stores/internal/domain/auth"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the caller's identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (auth.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Principal{}, err
	}

	buyerID, err := claims.BuyerID()
	if err != nil {
		return auth.Principal{}, err
	}

	role := auth.RoleUser
	if claims.Role != "" {
		if role, err = auth.NewRole(claims.Role); err != nil {
			return auth.Principal{}, err
		}
	}

	return auth.Principal{BuyerID: buyerID, Role: role}, nil
}
