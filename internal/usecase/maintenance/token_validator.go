package maintenance

import (
	"allure-rental/internal/pkg/jwt"
)

// TokenValidator checks webhook bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (issuer string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString, jwt.ScopeMaintenance)
	if err != nil {
		return "", err
	}
	return claims.Issuer, nil
}
