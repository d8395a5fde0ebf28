package usecase

import "paradise-inn/internal/pkg/jwt"

// TokenValidator provides token inspection for the auth middleware. Subject
// extraction verifies the signature first; Valid additionally checks expiry
// and that the token was issued for the expected identity.
type TokenValidator interface {
	ExtractSubject(tokenString string) (string, error)
	Valid(tokenString, expectedSubject string) bool
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ExtractSubject(tokenString string) (string, error) {
	return t.jwtService.ExtractSubject(tokenString)
}

func (t *tokenValidatorImpl) Valid(tokenString, expectedSubject string) bool {
	return t.jwtService.Valid(tokenString, expectedSubject)
}
