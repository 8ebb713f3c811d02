// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// HTTP client initialization, trace ID generation and unverified JWT
// inspection.
package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by [InspectJWT] when the token is not a
// three-segment JWT. Bearer credentials are opaque, so this is not a failure
// of the credential itself.
var ErrNotJWT = errors.New("token is not a jwt")

// ErrMalformedJWT is returned by [InspectJWT] when the token has the
// three-segment shape of a JWT but its header or claims cannot be decoded.
var ErrMalformedJWT = errors.New("malformed jwt")

// JWTClaims is the subset of registered claims shown to the user.
type JWTClaims struct {
	Subject   string
	Issuer    string
	ExpiresAt *time.Time
}

// InspectJWT decodes the registered claims of tokenString WITHOUT verifying
// its signature. The result must only be used for display; the backend is
// the sole authority on whether a token is valid.
//
// Example usage:
//
//	claims, err := utils.InspectJWT(rawToken)
//	if errors.Is(err, utils.ErrNotJWT) {
//	    // opaque token, nothing to show
//	}
func InspectJWT(tokenString string) (JWTClaims, error) {
	if strings.Count(tokenString, ".") != 2 {
		return JWTClaims{}, ErrNotJWT
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return JWTClaims{}, fmt.Errorf("%w: %w", ErrMalformedJWT, err)
	}

	out := JWTClaims{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		out.ExpiresAt = &exp
	}

	return out, nil
}
