// Package auth provides JWT bearer-token generation and validation for the finfo API.
//
// Tokens are HS256-signed and minted offline with `finfod token create`,
// so there is no login flow and no refresh token: clients present the
// minted token as a Bearer credential on every request.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by finfo API tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Name identifies the client the token was issued for.
	// It mirrors the Subject claim and is surfaced in request logs.
	Name string `json:"name,omitempty"`
}
