package jwt_generator

import "github.com/golang-jwt/jwt/v4"

const IssuerDefault = "user-api"

// TokenTypeRefresh marks refresh tokens so they are rejected on routes that
// expect an access token.
const TokenTypeRefresh = "refresh"

type Claims struct {
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"type,omitempty"`
	jwt.RegisteredClaims
}
