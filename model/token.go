// model/token.go
package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type AccessClaims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AccessRefresh struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// TokenResponse is the refresh token record kept in the "refreshTokens"
// Firestore collection, keyed by user id.
type TokenResponse struct {
	UserID       int    `firestore:"UserID"`
	RefreshToken string `firestore:"RefreshToken"`
	CreatedAt    int64  `firestore:"CreatedAt"`
	ExpiresIn    int64  `firestore:"ExpiresIn"`
	Revoked      bool   `firestore:"Revoked"`
}
