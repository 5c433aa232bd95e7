// Package auth signs and verifies the value stored in the session cookie.
//
// The cookie carries an HS256 JWT whose ID claim is the server-side session
// token. The signature makes tampering evident before any store lookup; the
// session store stays authoritative for revocation.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "notekeeper"

// GenerateToken signs sessionID with secretKey; the token expires at expiresAt.
func GenerateToken(sessionID string, secretKey []byte, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        sessionID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	return token.SignedString(secretKey)
}

// GetSessionIDFromToken verifies tokenString and returns the session id it
// carries. Expired tokens yield common.ErrTokenExpired, anything else that
// fails verification yields common.ErrInvalidToken.
func GetSessionIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.ID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.ID, nil
}
