// Package auth issues and checks the bearer tokens handed out by the gateway.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/bloghub/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims. Subject holds the account
// nickname.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for nickname valid for validityDuration.
func GenerateToken(nickname string, secretKey []byte, validityDuration time.Duration) (string, error) {
	jti, err := common.MakeRandHexString(16)
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   nickname,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	return token.SignedString(secretKey)
}

// GetNicknameFromToken validates tokenString and returns its subject.
func GetNicknameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
