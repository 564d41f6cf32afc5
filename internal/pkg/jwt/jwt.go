package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func New(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
	}
}

// Enabled is false when no secret is configured; bearer tokens are then rejected.
func (v *Verifier) Enabled() bool {
	return len(v.secret) > 0
}

func (v *Verifier) Sign(userID string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}

	return tokenString, nil
}

// Subject validates the token and returns its subject, the caller's user id.
func (v *Verifier) Subject(tokenString string) (string, error) {
	if !v.Enabled() {
		return "", fmt.Errorf("jwt verification is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse JWT token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid JWT token")
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("JWT token has no subject")
	}

	return claims.Subject, nil
}
