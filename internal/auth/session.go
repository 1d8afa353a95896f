package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName carries the signed admin session token.
	CookieName = "admin-auth"

	// SessionTTL bounds how long an issued session stays valid.
	SessionTTL = 24 * time.Hour

	adminSubject = "admin"
)

// NewSessionToken mints a signed session token for the single admin operator.
func NewSessionToken(secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": adminSubject,
		"iat": now.Unix(),
		"exp": now.Add(SessionTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// VerifySessionToken checks the signature, expiry, and subject of a session
// token. A nil return means the bearer is the authenticated admin.
func VerifySessionToken(secret, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		if secret == "" {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return err
	}
	if sub != adminSubject {
		return jwt.ErrTokenInvalidSubject
	}
	return nil
}
