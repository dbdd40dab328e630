package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Olelouer/backend-chatop/internal/auth/service TokenGenerator

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/Olelouer/backend-chatop/internal/errors"
)

type TokenGenerator interface {
	Issue(subject string, extraClaims map[string]any, ttl time.Duration) (string, error)
	Verify(tokenString string) (jwt.MapClaims, error)
	ExtractSubject(tokenString string) (string, error)
	Expiry() time.Duration
}

// TokenService issues and verifies HS256-signed, self-contained tokens.
// Validity is purely a function of signature and expiry: nothing is stored
// server-side and nothing can be revoked before it expires.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService decodes the base64-encoded signing secret once at
// construction. The decoded secret never leaves this struct.
func NewTokenService(base64Secret string, expiryMinutes int) (*TokenService, error) {
	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("token secret is not valid base64: %w", err)
	}

	return &TokenService{
		secret: secret,
		expiry: time.Duration(expiryMinutes) * time.Minute,
	}, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.expiry
}

// Issue signs a token carrying the subject, issued-at = now,
// expiry = now + ttl, and any extra claims.
func (ts *TokenService) Issue(subject string, extraClaims map[string]any, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{}
	for k, v := range extraClaims {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(ttl))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Verify parses and validates the given token string. An expired but
// well-signed token fails with ErrTokenExpired; anything structurally
// malformed or carrying a bad signature fails with ErrTokenInvalid.
func (ts *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}
		return nil, autherror.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}

// ExtractSubject verifies the token and returns its subject claim.
func (ts *TokenService) ExtractSubject(tokenString string) (string, error) {
	claims, err := ts.Verify(tokenString)
	if err != nil {
		return "", err
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", autherror.ErrTokenInvalid
	}

	return subject, nil
}
