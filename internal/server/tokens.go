package server

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "credema-console"
	tokenAudience = "credema-api"

	defaultSessionTTL = 24 * time.Hour
	tokenLeeway       = 30 * time.Second
)

// tokens issues and validates HS256 bearer tokens for the console API.
type tokens struct {
	secret []byte
	ttl    time.Duration
}

func newTokens(secret string, ttl time.Duration) *tokens {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &tokens{secret: []byte(secret), ttl: ttl}
}

// issue creates a signed token carrying the account id as subject.
func (t *tokens) issue(accountID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		Issuer:    tokenIssuer,
		Audience:  jwt.ClaimStrings{tokenAudience},
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// subject validates a token and returns the account id it carries.
func (t *tokens) subject(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithLeeway(tokenLeeway),
		jwt.WithIssuedAt(),
	)
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return "", err
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("token subject missing")
	}
	return claims.Subject, nil
}
