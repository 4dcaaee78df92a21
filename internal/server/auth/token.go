// Package auth implements the stateless session core: issuing and decoding
// signed session tokens, and the per-request gate that turns the session
// cookie into an authenticated identity.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oleksir/inkpad/internal/common"
)

// skyColor is a fixed marker carried in every token for compatibility with
// sessions issued by the original application. Not security-relevant.
const skyColor = "blue"

// Claims is the payload embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userid"`
	Username string `json:"username"`
	SkyColor string `json:"skyColor"`
}

// TokenCodec signs and verifies session tokens with a process-wide HS256
// secret. Tokens are self-contained; no server-side session state exists.
type TokenCodec struct {
	secret   []byte
	validity time.Duration
}

func NewTokenCodec(secret []byte, validity time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, validity: validity}
}

// Issue creates a signed token for the given user, valid from now for the
// configured duration.
func (c *TokenCodec) Issue(userID, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
		UserID:   userID,
		Username: username,
		SkyColor: skyColor,
	})

	return token.SignedString(c.secret)
}

// Decode verifies a token and returns its claims. Every failure mode
// (bad signature, malformed token, missing identity, expired) collapses
// to common.ErrInvalidToken; callers cannot distinguish them.
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
