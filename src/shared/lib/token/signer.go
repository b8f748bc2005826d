package token

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Signer
type Signer interface {
	Sign(userID string) (string, error)
}

var _ Signer = HS256Signer{}

type HS256Signer struct {
	Secret string
	TTL    time.Duration
}

func (s HS256Signer) Sign(userID string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.Secret))
	if err != nil {
		return "", errors.Wrap(err, "Failed to sign bearer token")
	}

	return signed, nil
}
