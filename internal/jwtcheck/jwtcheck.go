package jwtcheck

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is set on self-test tokens.
const Issuer = "jwtkey"

const tokenTTL = time.Minute

var ErrSelfTest = errors.New("jwt self-test failed")

// SignAndVerify signs an HS256 token with the raw bytes of key and parses it
// back. Services consuming jwt.key use the encoded text itself as HMAC key.
func SignAndVerify(key string, now time.Time) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrSelfTest)
	}
	secret := []byte(key)
	id := uuid.NewString()
	claims := jwt.RegisteredClaims{
		ID:        id,
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return fmt.Errorf("%w: sign: %w", ErrSelfTest, err)
	}

	parsed := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(signed, parsed, keyFunc(secret),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return fmt.Errorf("%w: verify: %w", ErrSelfTest, err)
	}
	if parsed.ID != id {
		return fmt.Errorf("%w: token id mismatch", ErrSelfTest)
	}
	return nil
}

func keyFunc(secret []byte) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}
}
