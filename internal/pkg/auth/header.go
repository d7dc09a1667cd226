package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrMissingAuthHeader = errors.New("Missing Authorization header")
	ErrInvalidAuthFormat = errors.New("Invalid Authorization header format")
	ErrMissingToken      = errors.New("Missing token")
)

// GetBearerToken extracts the token from "Authorization: Bearer <token>".
func GetBearerToken(headers http.Header) (string, error) {
	return schemeValue(headers, "Bearer")
}

// GetAPIKey extracts the key from "Authorization: ApiKey <key>".
func GetAPIKey(headers http.Header) (string, error) {
	return schemeValue(headers, "ApiKey")
}

func schemeValue(headers http.Header, scheme string) (string, error) {
	header := headers.Get("Authorization")
	if header == "" {
		return "", ErrMissingAuthHeader
	}
	if !strings.HasPrefix(header, scheme) {
		return "", ErrInvalidAuthFormat
	}

	rest := header[len(scheme):]
	if rest != "" && rest[0] != ' ' {
		return "", ErrInvalidAuthFormat
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// MakeRefreshToken returns 32 random bytes, hex encoded.
func MakeRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
