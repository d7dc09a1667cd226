package auth

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is the iss claim of every token this package signs and accepts.
const Issuer = "chirpy"

var (
	ErrInvalidToken   = errors.New("Invalid or expired token")
	ErrMissingSubject = errors.New("Token payload missing subject")
)

// MakeJWT signs an HS256 access token whose subject is userID.
func MakeJWT(userID uuid.UUID, secret string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := jwtlib.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   userID.String(),
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(expiresIn)),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateJWT checks signature, expiry and issuer and returns the subject.
func ValidateJWT(tokenStr, secret string) (uuid.UUID, error) {
	claims := &jwtlib.RegisteredClaims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, func(t *jwtlib.Token) (any, error) {
		return []byte(secret), nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(Issuer),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return uuid.Nil, ErrMissingSubject
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrMissingSubject
	}
	return id, nil
}

// Service binds a secret so callers don't pass it around.
type Service struct {
	secret string
}

// NewService returns a Service signing with secret.
func NewService(secret string) *Service {
	return &Service{secret: secret}
}

// GenerateToken is MakeJWT with the bound secret.
func (s *Service) GenerateToken(userID uuid.UUID, ttl time.Duration) (string, error) {
	return MakeJWT(userID, s.secret, ttl)
}

// ValidateToken is ValidateJWT with the bound secret.
func (s *Service) ValidateToken(tokenStr string) (uuid.UUID, error) {
	return ValidateJWT(tokenStr, s.secret)
}
