// Package token issues and verifies the signed identity tokens used by the
// authentication gate.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer   = "fixando-api"
	audience = "fixando-client"

	// TokenTTL is the fixed lifetime of an issued identity token.
	TokenTTL = time.Hour
)

// ErrInvalidToken is returned by Verify for any token that must not be
// trusted: bad signature, wrong signing method, expired, wrong issuer or
// audience, malformed claims.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the authenticated identity attributes carried by a token.
type Claims struct {
	UserID uint
	Email  string
}

// Service signs and verifies identity tokens with a process-wide HMAC secret.
type Service struct {
	secret []byte
}

// NewService creates a token service. An empty secret is refused: a missing
// signing secret is a fatal configuration error, never a silent fallback.
func NewService(secret string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	return &Service{secret: []byte(secret)}, nil
}

// Issue creates a signed token embedding the user's identity with a fixed
// one-hour expiry.
func (s *Service) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"email": email,
		"iss":   issuer,
		"aud":   audience,
		"exp":   now.Add(TokenTTL).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"jti":   generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// All failure modes collapse to ErrInvalidToken so callers cannot leak the
// distinction to clients.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if iss, issOk := mapClaims["iss"].(string); !issOk || iss != issuer {
		return nil, ErrInvalidToken
	}
	if aud, audOk := mapClaims["aud"].(string); !audOk || aud != audience {
		return nil, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)

	return &Claims{UserID: uint(userID), Email: email}, nil
}

// DecodeExpiry extracts the expiry timestamp without verifying the
// signature. It exists solely for revocation bookkeeping at logout time and
// must never feed an authorization decision.
func (s *Service) DecodeExpiry(tokenString string) (time.Time, bool) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
