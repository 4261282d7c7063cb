// Package token issues and verifies the signed bearer tokens that carry an
// authenticated identity between requests.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"go-cms-auth/internal/model"
)

// BearerPrefix is the scheme marker the transport layer prepends to issued
// tokens. It is a transport convention, not part of the token format.
const BearerPrefix = "Bearer "

var (
	ErrExpired          = errors.New("token is expired")
	ErrMalformed        = errors.New("token is malformed")
	ErrSignatureInvalid = errors.New("token signature is invalid")
)

// Claims is the signed identity. It carries a redacted view of the user
// record: the password hash and avatar are never embedded, since anyone
// holding the token can read its payload.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs an HS256 token for the user with the configured expiry. The
// returned string is raw; callers add BearerPrefix when handing it to a
// client.
func (i *Issuer) Issue(user model.User) (string, error) {
	now := i.now().UTC()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a raw token string. Failures are classified
// as ErrExpired, ErrSignatureInvalid or ErrMalformed; it performs no I/O.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrSignatureInvalid
	case err != nil:
		return nil, ErrMalformed
	case !parsed.Valid:
		return nil, ErrMalformed
	}

	return claims, nil
}
