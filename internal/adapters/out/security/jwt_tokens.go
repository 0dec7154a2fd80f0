package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret = errors.New("jwt secret must not be empty")
	ErrInvalidTTL  = errors.New("jwt ttl must be positive")
)

// TokenConfig configures JWTTokens.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// claims is the token payload. Role carries the name for readability, RoleID is
// what the server trusts.
type claims struct {
	ID          int64   `json:"id"`
	RoleID      int     `json:"roleId"`
	Role        string  `json:"role"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber string  `json:"phoneNumber"`
	jwt.RegisteredClaims
}

// JWTTokens issues and validates HS256 access tokens. It implements both
// ports.TokenIssuer and ports.TokenValidator.
type JWTTokens struct {
	config TokenConfig
	now    func() time.Time
}

func NewJWTTokens(config TokenConfig) (*JWTTokens, error) {
	if config.Secret == "" {
		return nil, ErrEmptySecret
	}
	if config.TTL <= 0 {
		return nil, ErrInvalidTTL
	}
	return &JWTTokens{config: config, now: time.Now}, nil
}

func (t *JWTTokens) Issue(c ports.Claims) (string, error) {
	now := t.now()

	registered := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(c.ID, 10),
		Issuer:    t.config.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.config.TTL)),
	}
	if t.config.Audience != "" {
		registered.Audience = jwt.ClaimStrings{t.config.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		ID:               c.ID,
		RoleID:           int(c.Role),
		Role:             c.Role.String(),
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		PhoneNumber:      c.PhoneNumber,
		RegisteredClaims: registered,
	})

	signed, err := token.SignedString([]byte(t.config.Secret))
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}

// Validate rejects tokens signed with any other algorithm, expired tokens, and
// tokens from a different issuer or audience.
func (t *JWTTokens) Validate(token string) (ports.Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	}
	if t.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(t.config.Issuer))
	}
	if t.config.Audience != "" {
		options = append(options, jwt.WithAudience(t.config.Audience))
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return []byte(t.config.Secret), nil
	}, options...)
	if err != nil {
		return ports.Claims{}, fmt.Errorf("%w: %w", errs.ErrUnauthorized, err)
	}

	role := kernel.Role(parsed.RoleID)
	if role.Validate() != nil || parsed.ID <= 0 {
		return ports.Claims{}, fmt.Errorf("%w: malformed subject", errs.ErrUnauthorized)
	}

	return ports.Claims{
		ID:          parsed.ID,
		Role:        role,
		FirstName:   parsed.FirstName,
		LastName:    parsed.LastName,
		Email:       parsed.Email,
		PhoneNumber: parsed.PhoneNumber,
	}, nil
}
