package security

import (
	"strings"
	"testing"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	t.Run("matching password", func(t *testing.T) {
		assert.NoError(t, hasher.Compare(hash, "s3cret"))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.ErrorIs(t, hasher.Compare(hash, "nope"), errs.ErrUnauthorized)
	})

	t.Run("corrupt hash", func(t *testing.T) {
		assert.ErrorIs(t, hasher.Compare("not-a-hash", "s3cret"), errs.ErrUnauthorized)
	})

	t.Run("empty password cannot be hashed", func(t *testing.T) {
		_, err := hasher.Hash("")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("password over 72 bytes is a field violation", func(t *testing.T) {
		_, err := hasher.Hash(strings.Repeat("密", 30))

		var validation *errs.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, "password")
	})

	t.Run("low cost falls back to default", func(t *testing.T) {
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	})
}

func TestNewJWTTokens_RejectsBadConfig(t *testing.T) {
	_, err := NewJWTTokens(TokenConfig{TTL: time.Hour})
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewJWTTokens(TokenConfig{Secret: "x"})
	assert.ErrorIs(t, err, ErrInvalidTTL)
}

func TestJWTTokens(t *testing.T) {
	email := "admin@example.com"
	subject := ports.Claims{
		ID:          7,
		Role:        kernel.RoleAdmin,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       &email,
		PhoneNumber: "+380501112233",
	}
	config := TokenConfig{Secret: "secret", Issuer: "parcels", Audience: "parcels-api", TTL: time.Hour}

	tokens, err := NewJWTTokens(config)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		token, err := tokens.Issue(subject)
		require.NoError(t, err)

		got, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, subject, got)
		assert.Equal(t, kernel.Caller{ID: 7, Role: kernel.RoleAdmin}, got.Caller())
	})

	t.Run("expired", func(t *testing.T) {
		token, err := tokens.Issue(subject)
		require.NoError(t, err)

		later := *tokens
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err = later.Validate(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other, err := NewJWTTokens(TokenConfig{Secret: "other", Issuer: "parcels", Audience: "parcels-api", TTL: time.Hour})
		require.NoError(t, err)
		token, err := other.Issue(subject)
		require.NoError(t, err)

		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		other, err := NewJWTTokens(TokenConfig{Secret: "secret", Issuer: "someone-else", Audience: "parcels-api", TTL: time.Hour})
		require.NoError(t, err)
		token, err := other.Issue(subject)
		require.NoError(t, err)

		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": 7, "roleId": 1}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := tokens.Issue(ports.Claims{ID: 7, Role: kernel.Role(42), FirstName: "X", PhoneNumber: "1"})
		require.NoError(t, err)

		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Validate("not.a.token")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
