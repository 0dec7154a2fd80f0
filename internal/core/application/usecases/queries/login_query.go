package queries

import (
	"context"
	"errors"
	"strings"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
	"parcels/internal/pkg/logger"

	"go.uber.org/zap"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginByEmailQuery or NewLoginByPhoneQuery constructor",
)

// LoginQuery exchanges credentials for an access token. Exactly one of email and
// phone number identifies the account.
type LoginQuery struct {
	email       string
	phoneNumber string
	password    string

	guard guard.ConstructorGuard
}

func NewLoginByEmailQuery(email, password string) (LoginQuery, error) {
	v := errs.NewValidationError()
	email = strings.TrimSpace(email)
	if email == "" {
		v.Add("email", "email is required")
	}
	if password == "" {
		v.Add("password", "password is required")
	}
	if err := v.OrNil(); err != nil {
		return LoginQuery{}, err
	}
	return LoginQuery{email: email, password: password, guard: guard.NewConstructorGuard()}, nil
}

func NewLoginByPhoneQuery(phoneNumber, password string) (LoginQuery, error) {
	v := errs.NewValidationError()
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		v.Add("phoneNumber", "phoneNumber is required")
	}
	if password == "" {
		v.Add("password", "password is required")
	}
	if err := v.OrNil(); err != nil {
		return LoginQuery{}, err
	}
	return LoginQuery{phoneNumber: phoneNumber, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

type LoginResult struct {
	UserID      int64
	AccessToken string
}

type LoginQueryHandler struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
}

func NewLoginQueryHandler(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) LoginQueryHandler {
	return LoginQueryHandler{users: users, hasher: hasher, tokens: tokens}
}

// Handle fails with errs.ErrUnauthorized for an unknown account, an account without
// a password, or a wrong password, without telling them apart.
func (h LoginQueryHandler) Handle(ctx context.Context, q LoginQuery) (LoginResult, error) {
	if err := q.Validate(); err != nil {
		return LoginResult{}, err
	}

	account, err := h.lookup(ctx, q)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, errs.ErrUnauthorized
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !account.HasPassword() {
		return LoginResult{}, errs.ErrUnauthorized
	}
	if err = h.hasher.Compare(*account.PasswordHash(), q.password); err != nil {
		logger.Log(ctx).Debug(ctx, "login rejected", zap.Int64("user_id", account.ID()))
		return LoginResult{}, errs.ErrUnauthorized
	}

	token, err := h.tokens.Issue(ports.ClaimsFromUser(account))
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{UserID: account.ID(), AccessToken: token}, nil
}

func (h LoginQueryHandler) lookup(ctx context.Context, q LoginQuery) (*user.User, error) {
	if q.email != "" {
		return h.users.GetByEmail(ctx, q.email)
	}
	return h.users.GetByPhoneNumber(ctx, q.phoneNumber)
}
