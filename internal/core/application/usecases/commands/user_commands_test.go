package commands_test

import (
	"strings"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func storedUser(t *testing.T, id int64, role kernel.Role) *user.User {
	t.Helper()
	u, err := user.RestoreUser(id, role, "Ada", "Lovelace", nil, "+380501112233", ptr("$2a$hash"))
	require.NoError(t, err)
	return u
}

func TestNewCreateUserCommand_Validation(t *testing.T) {
	t.Run("collects every field", func(t *testing.T) {
		_, err := commands.NewCreateUserCommand(admin, commands.UserInput{
			Role:      kernel.RoleManager,
			FirstName: "",
			LastName:  "a-very-long-last-name-exceeding-thirty",
			Email:     ptr("not-an-email"),
		})

		fields := fieldsOf(t, err)
		for _, f := range []string{"firstName", "lastName", "email", "phoneNumber", "password"} {
			assert.Contains(t, fields, f)
		}
		assert.NotContains(t, fields, "role")
	})

	t.Run("client needs no password", func(t *testing.T) {
		_, err := commands.NewCreateUserCommand(manager, commands.UserInput{
			Role:        kernel.RoleClient,
			FirstName:   "Grace",
			LastName:    "Hopper",
			PhoneNumber: "+380501112233",
		})

		require.NoError(t, err)
	})

	t.Run("email with display name is rejected", func(t *testing.T) {
		_, err := commands.NewCreateUserCommand(manager, commands.UserInput{
			Role:        kernel.RoleClient,
			FirstName:   "Grace",
			LastName:    "Hopper",
			PhoneNumber: "+380501112233",
			Email:       ptr("Grace <grace@example.com>"),
		})

		assert.Contains(t, fieldsOf(t, err), "email")
	})

	t.Run("multi-byte password within 30 characters but over 72 bytes", func(t *testing.T) {
		_, err := commands.NewCreateUserCommand(admin, commands.UserInput{
			Role:        kernel.RoleManager,
			FirstName:   "Grace",
			LastName:    "Hopper",
			PhoneNumber: "+380501112233",
			Password:    ptr(strings.Repeat("密", 30)),
		})

		assert.Equal(t, []string{"password must be at most 72 bytes long"}, fieldsOf(t, err)["password"])
	})

	t.Run("multi-byte password within 72 bytes", func(t *testing.T) {
		_, err := commands.NewCreateUserCommand(admin, commands.UserInput{
			Role:        kernel.RoleManager,
			FirstName:   "Grace",
			LastName:    "Hopper",
			PhoneNumber: "+380501112233",
			Password:    ptr(strings.Repeat("密", 24)),
		})

		require.NoError(t, err)
	})

	t.Run("missing role", func(t *testing.T) {
		_, err := commands.NewCreateUserCommand(admin, commands.UserInput{FirstName: "a", LastName: "b", PhoneNumber: "1"})

		assert.Equal(t, []string{"role is required"}, fieldsOf(t, err)["role"])
	})
}

func TestCreateUserCommandHandler_Handle(t *testing.T) {
	newCmd := func(caller kernel.Caller, role kernel.Role) commands.CreateUserCommand {
		cmd, err := commands.NewCreateUserCommand(caller, commands.UserInput{
			Role:        role,
			FirstName:   "Grace",
			LastName:    "Hopper",
			Email:       ptr("grace@example.com"),
			PhoneNumber: "+380501112233",
			Password:    ptr("s3cret"),
		})
		require.NoError(t, err)
		return cmd
	}

	t.Run("admin creates manager with hashed password", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		uow.expectTx(ctx, true)
		uow.users.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once()
		hasher := new(MockPasswordHasher)
		hasher.On("Hash", "s3cret").Return("hashed", nil).Once()

		h := commands.NewCreateUserCommandHandler(userUoWFactory{uow}, services.NewAccessPolicy(), hasher)
		created, err := h.Handle(ctx, newCmd(admin, kernel.RoleManager))

		require.NoError(t, err)
		assert.Equal(t, kernel.RoleManager, created.Role())
		assert.Equal(t, "hashed", *created.PasswordHash())
		uow.assertAll(t)
		hasher.AssertExpectations(t)
	})

	t.Run("manager cannot create privileged users", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleAdmin, kernel.RoleManager} {
			uow := newMockUoW()
			h := commands.NewCreateUserCommandHandler(userUoWFactory{uow}, services.NewAccessPolicy(), new(MockPasswordHasher))

			_, err := h.Handle(t.Context(), newCmd(manager, role))

			require.ErrorIs(t, err, errs.ErrForbidden, role.String())
			uow.AssertNotCalled(t, "Begin", mock.Anything)
		}
	})

	t.Run("duplicate phone surfaces the constraint error", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		uow.expectTx(ctx, false)
		dup := errs.NewUniqueConstraintViolationError("users_phone_number_key", "phoneNumber", nil)
		uow.users.On("Add", ctx, mock.Anything).Return(dup).Once()
		hasher := new(MockPasswordHasher)
		hasher.On("Hash", mock.Anything).Return("hashed", nil)

		h := commands.NewCreateUserCommandHandler(userUoWFactory{uow}, services.NewAccessPolicy(), hasher)
		_, err := h.Handle(ctx, newCmd(manager, kernel.RoleClient))

		require.ErrorIs(t, err, errs.ErrUniqueConstraintViolation)
	})
}

func TestUpdateUserCommandHandler_Handle(t *testing.T) {
	input := func(role kernel.Role) commands.UserInput {
		return commands.UserInput{
			Role:        role,
			FirstName:   "Alan",
			LastName:    "Turing",
			PhoneNumber: "+380509998877",
		}
	}

	tests := []struct {
		name       string
		caller     kernel.Caller
		targetRole kernel.Role
		newRole    kernel.Role
		wantErr    error
	}{
		{"admin target is untouchable for admin", admin, kernel.RoleAdmin, kernel.RoleAdmin, errs.ErrForbidden},
		{"admin target is untouchable for manager", manager, kernel.RoleAdmin, kernel.RoleAdmin, errs.ErrForbidden},
		{"manager cannot edit manager", manager, kernel.RoleManager, kernel.RoleManager, errs.ErrForbidden},
		{"manager cannot promote client", manager, kernel.RoleClient, kernel.RoleManager, errs.ErrForbidden},
		{"manager edits client", manager, kernel.RoleClient, kernel.RoleClient, nil},
		{"admin edits manager", admin, kernel.RoleManager, kernel.RoleManager, nil},
		{"admin promotes client with password", admin, kernel.RoleClient, kernel.RoleManager, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			target := storedUser(t, 42, tt.targetRole)
			cmd, err := commands.NewUpdateUserCommand(tt.caller, 42, input(tt.newRole))
			require.NoError(t, err)

			uow := newMockUoW()
			uow.expectTx(ctx, tt.wantErr == nil)
			uow.users.On("Get", ctx, int64(42)).Return(target, nil).Once()
			if tt.wantErr == nil {
				uow.users.On("Update", ctx, target).Return(nil).Once()
			}

			h := commands.NewUpdateUserCommandHandler(userUoWFactory{uow}, services.NewAccessPolicy(), new(MockPasswordHasher))
			updated, err := h.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Alan", updated.FirstName())
			assert.Equal(t, tt.newRole, updated.Role())
			assert.Equal(t, "$2a$hash", *updated.PasswordHash(), "nil password keeps the hash")
			uow.assertAll(t)
		})
	}
}

func TestUpdateUserCommandHandler_Handle_PromotionNeedsPassword(t *testing.T) {
	ctx := t.Context()
	target, err := user.RestoreUser(42, kernel.RoleClient, "Ada", "Lovelace", nil, "+380501112233", nil)
	require.NoError(t, err)
	cmd, _ := commands.NewUpdateUserCommand(admin, 42, commands.UserInput{
		Role: kernel.RoleManager, FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "+380501112233",
	})

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.users.On("Get", ctx, int64(42)).Return(target, nil).Once()

	h := commands.NewUpdateUserCommandHandler(userUoWFactory{uow}, services.NewAccessPolicy(), new(MockPasswordHasher))
	_, err = h.Handle(ctx, cmd)

	assert.Contains(t, fieldsOf(t, err), "password")
	assert.Equal(t, kernel.RoleClient, target.Role())
}

func TestUpdateMeCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	me := storedUser(t, client.ID, kernel.RoleClient)
	cmd, err := commands.NewUpdateMeCommand(client, commands.ProfileInput{
		FirstName:   "Ada",
		LastName:    "King",
		Email:       ptr("ada@example.com"),
		PhoneNumber: "+380501112233",
		Password:    ptr("new-pass"),
	})
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.users.On("Get", ctx, client.ID).Return(me, nil).Once()
	uow.users.On("Update", ctx, me).Return(nil).Once()
	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "new-pass").Return("rehashed", nil).Once()

	h := commands.NewUpdateMeCommandHandler(userUoWFactory{uow}, services.NewAccessPolicy(), hasher)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "King", updated.LastName())
	assert.Equal(t, "ada@example.com", *updated.Email())
	assert.Equal(t, "rehashed", *updated.PasswordHash())
	assert.Equal(t, kernel.RoleClient, updated.Role())
	uow.assertAll(t)
}

func TestDeleteUserCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		caller     kernel.Caller
		targetRole kernel.Role
		wantErr    error
	}{
		{"manager deletes client", manager, kernel.RoleClient, nil},
		{"manager cannot delete manager", manager, kernel.RoleManager, errs.ErrForbidden},
		{"manager cannot delete admin", manager, kernel.RoleAdmin, errs.ErrForbidden},
		{"admin deletes manager", admin, kernel.RoleManager, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewDeleteUserCommand(tt.caller, 42)
			require.NoError(t, err)

			uow := newMockUoW()
			uow.expectTx(ctx, tt.wantErr == nil)
			uow.users.On("Get", ctx, int64(42)).Return(storedUser(t, 42, tt.targetRole), nil).Once()
			if tt.wantErr == nil {
				uow.users.On("Delete", ctx, int64(42)).Return(nil).Once()
			}

			h := commands.NewDeleteUserCommandHandler(userUoWFactory{uow}, services.NewAccessPolicy())
			err = h.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				uow.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			uow.assertAll(t)
		})
	}
}

func TestDeleteUserCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteUserCommand(admin, 404)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.users.On("Get", ctx, int64(404)).Return(nil, errs.NewObjectNotFoundError("user", 404)).Once()

	h := commands.NewDeleteUserCommandHandler(userUoWFactory{uow}, services.NewAccessPolicy())

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestNewUpdateMeCommand_PasswordOverBcryptLimit(t *testing.T) {
	_, err := commands.NewUpdateMeCommand(client, commands.ProfileInput{
		FirstName:   "Ada",
		LastName:    "King",
		PhoneNumber: "+380501112233",
		Password:    ptr(strings.Repeat("é", 37)),
	})

	assert.Contains(t, fieldsOf(t, err), "password")
}
