package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/logger"
	"parcels/internal/pkg/pagination"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminToken   = "admin-token"
	managerToken = "manager-token"
	clientToken  = "client-token"
)

type fakeTokens map[string]ports.Claims

func (f fakeTokens) Validate(token string) (ports.Claims, error) {
	claims, ok := f[token]
	if !ok {
		return ports.Claims{}, errs.ErrUnauthorized
	}
	return claims, nil
}

type mockUserRepository struct {
	mock.Mock
	ports.UserRepository
}

func (m *mockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, p pagination.Request) (pagination.Page[*user.User], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(pagination.Page[*user.User]), args.Error(1)
}

func newTestEcho(t *testing.T, users ports.UserRepository) *echo.Echo {
	t.Helper()

	policy := services.NewAccessPolicy()
	tokens := fakeTokens{
		adminToken:   {ID: 1, Role: kernel.RoleAdmin, FirstName: "Ada", LastName: "Admin", PhoneNumber: "+380500000001"},
		managerToken: {ID: 2, Role: kernel.RoleManager, FirstName: "Max", LastName: "Manager", PhoneNumber: "+380500000002"},
		clientToken:  {ID: 3, Role: kernel.RoleClient, FirstName: "Cleo", LastName: "Client", PhoneNumber: "+380500000003"},
	}

	server := NewServer(Handlers{
		Users: queries.NewUserQueryHandler(users, policy),
	}, policy, tokens)

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.Use(RequestContext(logger.NewNop()))
	server.Register(e)

	return e
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func restoreUser(t *testing.T, id int64, role kernel.Role) *user.User {
	t.Helper()

	hash := "$2a$10$hash"
	u, err := user.RestoreUser(id, role, "Cleo", "Client", nil, "+380500000003", &hash)
	require.NoError(t, err)
	return u
}

func TestHealthIsPublic(t *testing.T) {
	e := newTestEcho(t, &mockUserRepository{})

	rec := do(e, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestIDIsEchoed(t *testing.T) {
	e := newTestEcho(t, &mockUserRepository{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
}

func TestAuthentication(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		header string
		body   string
	}{
		{name: "no header", method: http.MethodGet, target: "/users?page=1&limit=10"},
		{name: "wrong scheme", method: http.MethodGet, target: "/users?page=1&limit=10", header: "Basic " + managerToken},
		{name: "empty bearer", method: http.MethodGet, target: "/users/me", header: "Bearer "},
		{name: "unknown token", method: http.MethodGet, target: "/users/me", header: "Bearer nope"},
		{name: "before forbidden", method: http.MethodPost, target: "/package/categories", body: `{"name":"x"}`},
		{name: "before validation", method: http.MethodPost, target: "/packages", body: `{not json`},
		{name: "before bad paging", method: http.MethodGet, target: "/packages?page=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t, &mockUserRepository{})

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, TypeUnauthorized, decodeError(t, rec).Type)
		})
	}
}

func TestForbiddenBeforeValidation(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		token  string
		body   string
	}{
		{name: "client creates package", method: http.MethodPost, target: "/packages", token: clientToken, body: `{not json`},
		{name: "client lists statuses", method: http.MethodGet, target: "/packages/statuses", token: clientToken},
		{name: "manager creates category", method: http.MethodPost, target: "/package/categories", token: managerToken, body: `{}`},
		{name: "client lists users", method: http.MethodGet, target: "/users?page=0", token: clientToken},
		{name: "client archives package", method: http.MethodPatch, target: "/packages/not-a-uuid/archive", token: clientToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t, &mockUserRepository{})

			rec := do(e, tt.method, tt.target, tt.token, tt.body)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, TypeForbidden, decodeError(t, rec).Type)
		})
	}
}

func TestListUsers(t *testing.T) {
	t.Run("returns a page", func(t *testing.T) {
		users := &mockUserRepository{}
		u := restoreUser(t, 3, kernel.RoleClient)
		users.On("List", mock.Anything, mock.MatchedBy(func(p pagination.Request) bool {
			return p.Page() == 2 && p.Limit() == 1
		})).Return(pagination.Page[*user.User]{TotalCount: 3, TotalPages: 3, Items: []*user.User{u}}, nil)
		e := newTestEcho(t, users)

		rec := do(e, http.MethodGet, "/users?page=2&limit=1", managerToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body PageResponse[UserResponse]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(3), body.TotalCount)
		assert.Equal(t, int64(3), body.TotalPages)
		require.Len(t, body.Items, 1)
		assert.Equal(t, "Client", body.Items[0].Role)
		assert.Equal(t, 3, body.Items[0].RoleID)
		users.AssertExpectations(t)
	})

	t.Run("missing and invalid paging", func(t *testing.T) {
		e := newTestEcho(t, &mockUserRepository{})

		rec := do(e, http.MethodGet, "/users?page=0", managerToken, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, TypeValidation, body.Type)
		assert.Contains(t, body.Errors, "page")
		assert.Contains(t, body.Errors, "limit")
	})

	t.Run("non numeric paging", func(t *testing.T) {
		e := newTestEcho(t, &mockUserRepository{})

		rec := do(e, http.MethodGet, "/users?page=abc&limit=10", adminToken, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Errors, "page")
	})
}

func TestGetUser(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		users := &mockUserRepository{}
		users.On("Get", mock.Anything, int64(7)).Return(nil, errs.NewObjectNotFoundError("user", int64(7)))
		e := newTestEcho(t, users)

		rec := do(e, http.MethodGet, "/users/7", adminToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, TypeNotFound, decodeError(t, rec).Type)
	})

	t.Run("malformed id", func(t *testing.T) {
		e := newTestEcho(t, &mockUserRepository{})

		rec := do(e, http.MethodGet, "/users/seven", adminToken, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Errors, "id")
	})

	t.Run("me resolves the caller", func(t *testing.T) {
		users := &mockUserRepository{}
		users.On("Get", mock.Anything, int64(3)).Return(restoreUser(t, 3, kernel.RoleClient), nil)
		e := newTestEcho(t, users)

		rec := do(e, http.MethodGet, "/users/me", clientToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(3), body.ID)
		assert.Nil(t, body.Email)
	})

	t.Run("store failure is a bare 500", func(t *testing.T) {
		users := &mockUserRepository{}
		users.On("Get", mock.Anything, int64(3)).Return(nil, assert.AnError)
		e := newTestEcho(t, users)

		rec := do(e, http.MethodGet, "/users/3", managerToken, "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, TypeInternal, body.Type)
		assert.Empty(t, body.Message)
	})
}

func TestUnknownRoute(t *testing.T) {
	e := newTestEcho(t, &mockUserRepository{})

	rec := do(e, http.MethodGet, "/nowhere", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, TypeNotFound, decodeError(t, rec).Type)
}

func TestUpdateMe_PasswordOverBcryptLimit(t *testing.T) {
	e := newTestEcho(t, &mockUserRepository{})
	body := `{"firstName":"Cleo","lastName":"Client","phoneNumber":"+380500000003","password":"` +
		strings.Repeat("密", 30) + `"}`

	rec := do(e, http.MethodPut, "/users/me", clientToken, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, []string{"password must be at most 72 bytes long"}, resp.Errors["password"])
}
