// Package http exposes the use cases over a JSON REST API built on echo.
package http

import (
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	Login queries.LoginQueryHandler

	CreateUser commands.CreateUserCommandHandler
	UpdateUser commands.UpdateUserCommandHandler
	UpdateMe   commands.UpdateMeCommandHandler
	DeleteUser commands.DeleteUserCommandHandler
	Users      queries.UserQueryHandler

	Departments       commands.DepartmentCommandHandler
	DepartmentQueries queries.DepartmentQueryHandler

	Categories      commands.CategoryCommandHandler
	CategoryQueries queries.CategoryQueryHandler

	Statuses queries.ListStatusesQueryHandler

	CreatePackage  commands.CreatePackageCommandHandler
	UpdatePackage  commands.UpdatePackageCommandHandler
	ArchivePackage commands.ArchivePackageCommandHandler
	Packages       queries.PackageQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	policy services.AccessPolicy
	tokens ports.TokenValidator
}

func NewServer(h Handlers, policy services.AccessPolicy, tokens ports.TokenValidator) *Server {
	return &Server{h: h, policy: policy, tokens: tokens}
}

// Register mounts every route on e. Protected routes authenticate first and then
// pass the route-level permission gate, so 401 always wins over 403 and 400.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.POST("/users/login/email", s.LoginByEmail)
	e.POST("/users/login/phone", s.LoginByPhone)

	api := &protected{e: e, auth: Authenticate(s.tokens), policy: s.policy}

	api.handle(http.MethodGet, "/users/me", s.GetMe, services.OpUserMe)
	api.handle(http.MethodPut, "/users/me", s.UpdateMe, services.OpUserMe)
	api.handle(http.MethodPost, "/users", s.CreateUser, services.OpUserCreateClient)
	api.handle(http.MethodGet, "/users", s.ListUsers, services.OpUserRead)
	api.handle(http.MethodGet, "/users/:id", s.GetUser, services.OpUserRead)
	api.handle(http.MethodPut, "/users/:id", s.UpdateUser, services.OpUserUpdateClient)
	api.handle(http.MethodDelete, "/users/:id", s.DeleteUser, services.OpUserDeleteClient)

	api.handle(http.MethodPost, "/departments", s.CreateDepartment, services.OpDepartmentCreate)
	api.handle(http.MethodGet, "/departments", s.ListDepartments, services.OpDepartmentRead)
	api.handle(http.MethodGet, "/departments/:id", s.GetDepartment, services.OpDepartmentRead)
	api.handle(http.MethodPut, "/departments/:id", s.UpdateDepartment, services.OpDepartmentUpdate)
	api.handle(http.MethodDelete, "/departments/:id", s.DeleteDepartment, services.OpDepartmentDelete)

	api.handle(http.MethodPost, "/package/categories", s.CreateCategory, services.OpCategoryCreate)
	api.handle(http.MethodGet, "/package/categories", s.ListCategories, services.OpCategoryRead)
	api.handle(http.MethodGet, "/package/categories/:id", s.GetCategory, services.OpCategoryRead)
	api.handle(http.MethodPut, "/package/categories/:id", s.UpdateCategory, services.OpCategoryUpdate)
	api.handle(http.MethodDelete, "/package/categories/:id", s.DeleteCategory, services.OpCategoryDelete)

	api.handle(http.MethodGet, "/packages/statuses", s.ListStatuses, services.OpStatusList)
	api.handle(http.MethodPost, "/packages", s.CreatePackage, services.OpPackageCreate)
	api.handle(http.MethodGet, "/packages", s.ListPackages, services.OpPackageRead)
	api.handle(http.MethodGet, "/packages/:id", s.GetPackage, services.OpPackageRead)
	api.handle(http.MethodPut, "/packages/:id", s.UpdatePackage, services.OpPackageUpdate)
	api.handle(http.MethodPatch, "/packages/:id/archive", s.ArchivePackage, services.OpPackageArchive)
}

// protected registers routes behind authentication and a permission gate. Routes
// are added one by one instead of through an echo group so unknown paths still 404.
type protected struct {
	e      *echo.Echo
	auth   echo.MiddlewareFunc
	policy services.AccessPolicy
}

func (p *protected) handle(method, path string, h echo.HandlerFunc, op services.Operation) {
	p.e.Add(method, path, h, p.auth, Permit(p.policy, op))
}

// bind decodes the JSON body. Malformed JSON is a 400 naming the body.
func bind(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return badRequest("body", "request body is not valid JSON for this endpoint")
	}
	return nil
}
