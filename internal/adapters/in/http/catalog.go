package http

import (
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateDepartment handles POST /departments.
func (s *Server) CreateDepartment(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req DepartmentRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDepartmentCommand(caller, req.Number, req.FullAddress)
	if err != nil {
		return err
	}

	created, err := s.h.Departments.Create(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toDepartmentResponse(created))
}

// ListDepartments handles GET /departments?page=&limit=.
func (s *Server) ListDepartments(c echo.Context) error {
	query, err := s.catalogListQuery(c)
	if err != nil {
		return err
	}

	departments, err := s.h.DepartmentQueries.List(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(departments, toDepartmentResponse))
}

// GetDepartment handles GET /departments/{id}.
func (s *Server) GetDepartment(c echo.Context) error {
	query, err := s.catalogGetQuery(c)
	if err != nil {
		return err
	}

	found, err := s.h.DepartmentQueries.Get(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDepartmentResponse(found))
}

// UpdateDepartment handles PUT /departments/{id}.
func (s *Server) UpdateDepartment(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var req DepartmentRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDepartmentCommand(caller, id, req.Number, req.FullAddress)
	if err != nil {
		return err
	}

	updated, err := s.h.Departments.Update(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDepartmentResponse(updated))
}

// DeleteDepartment handles DELETE /departments/{id}.
func (s *Server) DeleteDepartment(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteDepartmentCommand(caller, id)
	if err != nil {
		return err
	}

	if err = s.h.Departments.Delete(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateCategory handles POST /package/categories.
func (s *Server) CreateCategory(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCategoryCommand(caller, req.Name)
	if err != nil {
		return err
	}

	created, err := s.h.Categories.Create(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(created))
}

// ListCategories handles GET /package/categories?page=&limit=.
func (s *Server) ListCategories(c echo.Context) error {
	query, err := s.catalogListQuery(c)
	if err != nil {
		return err
	}

	categories, err := s.h.CategoryQueries.List(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(categories, toCategoryResponse))
}

// GetCategory handles GET /package/categories/{id}.
func (s *Server) GetCategory(c echo.Context) error {
	query, err := s.catalogGetQuery(c)
	if err != nil {
		return err
	}

	found, err := s.h.CategoryQueries.Get(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCategoryResponse(found))
}

// UpdateCategory handles PUT /package/categories/{id}.
func (s *Server) UpdateCategory(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCategoryCommand(caller, id, req.Name)
	if err != nil {
		return err
	}

	updated, err := s.h.Categories.Update(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCategoryResponse(updated))
}

// DeleteCategory handles DELETE /package/categories/{id}.
func (s *Server) DeleteCategory(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCategoryCommand(caller, id)
	if err != nil {
		return err
	}

	if err = s.h.Categories.Delete(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListStatuses handles GET /packages/statuses.
func (s *Server) ListStatuses(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	statuses, err := s.h.Statuses.Handle(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	response := make([]StatusResponse, 0, len(statuses))
	for _, status := range statuses {
		response = append(response, toStatusResponse(status))
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) catalogListQuery(c echo.Context) (queries.CatalogQuery, error) {
	caller, err := callerFrom(c)
	if err != nil {
		return queries.CatalogQuery{}, err
	}

	page, err := pageParams(c)
	if err != nil {
		return queries.CatalogQuery{}, err
	}

	return queries.NewListQuery(caller, page)
}

func (s *Server) catalogGetQuery(c echo.Context) (queries.CatalogQuery, error) {
	caller, err := callerFrom(c)
	if err != nil {
		return queries.CatalogQuery{}, err
	}

	id, err := int64Param(c, "id")
	if err != nil {
		return queries.CatalogQuery{}, err
	}

	return queries.NewGetByIDQuery(caller, id)
}
