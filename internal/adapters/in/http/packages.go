package http

import (
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreatePackage handles POST /packages.
func (s *Server) CreatePackage(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req CreatePackageRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePackageCommand(caller, commands.CreatePackageInput{
		CategoryID:           req.CategoryID,
		SenderUserID:         req.SenderUserID,
		ReceiverUserID:       req.ReceiverUserID,
		SenderDepartmentID:   req.SenderDepartmentID,
		ReceiverDepartmentID: req.ReceiverDepartmentID,
		PackagePrice:         req.PackagePrice,
		DeliveryPrice:        req.DeliveryPrice,
		Weight:               req.Weight,
		Description:          req.Description,
	})
	if err != nil {
		return err
	}

	created, err := s.h.CreatePackage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPackageResponse(created))
}

// UpdatePackage handles PUT /packages/{id}. Only category and description change.
func (s *Server) UpdatePackage(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdatePackageRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePackageCommand(caller, id, req.CategoryID, req.Description)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdatePackage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPackageResponse(updated))
}

// ArchivePackage handles PATCH /packages/{id}/archive.
func (s *Server) ArchivePackage(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewArchivePackageCommand(caller, id)
	if err != nil {
		return err
	}

	archived, err := s.h.ArchivePackage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPackageResponse(archived))
}

// GetPackage handles GET /packages/{id}. Clients only see packages they send or receive.
func (s *Server) GetPackage(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetPackageQuery(caller, id)
	if err != nil {
		return err
	}

	found, err := s.h.Packages.Get(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPackageResponse(found))
}

// ListPackages handles GET /packages?page=&limit=.
func (s *Server) ListPackages(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	page, err := pageParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListPackagesQuery(caller, page)
	if err != nil {
		return err
	}

	packages, err := s.h.Packages.List(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(packages, toPackageResponse))
}
