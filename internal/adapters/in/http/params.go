package http

import (
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/pagination"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// int64Param binds a required simple-style path parameter.
func int64Param(c echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, badRequest(name, name+" must be an integer")
	}
	return id, nil
}

func uuidParam(c echo.Context, name string) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, badRequest(name, name+" is required")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, badRequest(name, name+" must be a UUID")
	}
	return id, nil
}

// pageParams reads the required page and limit query parameters. Missing values
// bind as zero and are reported by pagination.NewRequest.
func pageParams(c echo.Context) (pagination.Request, error) {
	var page, limit int

	if err := runtime.BindQueryParameter("form", true, false, "page", c.QueryParams(), &page); err != nil {
		return pagination.Request{}, badRequest("page", "page must be an integer")
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		return pagination.Request{}, badRequest("limit", "limit must be an integer")
	}

	return pagination.NewRequest(page, limit)
}
