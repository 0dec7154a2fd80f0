package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	echoSwagger "github.com/swaggo/echo-swagger"
)

//go:embed openapi.json
var openAPISpec []byte

var registerSwagger sync.Once

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return string(openAPISpec)
}

// LoadOpenAPI parses and validates the embedded OpenAPI document.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi document is invalid: %w", err)
	}
	return doc, nil
}

// RegisterDocs serves the raw document at /openapi.json and the Swagger UI at /swagger/.
func RegisterDocs(e *echo.Echo, doc *openapi3.T) {
	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
