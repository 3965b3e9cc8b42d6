package http

import (
	_ "embed"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/v1/"

//go:embed openapi.yaml
var openapiDocument []byte

// OpenAPIDocument returns the raw document served at /openapi.yaml.
func OpenAPIDocument() []byte {
	return openapiDocument
}

// LoadSwagger parses and validates the embedded document.
func LoadSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// RequestValidator rejects API requests whose parameters or JSON bodies do
// not match doc. Multipart uploads are left to the handlers.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, apiPrefix) || isMultipart(req) {
				return next(c)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				// Unknown routes fall through to echo's 404/405.
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}
			return next(c)
		}
	}, nil
}

func isMultipart(req *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	return err == nil && strings.HasPrefix(mediaType, "multipart/")
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return fmt.Sprintf("parameter %q is invalid", requestErr.Parameter.Name)
		}
		if requestErr.RequestBody != nil {
			if detail := schemaReason(requestErr.Err); detail != "" {
				return "request body is invalid: " + detail
			}
			return "request body is invalid"
		}
	}
	return err.Error()
}

func schemaReason(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		field := strings.Join(schemaErr.JSONPointer(), ".")
		if field == "" {
			return schemaErr.Reason
		}
		return field + ": " + schemaErr.Reason
	}
	return ""
}
