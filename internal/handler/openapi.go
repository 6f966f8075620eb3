package handler

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

// StaticDir holds the API docs page and the OpenAPI document it loads.
const StaticDir = "static"

// OpenAPIHandler serves the interactive API docs.
type OpenAPIHandler struct {
	Handler
	files fs.FS
}

func NewOpenAPIHandler(h Handler) *OpenAPIHandler {
	return &OpenAPIHandler{Handler: h, files: os.DirFS(StaticDir)}
}

// ServeOpenAPIUI serves openapi.html. Caching is disabled so doc changes show
// up without a hard reload.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := fs.ReadFile(h.files, "openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
