package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/catalog-api/internal/handler"
)

// registerSystemRoutes registers the endpoints that are not part of the catalog itself.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/api/healthcheck", h.Health.Healthcheck)
	r.GET("/status", h.Health.CheckStatus)

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
