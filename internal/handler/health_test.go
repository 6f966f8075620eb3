package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"testing/fstest"

	qt "github.com/frankban/quicktest"

	"github.com/deppfellow/catalog-api/internal/config"
)

func TestHealthcheck(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)
	e.GET("/api/healthcheck", NewHealthHandler(NewHandler(s)).Healthcheck)

	rec := serve(e, http.MethodGet, "/api/healthcheck", "")

	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(decodeBody(c, rec), qt.DeepEquals, map[string]any{
		"status":  "ok",
		"message": config.ServiceName,
	})
}

func TestCheckStatus(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		checks map[string]pingFunc
		status int
		state  string
	}{
		{name: "no dependencies", checks: map[string]pingFunc{}, status: http.StatusOK, state: "healthy"},
		{name: "all healthy", checks: map[string]pingFunc{"database": ok, "redis": ok}, status: http.StatusOK, state: "healthy"},
		{name: "database down", checks: map[string]pingFunc{"database": down, "redis": ok}, status: http.StatusServiceUnavailable, state: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			s := newTestServer()
			e := newTestEcho(s)
			h := &HealthHandler{Handler: NewHandler(s), checks: tt.checks}
			e.GET("/status", h.CheckStatus)

			rec := serve(e, http.MethodGet, "/status", "")

			c.Assert(rec.Code, qt.Equals, tt.status)
			body := decodeBody(c, rec)
			c.Assert(body["status"], qt.Equals, tt.state)
			c.Assert(body["environment"], qt.Equals, "local")
			c.Assert(body["checks"], qt.HasLen, len(tt.checks))
		})
	}
}

func TestCheckStatus_ReportsError(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)
	h := &HealthHandler{Handler: NewHandler(s), checks: map[string]pingFunc{
		"redis": func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			if !hasDeadline {
				return errors.New("missing deadline")
			}
			return errors.New("i/o timeout")
		},
	}}
	e.GET("/status", h.CheckStatus)

	rec := serve(e, http.MethodGet, "/status", "")

	c.Assert(rec.Code, qt.Equals, http.StatusServiceUnavailable)
	checks := decodeBody(c, rec)["checks"].(map[string]any)
	redis := checks["redis"].(map[string]any)
	c.Assert(redis["status"], qt.Equals, "unhealthy")
	c.Assert(redis["error"], qt.Equals, "i/o timeout")
}

func TestNewHealthHandler_SkipsMissingDependencies(t *testing.T) {
	c := qt.New(t)

	h := NewHealthHandler(NewHandler(newTestServer()))
	c.Assert(h.checks, qt.HasLen, 0)
}

func TestServeOpenAPIUI(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)
	h := &OpenAPIHandler{Handler: NewHandler(s), files: fstest.MapFS{
		"openapi.html": &fstest.MapFile{Data: []byte("<html>docs</html>")},
	}}
	e.GET("/docs", h.ServeOpenAPIUI)

	rec := serve(e, http.MethodGet, "/docs", "")

	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Header().Get("Cache-Control"), qt.Equals, "no-cache")
	c.Assert(rec.Body.String(), qt.Equals, "<html>docs</html>")
}

func TestServeOpenAPIUI_Missing(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)
	h := &OpenAPIHandler{Handler: NewHandler(s), files: fstest.MapFS{}}
	e.GET("/docs", h.ServeOpenAPIUI)

	rec := serve(e, http.MethodGet, "/docs", "")

	c.Assert(rec.Code, qt.Equals, http.StatusInternalServerError)
}
