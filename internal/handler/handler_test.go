package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/catalog-api/internal/config"
	"github.com/deppfellow/catalog-api/internal/middleware"
	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/deppfellow/catalog-api/internal/validation"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	obs := config.DefaultObservabilityConfig()
	obs.Environment = "local"

	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "local"},
			Observability: obs,
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(c *qt.C, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	c.Assert(json.Unmarshal(rec.Body.Bytes(), &body), qt.IsNil, qt.Commentf("body: %s", rec.Body.String()))
	return body
}

type greetPayload struct {
	ID   string `param:"id" json:"-" validate:"required"`
	Name string `json:"name" validate:"required"`
}

func (p *greetPayload) Validate() error {
	return validation.Struct(p)
}

type greeting struct {
	Message string `json:"message"`
}

func greet(c echo.Context, p *greetPayload) (greeting, error) {
	return greeting{Message: "hello " + p.Name + " #" + p.ID}, nil
}

func TestHandle_Success(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)
	e.POST("/greet/:id", Handle(NewHandler(s), greet, http.StatusCreated))

	rec := serve(e, http.MethodPost, "/greet/7", `{"name":"ada"}`)

	c.Assert(rec.Code, qt.Equals, http.StatusCreated)
	c.Assert(decodeBody(c, rec)["message"], qt.Equals, "hello ada #7")
}

func TestHandle_FreshPayloadPerRequest(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)
	e.POST("/greet/:id", Handle(NewHandler(s), greet, http.StatusOK))

	rec := serve(e, http.MethodPost, "/greet/1", `{"name":"ada"}`)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)

	// A value bound by the previous request must not leak into this one.
	rec = serve(e, http.MethodPost, "/greet/2", `{}`)
	c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)

	body := decodeBody(c, rec)
	c.Assert(body["status"], qt.Equals, "fail")
	c.Assert(body["message"], qt.Equals, "Validation failed")
	c.Assert(body["errors"], qt.DeepEquals, []any{
		map[string]any{"field": "name", "error": "is required"},
	})
}

func TestHandle_MalformedBody(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)
	e.POST("/greet/:id", Handle(NewHandler(s), greet, http.StatusOK))

	rec := serve(e, http.MethodPost, "/greet/1", `{"name":`)

	c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(decodeBody(c, rec)["status"], qt.Equals, "fail")
}

func TestHandle_HandlerError(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)
	e.POST("/greet/:id", Handle(NewHandler(s), func(c echo.Context, p *greetPayload) (greeting, error) {
		return greeting{}, errors.New("storage is down")
	}, http.StatusOK))

	rec := serve(e, http.MethodPost, "/greet/1", `{"name":"ada"}`)

	c.Assert(rec.Code, qt.Equals, http.StatusInternalServerError)
	body := decodeBody(c, rec)
	c.Assert(body["status"], qt.Equals, "error")
	c.Assert(body["message"], qt.Equals, "storage is down")
}

func TestHandleNoContent(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)

	var deleted string
	e.DELETE("/greet/:id", HandleNoContent(NewHandler(s), func(c echo.Context, p *idPayload) error {
		deleted = p.ID
		return nil
	}, http.StatusOK))

	rec := serve(e, http.MethodDelete, "/greet/9", "")

	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Body.Len(), qt.Equals, 0)
	c.Assert(deleted, qt.Equals, "9")
}

type idPayload struct {
	ID string `param:"id" validate:"required"`
}

func (p *idPayload) Validate() error {
	return validation.Struct(p)
}

type stubRenderer struct {
	err error
}

func (r stubRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	io.WriteString(w, "<p>partial")
	if r.err != nil {
		return r.err
	}
	io.WriteString(w, " "+name+" "+data.(greeting).Message+"</p>")
	return nil
}

func TestHandleHTML(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)
	e.Renderer = stubRenderer{}
	e.POST("/greet/:id", HandleHTML(NewHandler(s), greet, http.StatusOK, "greet.html"))

	rec := serve(e, http.MethodPost, "/greet/3", `{"name":"ada"}`)

	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Header().Get(echo.HeaderContentType), qt.Equals, echo.MIMETextHTMLCharsetUTF8)
	c.Assert(rec.Body.String(), qt.Equals, "<p>partial greet.html hello ada #3</p>")
}

func TestHandleHTML_RenderFailure(t *testing.T) {
	c := qt.New(t)
	s := newTestServer()
	e := newTestEcho(s)
	e.Renderer = stubRenderer{err: errors.New("boom")}
	e.POST("/greet/:id", HandleHTML(NewHandler(s), greet, http.StatusOK, "greet.html"))

	rec := serve(e, http.MethodPost, "/greet/3", `{"name":"ada"}`)

	c.Assert(rec.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(rec.Body.String(), qt.Not(qt.Contains), "partial")
	c.Assert(decodeBody(c, rec)["message"], qt.Equals, "failed to render template greet.html: boom")
}
