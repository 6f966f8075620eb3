package handler

import (
	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/deppfellow/catalog-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Base     Handler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Notes    *NoteHandler
	Products *ProductHandler
	Home     *HomeHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	base := NewHandler(s)

	return &Handlers{
		Base:     base,
		Health:   NewHealthHandler(base),
		OpenAPI:  NewOpenAPIHandler(base),
		Notes:    NewNoteHandler(base, services.Notes),
		Products: NewProductHandler(base, services.Products),
		Home:     NewHomeHandler(base, services.Products),
	}
}
