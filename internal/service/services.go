package service

import (
	"github.com/deppfellow/catalog-api/internal/repository"
	"github.com/deppfellow/catalog-api/internal/server"
)

type Services struct {
	Notes    *NoteService
	Products *ProductService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Notes:    NewNoteService(repos.Notes),
		Products: NewProductService(repos.Products),
	}, nil
}
