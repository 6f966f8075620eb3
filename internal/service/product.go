package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/deppfellow/catalog-api/internal/sqlerr"
)

// ProductRepository is the storage used by ProductService.
type ProductRepository interface {
	List(ctx context.Context, limit, offset int, orderClause string) ([]model.Product, error)
	ListAll(ctx context.Context, byPriceDesc bool) ([]model.Product, error)
	Insert(ctx context.Context, product model.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (model.Product, error)
	Update(ctx context.Context, product model.Product) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List(ctx context.Context, query *model.ListProductsQuery) ([]model.ProductResponse, error) {
	products, err := s.repo.List(ctx, query.PageSize(), query.Offset(), query.OrderClause())
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return toProductResponses(products)
}

// ListAll returns the full catalog for the HTML listing.
func (s *ProductService) ListAll(ctx context.Context, byPriceDesc bool) ([]model.ProductResponse, error) {
	products, err := s.repo.ListAll(ctx, byPriceDesc)
	if err != nil {
		return nil, storageFailure(err)
	}
	return toProductResponses(products)
}

// Create inserts the product, then reads back the row the database assigned.
func (s *ProductService) Create(ctx context.Context, payload *model.CreateProductPayload) (model.ProductResponse, error) {
	id, err := s.repo.Insert(ctx, payload.Row())
	if err != nil {
		return model.ProductResponse{}, sqlerr.HandleError(err)
	}

	zerolog.Ctx(ctx).Info().Int64("product_id", id).Msg("product created")

	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.ProductResponse{}, storageFailure(err)
	}
	return toProductResponse(stored)
}

func (s *ProductService) Get(ctx context.Context, id int64) (model.ProductResponse, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return model.ProductResponse{}, err
	}
	return toProductResponse(product)
}

// Update merges the supplied fields into the stored product.
func (s *ProductService) Update(ctx context.Context, payload *model.UpdateProductPayload) (model.ProductResponse, error) {
	current, err := s.load(ctx, payload.ID)
	if err != nil {
		return model.ProductResponse{}, err
	}

	affected, err := s.repo.Update(ctx, payload.Apply(current))
	if err != nil {
		return model.ProductResponse{}, sqlerr.HandleError(err)
	}
	if affected == 0 {
		return model.ProductResponse{}, notFound("Product", payload.ID)
	}

	updated, err := s.load(ctx, payload.ID)
	if err != nil {
		return model.ProductResponse{}, err
	}
	return toProductResponse(updated)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	if affected == 0 {
		return notFound("Product", id)
	}

	zerolog.Ctx(ctx).Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) load(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Product{}, notFound("Product", id)
	}
	if err != nil {
		return model.Product{}, sqlerr.HandleError(err)
	}
	return product, nil
}

func toProductResponse(product model.Product) (model.ProductResponse, error) {
	resp, err := product.ToResponse()
	if err != nil {
		return model.ProductResponse{}, storageFailure(err)
	}
	return resp, nil
}

func toProductResponses(products []model.Product) ([]model.ProductResponse, error) {
	resp, err := model.ProductsToResponse(products)
	if err != nil {
		return nil, storageFailure(err)
	}
	return resp, nil
}
