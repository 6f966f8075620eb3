package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/catalog-api/internal/model"
)

// ProductService is the business layer behind the product endpoints and the
// HTML listing.
type ProductService interface {
	List(ctx context.Context, query *model.ListProductsQuery) ([]model.ProductResponse, error)
	ListAll(ctx context.Context, byPriceDesc bool) ([]model.ProductResponse, error)
	Create(ctx context.Context, payload *model.CreateProductPayload) (model.ProductResponse, error)
	Get(ctx context.Context, id int64) (model.ProductResponse, error)
	Update(ctx context.Context, payload *model.UpdateProductPayload) (model.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
}

type ProductHandler struct {
	Handler
	products ProductService
}

func NewProductHandler(h Handler, products ProductService) *ProductHandler {
	return &ProductHandler{Handler: h, products: products}
}

func (h *ProductHandler) ListProducts(c echo.Context, query *model.ListProductsQuery) (model.ProductListResponse, error) {
	products, err := h.products.List(c.Request().Context(), query)
	if err != nil {
		return model.ProductListResponse{}, err
	}
	return model.NewProductListResponse(products), nil
}

func (h *ProductHandler) CreateProduct(c echo.Context, payload *model.CreateProductPayload) (model.ProductEnvelope, error) {
	product, err := h.products.Create(c.Request().Context(), payload)
	if err != nil {
		return model.ProductEnvelope{}, err
	}
	return model.NewProductEnvelope(product), nil
}

func (h *ProductHandler) GetProduct(c echo.Context, params *model.ProductIDParams) (model.ProductEnvelope, error) {
	product, err := h.products.Get(c.Request().Context(), params.ID)
	if err != nil {
		return model.ProductEnvelope{}, err
	}
	return model.NewProductEnvelope(product), nil
}

func (h *ProductHandler) UpdateProduct(c echo.Context, payload *model.UpdateProductPayload) (model.ProductEnvelope, error) {
	product, err := h.products.Update(c.Request().Context(), payload)
	if err != nil {
		return model.ProductEnvelope{}, err
	}
	return model.NewProductEnvelope(product), nil
}

func (h *ProductHandler) DeleteProduct(c echo.Context, params *model.ProductIDParams) error {
	return h.products.Delete(c.Request().Context(), params.ID)
}
