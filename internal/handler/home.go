package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/catalog-api/internal/model"
)

// ProductsTemplate is the page rendered at "/".
const ProductsTemplate = "products.html"

// HomeHandler renders the product catalog as HTML.
type HomeHandler struct {
	Handler
	products ProductService
}

func NewHomeHandler(h Handler, products ProductService) *HomeHandler {
	return &HomeHandler{Handler: h, products: products}
}

// ListProductsPage loads every product for the template; ?sort=price_desc
// puts the most expensive first, any other value sorts by id.
func (h *HomeHandler) ListProductsPage(c echo.Context, query *model.HomePageQuery) (map[string]any, error) {
	products, err := h.products.ListAll(c.Request().Context(), query.ByPriceDesc())
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"products": products,
		"sort":     query.Sort,
	}, nil
}
