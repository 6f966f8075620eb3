package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deppfellow/catalog-api/internal/validation"
)

// Product is a row of the products table.
type Product struct {
	ID          int64           `db:"id"`
	CategoryID  int64           `db:"category_id"`
	Name        string          `db:"name"`
	Description *string         `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Code        int32           `db:"code"`
	Stock       int32           `db:"stock"`
	Image       *string         `db:"image"`
	CreatedAt   *time.Time      `db:"created_at"`
	UpdatedAt   *time.Time      `db:"updated_at"`
}

// ProductResponse is the public shape of a product. Price is encoded as a
// JSON string so decimal values survive the round trip unchanged.
type ProductResponse struct {
	ID          int64           `json:"id"`
	CategoryID  int64           `json:"category_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Code        int32           `json:"code"`
	Stock       int32           `json:"stock"`
	Image       *string         `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p Product) ToResponse() (ProductResponse, error) {
	createdAt, updatedAt, err := requireTimestamps(p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return ProductResponse{}, err
	}

	return ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Code:        p.Code,
		Stock:       p.Stock,
		Image:       p.Image,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func ProductsToResponse(products []Product) ([]ProductResponse, error) {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp, err := p.ToResponse()
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// ------------------------------------------------------------

// sortColumns maps the accepted order_by values to SQL identifiers.
// Only these identifiers are ever written into an ORDER BY clause.
var sortColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"price":       "price",
	"code":        "code",
	"stock":       "stock",
	"category_id": "category_id",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

type ListProductsQuery struct {
	PageQuery
	Order   string `query:"order" validate:"omitempty,oneof=asc desc"`
	OrderBy string `query:"order_by" validate:"omitempty,oneof=id name price code stock category_id created_at updated_at"`
}

func (q *ListProductsQuery) Validate() error {
	q.Order = strings.ToLower(strings.TrimSpace(q.Order))
	q.OrderBy = strings.ToLower(strings.TrimSpace(q.OrderBy))
	return validation.Struct(q)
}

// OrderClause returns the ORDER BY expression for the query, e.g.
// "price DESC, id ASC". Unknown values fall back to the defaults.
func (q *ListProductsQuery) OrderClause() string {
	column, ok := sortColumns[q.OrderBy]
	if !ok {
		column = "id"
	}

	direction := "ASC"
	if q.Order == "desc" {
		direction = "DESC"
	}

	if column == "id" {
		return "id " + direction
	}
	return fmt.Sprintf("%s %s, id ASC", column, direction)
}

type CreateProductPayload struct {
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int64           `json:"category_id" validate:"required,min=0"`
	Code        *int32           `json:"code" validate:"required,min=0"`
	Stock       *int32           `json:"stock" validate:"required,min=0"`
}

func (p *CreateProductPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	return validatePrice(p.Price)
}

// Row returns the product to insert. An omitted price is stored as zero.
func (p *CreateProductPayload) Row() Product {
	row := Product{
		CategoryID:  *p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       decimal.Zero,
		Code:        *p.Code,
		Stock:       *p.Stock,
	}
	if p.Price != nil {
		row.Price = *p.Price
	}
	return row
}

// ProductIDParams identifies a product through the :id path parameter.
type ProductIDParams struct {
	ID int64 `param:"id"`
}

func (p *ProductIDParams) Validate() error {
	return nil
}

// UpdateProductPayload is a partial update: nil fields keep their stored value.
type UpdateProductPayload struct {
	ID          int64            `param:"id" json:"-"`
	Name        *string          `json:"name" validate:"omitnil,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int64           `json:"category_id" validate:"omitnil,min=0"`
	Code        *int32           `json:"code" validate:"omitnil,min=0"`
	Stock       *int32           `json:"stock" validate:"omitnil,min=0"`
}

func (p *UpdateProductPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	return validatePrice(p.Price)
}

// Apply returns current with every supplied field replaced.
func (p *UpdateProductPayload) Apply(current Product) Product {
	updated := current
	if p.Name != nil {
		updated.Name = *p.Name
	}
	if p.Description != nil {
		updated.Description = p.Description
	}
	if p.Price != nil {
		updated.Price = *p.Price
	}
	if p.CategoryID != nil {
		updated.CategoryID = *p.CategoryID
	}
	if p.Code != nil {
		updated.Code = *p.Code
	}
	if p.Stock != nil {
		updated.Stock = *p.Stock
	}
	return updated
}

func validatePrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return validation.CustomValidationErrors{
			{Field: "price", Message: "must not be negative"},
		}
	}
	return nil
}

// HomePageQuery carries the optional ?sort=price_desc of the HTML listing.
type HomePageQuery struct {
	Sort string `query:"sort"`
}

func (q *HomePageQuery) Validate() error {
	return nil
}

// ByPriceDesc reports whether the listing should be sorted by price, highest first.
func (q *HomePageQuery) ByPriceDesc() bool {
	return q.Sort == "price_desc"
}

// ------------------------------------------------------------

type ProductListResponse struct {
	Status string            `json:"status"`
	Count  int               `json:"count"`
	Items  []ProductResponse `json:"items"`
}

type ProductData struct {
	Product ProductResponse `json:"product"`
}

type ProductEnvelope struct {
	Status string      `json:"status"`
	Data   ProductData `json:"data"`
}

func NewProductListResponse(products []ProductResponse) ProductListResponse {
	return ProductListResponse{Status: StatusSuccess, Count: len(products), Items: products}
}

func NewProductEnvelope(product ProductResponse) ProductEnvelope {
	return ProductEnvelope{Status: StatusSuccess, Data: ProductData{Product: product}}
}
