package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/deppfellow/catalog-api/internal/model"
)

const productColumns = `id, category_id, name, description, price, code, stock, image, created_at, updated_at`

type ProductRepository struct {
	q *querier
}

func NewProductRepository(q *querier) *ProductRepository {
	return &ProductRepository{q: q}
}

// List returns one page of products.
//
// orderClause is interpolated into the statement, so it must come from
// model.ListProductsQuery.OrderClause, which only emits allow-listed columns.
func (r *ProductRepository) List(ctx context.Context, limit, offset int, orderClause string) ([]model.Product, error) {
	defer r.q.observe(ctx, "products.list", time.Now())

	rows, err := r.q.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY `+orderClause+`
		LIMIT @limit OFFSET @offset
	`, pgx.NamedArgs{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect products")
	}

	return products, nil
}

// ListAll returns every product, by price descending or by id.
func (r *ProductRepository) ListAll(ctx context.Context, byPriceDesc bool) ([]model.Product, error) {
	defer r.q.observe(ctx, "products.list_all", time.Now())

	orderBy := "id"
	if byPriceDesc {
		orderBy = "price DESC, id ASC"
	}

	rows, err := r.q.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY `+orderBy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all products")
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect products")
	}

	return products, nil
}

// Insert writes a new product and returns the id assigned by the database.
func (r *ProductRepository) Insert(ctx context.Context, product model.Product) (int64, error) {
	defer r.q.observe(ctx, "products.insert", time.Now())

	var id int64
	err := r.q.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price, category_id, code, stock)
		VALUES (@name, @description, @price, @category_id, @code, @stock)
		RETURNING id
	`, pgx.NamedArgs{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"category_id": product.CategoryID,
		"code":        product.Code,
		"stock":       product.Stock,
	}).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert product")
	}

	return id, nil
}

// GetByID returns the product with the given id, or an error wrapping
// pgx.ErrNoRows when it does not exist.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	defer r.q.observe(ctx, "products.get", time.Now())

	rows, err := r.q.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return model.Product{}, errors.Wrapf(err, "failed to get product %d", id)
	}

	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return model.Product{}, errors.Wrapf(err, "failed to get product %d", id)
	}

	return product, nil
}

// Update writes every mutable column of product and refreshes updated_at.
// It returns the number of rows affected.
func (r *ProductRepository) Update(ctx context.Context, product model.Product) (int64, error) {
	defer r.q.observe(ctx, "products.update", time.Now())

	tag, err := r.q.pool.Exec(ctx, `
		UPDATE products
		SET
			name = @name,
			description = @description,
			price = @price,
			category_id = @category_id,
			code = @code,
			stock = @stock,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = @id
	`, pgx.NamedArgs{
		"id":          product.ID,
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"category_id": product.CategoryID,
		"code":        product.Code,
		"stock":       product.Stock,
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to update product %d", product.ID)
	}

	return tag.RowsAffected(), nil
}

// Delete removes the product and returns the number of rows affected.
func (r *ProductRepository) Delete(ctx context.Context, id int64) (int64, error) {
	defer r.q.observe(ctx, "products.delete", time.Now())

	tag, err := r.q.pool.Exec(ctx, `DELETE FROM products WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete product %d", id)
	}

	return tag.RowsAffected(), nil
}
