package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/deppfellow/catalog-api/internal/model"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[string]model.Note
	// vanishOnUpdate simulates a concurrent delete between read and write.
	vanishOnUpdate bool
	err            error
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]model.Note{}}
}

func (r *fakeNoteRepo) List(_ context.Context, limit, offset int) ([]model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	var all []model.Note
	for _, n := range r.notes {
		all = append(all, n)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (r *fakeNoteRepo) Insert(_ context.Context, note model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[note.ID]; ok {
		return errors.Wrap(&pgconn.PgError{Severity: "ERROR", Code: "23505", TableName: "notes", ConstraintName: "notes_pkey"}, "failed to insert note")
	}
	note.CreatedAt, note.UpdatedAt = &testNow, &testNow
	r.notes[note.ID] = note
	return nil
}

func (r *fakeNoteRepo) GetByID(_ context.Context, id string) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return model.Note{}, r.err
	}
	note, ok := r.notes[id]
	if !ok {
		return model.Note{}, errors.Wrapf(pgx.ErrNoRows, "failed to get note %s", id)
	}
	return note, nil
}

func (r *fakeNoteRepo) Update(_ context.Context, note model.Note) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vanishOnUpdate {
		delete(r.notes, note.ID)
		return 0, nil
	}
	if _, ok := r.notes[note.ID]; !ok {
		return 0, nil
	}
	later := testNow.Add(time.Minute)
	note.UpdatedAt = &later
	r.notes[note.ID] = note
	return 1, nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return 0, nil
	}
	delete(r.notes, id)
	return 1, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]model.Product
	// lastOrder records the ORDER BY clause of the last List call.
	lastOrder string
	err       error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]model.Product{}}
}

func (r *fakeProductRepo) sorted(byPriceDesc bool) []model.Product {
	var all []model.Product
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if byPriceDesc && !all[i].Price.Equal(all[j].Price) {
			return all[i].Price.GreaterThan(all[j].Price)
		}
		return all[i].ID < all[j].ID
	})
	return all
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int, orderClause string) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.lastOrder = orderClause

	all := r.sorted(false)
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (r *fakeProductRepo) ListAll(_ context.Context, byPriceDesc bool) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(byPriceDesc), nil
}

func (r *fakeProductRepo) Insert(_ context.Context, product model.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.Stock < 0 {
		return 0, &pgconn.PgError{Severity: "ERROR", Code: "23514", TableName: "products", ConstraintName: "products_stock_check"}
	}
	r.nextID++
	product.ID = r.nextID
	product.CreatedAt, product.UpdatedAt = &testNow, &testNow
	r.products[product.ID] = product
	return product.ID, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return model.Product{}, errors.Wrapf(pgx.ErrNoRows, "failed to get product %d", id)
	}
	return product, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product model.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return 0, nil
	}
	later := testNow.Add(time.Minute)
	product.UpdatedAt = &later
	r.products[product.ID] = product
	return 1, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}
