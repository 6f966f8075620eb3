package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/deppfellow/catalog-api/internal/errs"
	"github.com/deppfellow/catalog-api/internal/model"
)

func ptr[T any](v T) *T {
	return &v
}

func assertHTTPError(c *qt.C, err error, status int, message string) {
	c.Helper()

	var httpErr *errs.HTTPError
	c.Assert(errors.As(err, &httpErr), qt.IsTrue, qt.Commentf("error: %v", err))
	c.Assert(httpErr.HTTPStatus, qt.Equals, status)
	if message != "" {
		c.Assert(httpErr.Message, qt.Equals, message)
	}
}

func TestNoteService_CreateAndGet(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := NewNoteService(newFakeNoteRepo())

	created, err := svc.Create(ctx, &model.CreateNotePayload{Title: "title", Content: "content"})
	c.Assert(err, qt.IsNil)
	c.Assert(created.ID, qt.HasLen, 36)
	c.Assert(created.IsPublished, qt.IsFalse)

	fetched, err := svc.Get(ctx, created.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(fetched.Title, qt.Equals, "title")
	c.Assert(fetched.Content, qt.Equals, "content")
}

func TestNoteService_CreateDuplicate(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := NewNoteService(newFakeNoteRepo())
	svc.newID = func() string { return "fixed-id" }

	_, err := svc.Create(ctx, &model.CreateNotePayload{Title: "a", Content: "b"})
	c.Assert(err, qt.IsNil)

	_, err = svc.Create(ctx, &model.CreateNotePayload{Title: "a", Content: "b"})
	assertHTTPError(c, err, http.StatusConflict, "Note already exists")
}

func TestNoteService_GetMissing(t *testing.T) {
	c := qt.New(t)
	svc := NewNoteService(newFakeNoteRepo())

	_, err := svc.Get(context.Background(), "nope")
	assertHTTPError(c, err, http.StatusNotFound, "Note with ID: nope not found")
}

func TestNoteService_UpdateCoalesces(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := NewNoteService(newFakeNoteRepo())

	created, err := svc.Create(ctx, &model.CreateNotePayload{Title: "old", Content: "keep", IsPublished: ptr(true)})
	c.Assert(err, qt.IsNil)

	updated, err := svc.Update(ctx, &model.UpdateNotePayload{ID: created.ID, Title: ptr("new")})
	c.Assert(err, qt.IsNil)
	c.Assert(updated.Title, qt.Equals, "new")
	c.Assert(updated.Content, qt.Equals, "keep")
	c.Assert(updated.IsPublished, qt.IsTrue)
	c.Assert(updated.UpdatedAt.After(created.UpdatedAt), qt.IsTrue)
}

func TestNoteService_UpdateMissing(t *testing.T) {
	c := qt.New(t)
	svc := NewNoteService(newFakeNoteRepo())

	_, err := svc.Update(context.Background(), &model.UpdateNotePayload{ID: "ghost", Title: ptr("x")})
	assertHTTPError(c, err, http.StatusNotFound, "Note with ID: ghost not found")
}

func TestNoteService_UpdateRaceWithDelete(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repo := newFakeNoteRepo()
	svc := NewNoteService(repo)

	created, err := svc.Create(ctx, &model.CreateNotePayload{Title: "a", Content: "b"})
	c.Assert(err, qt.IsNil)

	repo.vanishOnUpdate = true
	_, err = svc.Update(ctx, &model.UpdateNotePayload{ID: created.ID, Content: ptr("c")})
	assertHTTPError(c, err, http.StatusNotFound, "")
}

func TestNoteService_Delete(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := NewNoteService(newFakeNoteRepo())

	created, err := svc.Create(ctx, &model.CreateNotePayload{Title: "a", Content: "b"})
	c.Assert(err, qt.IsNil)

	c.Assert(svc.Delete(ctx, created.ID), qt.IsNil)
	assertHTTPError(c, svc.Delete(ctx, created.ID), http.StatusNotFound, "Note with ID: "+created.ID+" not found")
}

func TestNoteService_List(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := NewNoteService(newFakeNoteRepo())

	for range 3 {
		_, err := svc.Create(ctx, &model.CreateNotePayload{Title: "t", Content: "c"})
		c.Assert(err, qt.IsNil)
	}

	notes, err := svc.List(ctx, &model.ListNotesQuery{PageQuery: model.PageQuery{Page: 1, Limit: 2}})
	c.Assert(err, qt.IsNil)
	c.Assert(notes, qt.HasLen, 2)

	notes, err = svc.List(ctx, &model.ListNotesQuery{PageQuery: model.PageQuery{Page: 5}})
	c.Assert(err, qt.IsNil)
	c.Assert(notes, qt.HasLen, 0)
}

func TestNoteService_ListStorageError(t *testing.T) {
	c := qt.New(t)
	repo := newFakeNoteRepo()
	repo.err = errors.New("connection reset")
	svc := NewNoteService(repo)

	_, err := svc.List(context.Background(), &model.ListNotesQuery{})
	assertHTTPError(c, err, http.StatusInternalServerError, "connection reset")
}

func TestNoteService_MissingTimestampIsInternal(t *testing.T) {
	c := qt.New(t)
	repo := newFakeNoteRepo()
	repo.notes["n1"] = model.Note{ID: "n1", Title: "t", Content: "c"}
	svc := NewNoteService(repo)

	_, err := svc.Get(context.Background(), "n1")
	assertHTTPError(c, err, http.StatusInternalServerError, model.ErrMissingTimestamp.Error())
}
