package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/catalog-api/internal/model"
)

// NoteService is the business layer behind the note endpoints.
type NoteService interface {
	List(ctx context.Context, query *model.ListNotesQuery) ([]model.NoteResponse, error)
	Create(ctx context.Context, payload *model.CreateNotePayload) (model.NoteResponse, error)
	Get(ctx context.Context, id string) (model.NoteResponse, error)
	Update(ctx context.Context, payload *model.UpdateNotePayload) (model.NoteResponse, error)
	Delete(ctx context.Context, id string) error
}

type NoteHandler struct {
	Handler
	notes NoteService
}

func NewNoteHandler(h Handler, notes NoteService) *NoteHandler {
	return &NoteHandler{Handler: h, notes: notes}
}

func (h *NoteHandler) ListNotes(c echo.Context, query *model.ListNotesQuery) (model.NoteListResponse, error) {
	notes, err := h.notes.List(c.Request().Context(), query)
	if err != nil {
		return model.NoteListResponse{}, err
	}
	return model.NewNoteListResponse(notes), nil
}

func (h *NoteHandler) CreateNote(c echo.Context, payload *model.CreateNotePayload) (model.NoteEnvelope, error) {
	note, err := h.notes.Create(c.Request().Context(), payload)
	if err != nil {
		return model.NoteEnvelope{}, err
	}
	return model.NewNoteEnvelope(note), nil
}

func (h *NoteHandler) GetNote(c echo.Context, params *model.NoteIDParams) (model.NoteEnvelope, error) {
	note, err := h.notes.Get(c.Request().Context(), params.ID)
	if err != nil {
		return model.NoteEnvelope{}, err
	}
	return model.NewNoteEnvelope(note), nil
}

// UpdateNote applies a partial update; fields missing from the body keep
// their stored values.
func (h *NoteHandler) UpdateNote(c echo.Context, payload *model.UpdateNotePayload) (model.NoteEnvelope, error) {
	note, err := h.notes.Update(c.Request().Context(), payload)
	if err != nil {
		return model.NoteEnvelope{}, err
	}
	return model.NewNoteEnvelope(note), nil
}

func (h *NoteHandler) DeleteNote(c echo.Context, params *model.NoteIDParams) error {
	return h.notes.Delete(c.Request().Context(), params.ID)
}
