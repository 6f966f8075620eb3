package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/deppfellow/catalog-api/internal/sqlerr"
)

// NoteRepository is the storage used by NoteService.
type NoteRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.Note, error)
	Insert(ctx context.Context, note model.Note) error
	GetByID(ctx context.Context, id string) (model.Note, error)
	Update(ctx context.Context, note model.Note) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type NoteService struct {
	repo  NoteRepository
	newID func() string
}

func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{
		repo:  repo,
		newID: func() string { return uuid.New().String() },
	}
}

func (s *NoteService) List(ctx context.Context, query *model.ListNotesQuery) ([]model.NoteResponse, error) {
	notes, err := s.repo.List(ctx, query.PageSize(), query.Offset())
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	resp, err := model.NotesToResponse(notes)
	if err != nil {
		return nil, storageFailure(err)
	}
	return resp, nil
}

// Create stores a note under a freshly generated id and returns the stored row.
func (s *NoteService) Create(ctx context.Context, payload *model.CreateNotePayload) (model.NoteResponse, error) {
	note := model.Note{
		ID:          s.newID(),
		Title:       payload.Title,
		Content:     payload.Content,
		IsPublished: model.PublishedFlag(payload.Published()),
	}

	if err := s.repo.Insert(ctx, note); err != nil {
		return model.NoteResponse{}, sqlerr.HandleError(err)
	}

	zerolog.Ctx(ctx).Info().Str("note_id", note.ID).Msg("note created")

	stored, err := s.repo.GetByID(ctx, note.ID)
	if err != nil {
		return model.NoteResponse{}, storageFailure(err)
	}
	return toNoteResponse(stored)
}

func (s *NoteService) Get(ctx context.Context, id string) (model.NoteResponse, error) {
	note, err := s.load(ctx, id)
	if err != nil {
		return model.NoteResponse{}, err
	}
	return toNoteResponse(note)
}

// Update merges the supplied fields into the stored note.
//
// A note deleted between the read and the write surfaces as not found.
func (s *NoteService) Update(ctx context.Context, payload *model.UpdateNotePayload) (model.NoteResponse, error) {
	current, err := s.load(ctx, payload.ID)
	if err != nil {
		return model.NoteResponse{}, err
	}

	affected, err := s.repo.Update(ctx, payload.Apply(current))
	if err != nil {
		return model.NoteResponse{}, sqlerr.HandleError(err)
	}
	if affected == 0 {
		return model.NoteResponse{}, notFound("Note", payload.ID)
	}

	updated, err := s.load(ctx, payload.ID)
	if err != nil {
		return model.NoteResponse{}, err
	}
	return toNoteResponse(updated)
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	if affected == 0 {
		return notFound("Note", id)
	}

	zerolog.Ctx(ctx).Info().Str("note_id", id).Msg("note deleted")
	return nil
}

func (s *NoteService) load(ctx context.Context, id string) (model.Note, error) {
	note, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Note{}, notFound("Note", id)
	}
	if err != nil {
		return model.Note{}, sqlerr.HandleError(err)
	}
	return note, nil
}

func toNoteResponse(note model.Note) (model.NoteResponse, error) {
	resp, err := note.ToResponse()
	if err != nil {
		return model.NoteResponse{}, storageFailure(err)
	}
	return resp, nil
}
