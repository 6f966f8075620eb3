package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/deppfellow/catalog-api/internal/model"
)

const noteColumns = `id, title, content, is_published, created_at, updated_at`

type NoteRepository struct {
	q *querier
}

func NewNoteRepository(q *querier) *NoteRepository {
	return &NoteRepository{q: q}
}

// List returns up to limit notes after skipping offset, ordered by id.
func (r *NoteRepository) List(ctx context.Context, limit, offset int) ([]model.Note, error) {
	defer r.q.observe(ctx, "notes.list", time.Now())

	rows, err := r.q.pool.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		ORDER BY id
		LIMIT @limit OFFSET @offset
	`, pgx.NamedArgs{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	notes, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Note])
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect notes")
	}

	return notes, nil
}

// Insert writes a new note. Timestamps are assigned by the database.
func (r *NoteRepository) Insert(ctx context.Context, note model.Note) error {
	defer r.q.observe(ctx, "notes.insert", time.Now())

	_, err := r.q.pool.Exec(ctx, `
		INSERT INTO notes (id, title, content, is_published)
		VALUES (@id, @title, @content, @is_published)
	`, pgx.NamedArgs{
		"id":           note.ID,
		"title":        note.Title,
		"content":      note.Content,
		"is_published": note.IsPublished,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to insert note %s", note.ID)
	}

	return nil
}

// GetByID returns the note with the given id, or an error wrapping
// pgx.ErrNoRows when it does not exist.
func (r *NoteRepository) GetByID(ctx context.Context, id string) (model.Note, error) {
	defer r.q.observe(ctx, "notes.get", time.Now())

	rows, err := r.q.pool.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return model.Note{}, errors.Wrapf(err, "failed to get note %s", id)
	}

	note, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Note])
	if err != nil {
		return model.Note{}, errors.Wrapf(err, "failed to get note %s", id)
	}

	return note, nil
}

// Update writes every mutable column of note and refreshes updated_at.
// It returns the number of rows affected.
func (r *NoteRepository) Update(ctx context.Context, note model.Note) (int64, error) {
	defer r.q.observe(ctx, "notes.update", time.Now())

	tag, err := r.q.pool.Exec(ctx, `
		UPDATE notes
		SET
			title = @title,
			content = @content,
			is_published = @is_published,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = @id
	`, pgx.NamedArgs{
		"id":           note.ID,
		"title":        note.Title,
		"content":      note.Content,
		"is_published": note.IsPublished,
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to update note %s", note.ID)
	}

	return tag.RowsAffected(), nil
}

// Delete removes the note and returns the number of rows affected.
func (r *NoteRepository) Delete(ctx context.Context, id string) (int64, error) {
	defer r.q.observe(ctx, "notes.delete", time.Now())

	tag, err := r.q.pool.Exec(ctx, `DELETE FROM notes WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete note %s", id)
	}

	return tag.RowsAffected(), nil
}
