package model

import (
	"time"

	"github.com/deppfellow/catalog-api/internal/validation"
)

// Note is a row of the notes table. IsPublished is stored as 0 or 1.
type Note struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Content     string     `db:"content"`
	IsPublished int16      `db:"is_published"`
	CreatedAt   *time.Time `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

type NoteResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToResponse converts the row into its public shape.
// It fails with ErrMissingTimestamp when either timestamp is NULL.
func (n Note) ToResponse() (NoteResponse, error) {
	createdAt, updatedAt, err := requireTimestamps(n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return NoteResponse{}, err
	}

	return NoteResponse{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		IsPublished: n.IsPublished != 0,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// NotesToResponse converts rows in order, failing on the first bad row.
func NotesToResponse(notes []Note) ([]NoteResponse, error) {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp, err := n.ToResponse()
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// PublishedFlag converts a boolean into the stored small integer.
func PublishedFlag(published bool) int16 {
	if published {
		return 1
	}
	return 0
}

// ------------------------------------------------------------

type ListNotesQuery struct {
	PageQuery
}

func (q *ListNotesQuery) Validate() error {
	return validation.Struct(q)
}

type CreateNotePayload struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	IsPublished *bool  `json:"is_published"`
}

func (p *CreateNotePayload) Validate() error {
	return validation.Struct(p)
}

// Published returns the requested flag; an omitted flag means unpublished.
func (p *CreateNotePayload) Published() bool {
	return p.IsPublished != nil && *p.IsPublished
}

// NoteIDParams identifies a note through the :id path parameter.
type NoteIDParams struct {
	ID string `param:"id" validate:"required"`
}

func (p *NoteIDParams) Validate() error {
	return validation.Struct(p)
}

// UpdateNotePayload is a partial update: nil fields keep their stored value.
type UpdateNotePayload struct {
	ID          string  `param:"id" json:"-" validate:"required"`
	Title       *string `json:"title" validate:"omitnil,min=1"`
	Content     *string `json:"content" validate:"omitnil,min=1"`
	IsPublished *bool   `json:"is_published"`
}

func (p *UpdateNotePayload) Validate() error {
	return validation.Struct(p)
}

// Apply returns current with every supplied field replaced.
func (p *UpdateNotePayload) Apply(current Note) Note {
	updated := current
	if p.Title != nil {
		updated.Title = *p.Title
	}
	if p.Content != nil {
		updated.Content = *p.Content
	}
	if p.IsPublished != nil {
		updated.IsPublished = PublishedFlag(*p.IsPublished)
	}
	return updated
}

// ------------------------------------------------------------

type NoteListResponse struct {
	Status string         `json:"status"`
	Count  int            `json:"count"`
	Notes  []NoteResponse `json:"notes"`
}

type NoteData struct {
	Note NoteResponse `json:"note"`
}

type NoteEnvelope struct {
	Status string   `json:"status"`
	Data   NoteData `json:"data"`
}

func NewNoteListResponse(notes []NoteResponse) NoteListResponse {
	return NoteListResponse{Status: StatusSuccess, Count: len(notes), Notes: notes}
}

func NewNoteEnvelope(note NoteResponse) NoteEnvelope {
	return NoteEnvelope{Status: StatusSuccess, Data: NoteData{Note: note}}
}
