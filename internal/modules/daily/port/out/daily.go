package out

import (
	"context"

	"tvp/internal/modules/daily/domain"
)

// EventSource supplies the per-date event slices daily notes render.
type EventSource interface {
	ByDate(ctx context.Context, date string) ([]domain.NoteEvent, error)
	Dates(ctx context.Context) ([]string, error)
}

// NoteStore persists one note per calendar date. Write returns the full
// path of the written note.
type NoteStore interface {
	Write(ctx context.Context, date, content string) (string, error)
}
