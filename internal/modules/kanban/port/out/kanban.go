package out

import (
	"context"

	"tvp/internal/modules/kanban/domain"
)

// EventSource supplies the event slices the board projections read.
type EventSource interface {
	Window(ctx context.Context, lookbackDays int) ([]domain.BridgeEvent, error)
	Goals(ctx context.Context) ([]domain.GoalEvent, error)
	DoneToday(ctx context.Context) ([]domain.BridgeEvent, error)
}

// BacklogStore reads the manually curated TODO list.
type BacklogStore interface {
	Items(ctx context.Context) (backlog, done []string, err error)
}

// BoardStore persists board files by name inside the vault's Kanban
// directory. Write returns the full path of the written file.
type BoardStore interface {
	Exists(name string) bool
	Read(ctx context.Context, name string) (string, error)
	Write(ctx context.Context, name, content string) (string, error)
}
