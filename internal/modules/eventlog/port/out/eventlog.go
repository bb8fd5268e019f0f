package out

import (
	"context"

	"tvp/internal/modules/eventlog/domain"
)

// EventStore is the sqlite-backed projection of the event history. All list
// methods return events ordered by (timestamp, insertion sequence) and never
// mutate.
type EventStore interface {
	Append(ctx context.Context, event domain.Event) (int64, error)
	ListStarts(ctx context.Context) ([]domain.Event, error)
	ListWindow(ctx context.Context, lookbackDays int) ([]domain.Event, error)
	ListGoals(ctx context.Context) ([]domain.Event, error)
	ListDoneOn(ctx context.Context, date string) ([]domain.Event, error)
	ListByDate(ctx context.Context, date string) ([]domain.Event, error)
	ListDates(ctx context.Context) ([]string, error)
}

// LogStore is the append-only master.log: flat canonical event lines, the
// durable source of truth the sqlite projection mirrors.
type LogStore interface {
	AppendLine(ctx context.Context, line string) error
	Lines(ctx context.Context) ([]string, error)
}
