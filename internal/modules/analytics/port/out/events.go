package out

import (
	"context"

	"tvp/internal/modules/analytics/domain"
)

// EventSource feeds the session deriver. Starts returns start events in
// (timestamp, insertion) order; MasterLines is the flat log fallback used
// when the event table has no start rows.
type EventSource interface {
	Starts(ctx context.Context) ([]domain.StartEvent, error)
	MasterLines(ctx context.Context) ([]string, error)
}
