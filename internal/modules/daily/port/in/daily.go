package in

import (
	"context"

	"tvp/internal/modules/daily/dto"
)

type Usecase interface {
	// SyncToday rewrites today's note from the event history.
	SyncToday(ctx context.Context) (dto.SyncOutput, error)
	// SyncAll rewrites one note per recorded date.
	SyncAll(ctx context.Context) (dto.SyncOutput, error)
}
