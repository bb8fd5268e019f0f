package in

import (
	"context"

	"tvp/internal/modules/kanban/dto"
)

type Usecase interface {
	Sync(ctx context.Context, input dto.SyncInput) (dto.SyncOutput, error)
	Bridge(ctx context.Context) (dto.BridgeOutput, error)
	Goals(ctx context.Context) (dto.GoalBoardOutput, error)
}
