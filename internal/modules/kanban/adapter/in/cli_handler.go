package in

import (
	"context"

	kanbandto "tvp/internal/modules/kanban/dto"
	kanbanin "tvp/internal/modules/kanban/port/in"
)

type CLIHandler struct {
	usecase kanbanin.Usecase
}

func NewCLIHandler(usecase kanbanin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Sync(ctx context.Context, mode string) (kanbandto.SyncOutput, error) {
	return h.usecase.Sync(ctx, kanbandto.SyncInput{Mode: mode})
}

func (h CLIHandler) Bridge(ctx context.Context) (kanbandto.BridgeOutput, error) {
	return h.usecase.Bridge(ctx)
}

func (h CLIHandler) Goals(ctx context.Context) (kanbandto.GoalBoardOutput, error) {
	return h.usecase.Goals(ctx)
}
