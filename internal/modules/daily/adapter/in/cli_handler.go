package in

import (
	"context"

	dailydto "tvp/internal/modules/daily/dto"
	dailyin "tvp/internal/modules/daily/port/in"
)

type CLIHandler struct {
	usecase dailyin.Usecase
}

func NewCLIHandler(usecase dailyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SyncToday(ctx context.Context) (dailydto.SyncOutput, error) {
	return h.usecase.SyncToday(ctx)
}

func (h CLIHandler) SyncAll(ctx context.Context) (dailydto.SyncOutput, error) {
	return h.usecase.SyncAll(ctx)
}
