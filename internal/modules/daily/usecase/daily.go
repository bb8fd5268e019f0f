package usecase

import (
	"context"

	"tvp/internal/modules/daily/dto"
	dailyin "tvp/internal/modules/daily/port/in"
	"tvp/internal/modules/daily/service"
)

type Interactor struct {
	svc *service.DailyService
}

func NewInteractor(svc *service.DailyService) dailyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) SyncToday(ctx context.Context) (dto.SyncOutput, error) {
	path, err := i.svc.SyncToday(ctx)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	return dto.SyncOutput{Updated: []string{path}}, nil
}

func (i *Interactor) SyncAll(ctx context.Context) (dto.SyncOutput, error) {
	updated, err := i.svc.SyncAll(ctx)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	return dto.SyncOutput{Updated: updated}, nil
}
