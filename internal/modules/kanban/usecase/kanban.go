package usecase

import (
	"context"

	"tvp/internal/modules/kanban/domain"
	"tvp/internal/modules/kanban/dto"
	kanbanin "tvp/internal/modules/kanban/port/in"
	"tvp/internal/modules/kanban/service"
)

type Interactor struct {
	svc *service.KanbanService
}

func NewInteractor(svc *service.KanbanService) kanbanin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Sync(ctx context.Context, input dto.SyncInput) (dto.SyncOutput, error) {
	updated, err := i.svc.SyncBoards(ctx, input.Mode)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	return dto.SyncOutput{Updated: updated}, nil
}

func (i *Interactor) Bridge(ctx context.Context) (dto.BridgeOutput, error) {
	bridge := i.svc.Bridge(ctx)
	return dto.BridgeOutput{
		Now:      bridge.Now,
		Paused:   bridge.Paused,
		Captured: bridge.Captured,
		Next:     bridge.Next,
	}, nil
}

func (i *Interactor) Goals(ctx context.Context) (dto.GoalBoardOutput, error) {
	sections := i.svc.GoalSections(ctx)
	order := make([]string, 0, len(domain.GoalSectionOrder))
	order = append(order, domain.GoalSectionOrder...)
	return dto.GoalBoardOutput{Order: order, Sections: sections}, nil
}
