package usecase

import (
	"context"

	"tvp/internal/modules/eventlog/domain"
	"tvp/internal/modules/eventlog/dto"
	eventlogin "tvp/internal/modules/eventlog/port/in"
	"tvp/internal/modules/eventlog/service"
)

type Interactor struct {
	svc *service.EventLogService
}

func NewInteractor(svc *service.EventLogService) eventlogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error) {
	event := domain.Event{
		Timestamp: input.Timestamp,
		Type:      domain.ParseEventType(input.EventType),
		Category:  domain.ParseCategory(input.Category),
		Activity:  input.Activity,
		Context:   input.Context,
		RawInput:  input.RawInput,
	}
	recorded, err := i.svc.Record(ctx, event)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return dto.RecordOutput{Seq: recorded.Seq, Line: recorded.CanonicalLine()}, nil
}

func (i *Interactor) ListStarts(ctx context.Context) ([]dto.EventOutput, error) {
	return toOutputs(i.svc.Starts(ctx)), nil
}

func (i *Interactor) ListWindow(ctx context.Context, lookbackDays int) ([]dto.EventOutput, error) {
	return toOutputs(i.svc.Window(ctx, lookbackDays)), nil
}

func (i *Interactor) ListGoals(ctx context.Context) ([]dto.EventOutput, error) {
	return toOutputs(i.svc.Goals(ctx)), nil
}

func (i *Interactor) ListDoneToday(ctx context.Context) ([]dto.EventOutput, error) {
	return toOutputs(i.svc.DoneOn(ctx, i.svc.Today())), nil
}

func (i *Interactor) ListByDate(ctx context.Context, date string) ([]dto.EventOutput, error) {
	return toOutputs(i.svc.ByDate(ctx, date)), nil
}

func (i *Interactor) ListDates(ctx context.Context) ([]string, error) {
	return i.svc.Dates(ctx), nil
}

func (i *Interactor) MasterLines(ctx context.Context) ([]string, error) {
	return i.svc.MasterLines(ctx), nil
}

func toOutputs(events []domain.Event) []dto.EventOutput {
	outputs := make([]dto.EventOutput, 0, len(events))
	for _, event := range events {
		outputs = append(outputs, dto.EventOutput{
			Seq:       event.Seq,
			Timestamp: event.Timestamp,
			EventType: string(event.Type),
			Category:  string(event.Category),
			Activity:  event.Activity,
			Context:   event.Context,
			RawInput:  event.RawInput,
		})
	}
	return outputs
}
