package in

import (
	"context"

	eventlogdto "tvp/internal/modules/eventlog/dto"
	eventlogin "tvp/internal/modules/eventlog/port/in"
)

type CLIHandler struct {
	usecase eventlogin.Usecase
}

func NewCLIHandler(usecase eventlogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Record(ctx context.Context, eventType, category, activity, eventContext, raw string) (eventlogdto.RecordOutput, error) {
	return h.usecase.Record(ctx, eventlogdto.RecordInput{
		EventType: eventType,
		Category:  category,
		Activity:  activity,
		Context:   eventContext,
		RawInput:  raw,
	})
}

func (h CLIHandler) ListWindow(ctx context.Context, lookbackDays int) ([]eventlogdto.EventOutput, error) {
	return h.usecase.ListWindow(ctx, lookbackDays)
}

func (h CLIHandler) ListByDate(ctx context.Context, date string) ([]eventlogdto.EventOutput, error) {
	return h.usecase.ListByDate(ctx, date)
}
