package out

import (
	"context"

	"tvp/internal/modules/daily/domain"
	dailyout "tvp/internal/modules/daily/port/out"
	eventlogin "tvp/internal/modules/eventlog/port/in"
)

type EventlogSource struct {
	eventlog eventlogin.Usecase
}

func NewEventlogSource(eventlog eventlogin.Usecase) *EventlogSource {
	return &EventlogSource{eventlog: eventlog}
}

var _ dailyout.EventSource = (*EventlogSource)(nil)

func (a *EventlogSource) ByDate(ctx context.Context, date string) ([]domain.NoteEvent, error) {
	events, err := a.eventlog.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	notes := make([]domain.NoteEvent, 0, len(events))
	for _, event := range events {
		notes = append(notes, domain.NoteEvent{
			Timestamp: event.Timestamp,
			Category:  event.Category,
			Activity:  event.Activity,
			Context:   event.Context,
			RawInput:  event.RawInput,
		})
	}
	return notes, nil
}

func (a *EventlogSource) Dates(ctx context.Context) ([]string, error) {
	return a.eventlog.ListDates(ctx)
}
