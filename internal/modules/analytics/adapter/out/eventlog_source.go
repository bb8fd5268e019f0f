package out

import (
	"context"

	"tvp/internal/modules/analytics/domain"
	analyticsout "tvp/internal/modules/analytics/port/out"
	eventlogin "tvp/internal/modules/eventlog/port/in"
)

// EventlogSource adapts the event log's inbound port to the analytics
// event source.
type EventlogSource struct {
	eventlog eventlogin.Usecase
}

func NewEventlogSource(eventlog eventlogin.Usecase) *EventlogSource {
	return &EventlogSource{eventlog: eventlog}
}

var _ analyticsout.EventSource = (*EventlogSource)(nil)

func (a *EventlogSource) Starts(ctx context.Context) ([]domain.StartEvent, error) {
	events, err := a.eventlog.ListStarts(ctx)
	if err != nil {
		return nil, err
	}
	starts := make([]domain.StartEvent, 0, len(events))
	for _, event := range events {
		starts = append(starts, domain.StartEvent{
			Timestamp: event.Timestamp,
			Category:  event.Category,
			Activity:  event.Activity,
		})
	}
	return starts, nil
}

func (a *EventlogSource) MasterLines(ctx context.Context) ([]string, error) {
	return a.eventlog.MasterLines(ctx)
}
