package out

import (
	"context"

	eventlogdto "tvp/internal/modules/eventlog/dto"
	eventlogin "tvp/internal/modules/eventlog/port/in"
	"tvp/internal/modules/kanban/domain"
	kanbanout "tvp/internal/modules/kanban/port/out"
)

// EventlogSource adapts the event log's inbound port to the board
// projections.
type EventlogSource struct {
	eventlog eventlogin.Usecase
}

func NewEventlogSource(eventlog eventlogin.Usecase) *EventlogSource {
	return &EventlogSource{eventlog: eventlog}
}

var _ kanbanout.EventSource = (*EventlogSource)(nil)

func (a *EventlogSource) Window(ctx context.Context, lookbackDays int) ([]domain.BridgeEvent, error) {
	events, err := a.eventlog.ListWindow(ctx, lookbackDays)
	if err != nil {
		return nil, err
	}
	return toBridgeEvents(events), nil
}

func (a *EventlogSource) Goals(ctx context.Context) ([]domain.GoalEvent, error) {
	events, err := a.eventlog.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	goals := make([]domain.GoalEvent, 0, len(events))
	for _, event := range events {
		goals = append(goals, domain.GoalEvent{
			Activity: event.Activity,
			Context:  event.Context,
			RawInput: event.RawInput,
		})
	}
	return goals, nil
}

func (a *EventlogSource) DoneToday(ctx context.Context) ([]domain.BridgeEvent, error) {
	events, err := a.eventlog.ListDoneToday(ctx)
	if err != nil {
		return nil, err
	}
	return toBridgeEvents(events), nil
}

func toBridgeEvents(events []eventlogdto.EventOutput) []domain.BridgeEvent {
	bridged := make([]domain.BridgeEvent, 0, len(events))
	for _, event := range events {
		bridged = append(bridged, domain.BridgeEvent{
			Timestamp: event.Timestamp,
			EventType: event.EventType,
			Category:  event.Category,
			Activity:  event.Activity,
			RawInput:  event.RawInput,
		})
	}
	return bridged
}
