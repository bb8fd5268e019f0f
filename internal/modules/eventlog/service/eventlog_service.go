package service

import (
	"context"
	"fmt"
	"strings"

	"tvp/internal/modules/eventlog/domain"
	eventlogout "tvp/internal/modules/eventlog/port/out"
	"tvp/internal/platform/clock"
	apperrors "tvp/internal/platform/errors"
	"tvp/internal/platform/tx"
)

type EventLogService struct {
	clock clock.Clock
	tx    tx.Manager
	store eventlogout.EventStore
	log   eventlogout.LogStore
}

func NewEventLogService(clk clock.Clock, txm tx.Manager, store eventlogout.EventStore, log eventlogout.LogStore) *EventLogService {
	return &EventLogService{clock: clk, tx: txm, store: store, log: log}
}

// Record appends the event to the sqlite projection and mirrors its
// canonical line to master.log. Events are immutable once recorded.
func (s *EventLogService) Record(ctx context.Context, event domain.Event) (domain.Event, error) {
	if strings.TrimSpace(event.Activity) == "" {
		return domain.Event{}, fmt.Errorf("%w: activity is required", apperrors.ErrInvalidInput)
	}
	if event.Type == domain.EventUnknown {
		return domain.Event{}, fmt.Errorf("%w: unknown event type", apperrors.ErrInvalidInput)
	}
	if event.Timestamp == "" {
		event.Timestamp = s.clock.Now().Format("2006-01-02T15:04:05")
	}
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		seq, err := s.store.Append(ctx, event)
		if err != nil {
			return fmt.Errorf("append event: %w", err)
		}
		event.Seq = seq
		if err := s.log.AppendLine(ctx, event.CanonicalLine()); err != nil {
			return fmt.Errorf("append master log line: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

// Starts returns the ordered start events. An unreadable store degrades to
// an empty slice; analytics treat "no data" as a valid result, not a fault.
func (s *EventLogService) Starts(ctx context.Context) []domain.Event {
	events, err := s.store.ListStarts(ctx)
	if err != nil {
		return nil
	}
	return events
}

func (s *EventLogService) Window(ctx context.Context, lookbackDays int) []domain.Event {
	events, err := s.store.ListWindow(ctx, lookbackDays)
	if err != nil {
		return nil
	}
	return events
}

func (s *EventLogService) Goals(ctx context.Context) []domain.Event {
	events, err := s.store.ListGoals(ctx)
	if err != nil {
		return nil
	}
	return events
}

func (s *EventLogService) DoneOn(ctx context.Context, date string) []domain.Event {
	events, err := s.store.ListDoneOn(ctx, date)
	if err != nil {
		return nil
	}
	return events
}

func (s *EventLogService) ByDate(ctx context.Context, date string) []domain.Event {
	events, err := s.store.ListByDate(ctx, date)
	if err != nil {
		return nil
	}
	return events
}

func (s *EventLogService) Dates(ctx context.Context) []string {
	dates, err := s.store.ListDates(ctx)
	if err != nil {
		return nil
	}
	return dates
}

// MasterLines reads the flat log for fallback derivation. A missing log is
// an empty history, not an error.
func (s *EventLogService) MasterLines(ctx context.Context) []string {
	lines, err := s.log.Lines(ctx)
	if err != nil {
		return nil
	}
	return lines
}

func (s *EventLogService) Today() string {
	return s.clock.Now().Format("2006-01-02")
}
