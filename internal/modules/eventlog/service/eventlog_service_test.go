package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tvp/internal/modules/eventlog/domain"
	apperrors "tvp/internal/platform/errors"
	"tvp/internal/platform/tx"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeEventStore struct {
	events    []domain.Event
	appendErr error
	listErr   error
}

func (f *fakeEventStore) Append(ctx context.Context, event domain.Event) (int64, error) {
	if f.appendErr != nil {
		return 0, f.appendErr
	}
	event.Seq = int64(len(f.events) + 1)
	f.events = append(f.events, event)
	return event.Seq, nil
}

func (f *fakeEventStore) ListStarts(ctx context.Context) ([]domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var starts []domain.Event
	for _, e := range f.events {
		if e.Type == domain.EventStart {
			starts = append(starts, e)
		}
	}
	return starts, nil
}

func (f *fakeEventStore) ListWindow(ctx context.Context, lookbackDays int) ([]domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventStore) ListGoals(ctx context.Context) ([]domain.Event, error) {
	var goals []domain.Event
	for _, e := range f.events {
		if e.Category == domain.CategoryGoal {
			goals = append(goals, e)
		}
	}
	return goals, nil
}

func (f *fakeEventStore) ListDoneOn(ctx context.Context, date string) ([]domain.Event, error) {
	return nil, nil
}

func (f *fakeEventStore) ListByDate(ctx context.Context, date string) ([]domain.Event, error) {
	return nil, nil
}

func (f *fakeEventStore) ListDates(ctx context.Context) ([]string, error) {
	return nil, nil
}

type fakeLogStore struct {
	lines     []string
	appendErr error
}

func (f *fakeLogStore) AppendLine(ctx context.Context, line string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.lines = append(f.lines, line)
	return nil
}

func (f *fakeLogStore) Lines(ctx context.Context) ([]string, error) {
	return f.lines, nil
}

func newService(store *fakeEventStore, log *fakeLogStore) *EventLogService {
	clk := &fakeClock{values: []time.Time{time.Date(2025, 1, 15, 9, 30, 0, 0, time.Local)}}
	return NewEventLogService(clk, tx.NoopManager{}, store, log)
}

func TestRecordWritesStoreAndMasterLog(t *testing.T) {
	t.Parallel()

	store := &fakeEventStore{}
	log := &fakeLogStore{}
	svc := newService(store, log)

	event, err := svc.Record(context.Background(), domain.Event{
		Type:     domain.EventStart,
		Category: domain.CategoryTheory,
		Activity: "music theory",
		RawInput: "start learning music theory",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if event.Seq != 1 {
		t.Fatalf("expected seq 1, got %d", event.Seq)
	}
	if event.Timestamp != "2025-01-15T09:30:00" {
		t.Fatalf("expected clock timestamp, got %q", event.Timestamp)
	}
	if len(log.lines) != 1 || log.lines[0] != "START THEORY MUSIC THEORY" {
		t.Fatalf("unexpected master log lines: %v", log.lines)
	}
}

func TestRecordRejectsEmptyActivity(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeEventStore{}, &fakeLogStore{})
	_, err := svc.Record(context.Background(), domain.Event{Type: domain.EventStart, Category: domain.CategoryTask, Activity: "   "})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestRecordRejectsUnknownEventType(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeEventStore{}, &fakeLogStore{})
	_, err := svc.Record(context.Background(), domain.Event{Type: domain.EventUnknown, Activity: "something"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestRecordPropagatesLogFailure(t *testing.T) {
	t.Parallel()

	store := &fakeEventStore{}
	log := &fakeLogStore{appendErr: errors.New("disk full")}
	svc := newService(store, log)

	_, err := svc.Record(context.Background(), domain.Event{Type: domain.EventNote, Activity: "an idea"})
	if err == nil {
		t.Fatal("expected error from log append")
	}
}

func TestReadsDegradeToEmptyOnStoreFailure(t *testing.T) {
	t.Parallel()

	store := &fakeEventStore{listErr: errors.New("locked")}
	svc := newService(store, &fakeLogStore{})

	if got := svc.Starts(context.Background()); got != nil {
		t.Fatalf("expected nil starts on failure, got %v", got)
	}
	if got := svc.Window(context.Background(), 7); got != nil {
		t.Fatalf("expected nil window on failure, got %v", got)
	}
}
