package service

import (
	"context"
	"strings"
	"testing"

	"tvp/internal/modules/kanban/domain"
)

type fakeEventSource struct {
	window []domain.BridgeEvent
	goals  []domain.GoalEvent
	done   []domain.BridgeEvent
}

func (f *fakeEventSource) Window(ctx context.Context, lookbackDays int) ([]domain.BridgeEvent, error) {
	return f.window, nil
}

func (f *fakeEventSource) Goals(ctx context.Context) ([]domain.GoalEvent, error) {
	return f.goals, nil
}

func (f *fakeEventSource) DoneToday(ctx context.Context) ([]domain.BridgeEvent, error) {
	return f.done, nil
}

type fakeBacklogStore struct {
	backlog []string
	done    []string
}

func (f *fakeBacklogStore) Items(ctx context.Context) ([]string, []string, error) {
	return f.backlog, f.done, nil
}

type memBoardStore struct {
	boards map[string]string
}

func newMemBoardStore() *memBoardStore {
	return &memBoardStore{boards: make(map[string]string)}
}

func (m *memBoardStore) Exists(name string) bool {
	_, ok := m.boards[name]
	return ok
}

func (m *memBoardStore) Read(ctx context.Context, name string) (string, error) {
	return m.boards[name], nil
}

func (m *memBoardStore) Write(ctx context.Context, name, content string) (string, error) {
	m.boards[name] = content
	return "/vault/Kanban/" + name, nil
}

func TestSyncBoardsProdWritesDefaultBoards(t *testing.T) {
	t.Parallel()

	boards := newMemBoardStore()
	svc := NewKanbanService(
		&fakeEventSource{done: []domain.BridgeEvent{{EventType: "done", Category: "TASK", Activity: "LAUNDRY"}}},
		&fakeBacklogStore{backlog: []string{"finish report"}},
		boards,
		7,
	)

	updated, err := svc.SyncBoards(context.Background(), "")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(updated) != 2 {
		t.Fatalf("updated %v", updated)
	}
	task := boards.boards["Task Board.md"]
	if task == "" {
		t.Fatal("task board not written")
	}
	if strings.Contains(task, "## Now") {
		t.Fatal("prod board must not carry bridge columns")
	}
	if !strings.Contains(task, "- [x] laundry [category:: Task] [source:: Event]") {
		t.Fatalf("done-today event missing:\n%s", task)
	}
	if _, ok := boards.boards["Goals Board.md"]; !ok {
		t.Fatal("goals board not seeded")
	}
}

func TestSyncBoardsPrefersExistingBoardNames(t *testing.T) {
	t.Parallel()

	boards := newMemBoardStore()
	boards.boards["Kanban.md"] = "old"
	boards.boards["Kanban Goals.md"] = domain.GoalsBoardTemplate()
	svc := NewKanbanService(&fakeEventSource{}, &fakeBacklogStore{}, boards, 7)

	if _, err := svc.SyncBoards(context.Background(), "prod"); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if boards.boards["Kanban.md"] == "old" {
		t.Fatal("existing Kanban.md should have been rewritten")
	}
	if _, ok := boards.boards["Task Board.md"]; ok {
		t.Fatal("fallback name must not be used when Kanban.md exists")
	}
}

func TestSyncBoardsGuideModeIncludesBridge(t *testing.T) {
	t.Parallel()

	boards := newMemBoardStore()
	svc := NewKanbanService(
		&fakeEventSource{window: []domain.BridgeEvent{
			{EventType: "start", Category: "THEORY", Activity: "PANDAS"},
		}},
		&fakeBacklogStore{backlog: []string{"finish report"}},
		boards,
		7,
	)

	if _, err := svc.SyncBoards(context.Background(), "guide"); err != nil {
		t.Fatalf("sync: %v", err)
	}
	guide := boards.boards["Guide - Kanban.md"]
	if guide == "" {
		t.Fatal("guide board not written")
	}
	if !strings.Contains(guide, "## Now") || !strings.Contains(guide, "## Next 3") {
		t.Fatalf("guide board missing bridge columns:\n%s", guide)
	}
	if !strings.Contains(guide, "- [ ] pandas [category:: Theory] [source:: Event]") {
		t.Fatalf("bridge now item missing:\n%s", guide)
	}
	if _, ok := boards.boards["Guide - Kanban Goals.md"]; !ok {
		t.Fatal("guide goals board not written")
	}
}

func TestSyncBoardsGoalMergeIdempotentAcrossRuns(t *testing.T) {
	t.Parallel()

	boards := newMemBoardStore()
	svc := NewKanbanService(
		&fakeEventSource{goals: []domain.GoalEvent{
			{Activity: "LEARN_MUSIC_THEORY", Context: "SHORT_TERM", RawInput: "add goal short term learn music theory"},
		}},
		&fakeBacklogStore{},
		boards,
		7,
	)

	if _, err := svc.SyncBoards(context.Background(), "prod"); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	first := boards.boards["Goals Board.md"]
	if _, err := svc.SyncBoards(context.Background(), "prod"); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	second := boards.boards["Goals Board.md"]
	if first != second {
		t.Fatalf("goal merge not idempotent:\n--- first ---\n%s\n--- second ---\n%s", first, second)
	}
	if strings.Count(second, "learn music theory") != 1 {
		t.Fatalf("goal duplicated:\n%s", second)
	}
}
