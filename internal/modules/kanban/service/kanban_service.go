package service

import (
	"context"
	"fmt"
	"strings"

	"tvp/internal/modules/kanban/domain"
	kanbanout "tvp/internal/modules/kanban/port/out"
)

const (
	guideTaskBoard  = "Guide - Kanban.md"
	guideGoalsBoard = "Guide - Kanban Goals.md"
)

var (
	taskBoardCandidates  = []string{"Kanban.md", "Task Board.md"}
	goalsBoardCandidates = []string{"Kanban Goals.md", "Goals Board.md"}
)

type KanbanService struct {
	events       kanbanout.EventSource
	backlog      kanbanout.BacklogStore
	boards       kanbanout.BoardStore
	lookbackDays int
}

func NewKanbanService(events kanbanout.EventSource, backlog kanbanout.BacklogStore, boards kanbanout.BoardStore, lookbackDays int) *KanbanService {
	if lookbackDays <= 0 {
		lookbackDays = 7
	}
	return &KanbanService{events: events, backlog: backlog, boards: boards, lookbackDays: lookbackDays}
}

// SyncBoards regenerates the task board and merges goal events into the
// goals board. Guide mode writes to separate guide files and includes the
// bridge columns; prod mode rewrites the main boards without them.
func (s *KanbanService) SyncBoards(ctx context.Context, mode string) ([]string, error) {
	resolved := strings.ToLower(strings.TrimSpace(mode))
	if resolved == "" {
		resolved = "prod"
	}
	guide := resolved == "guide"
	taskBoard, goalsBoard := s.resolveBoardNames(guide)

	backlog, done := s.backlogItems(ctx)
	for _, line := range s.doneTodayLines(ctx) {
		if !containsString(done, line) {
			done = append(done, line)
		}
	}

	var bridge *domain.Bridge
	if guide {
		b := s.Bridge(ctx)
		bridge = &b
	}

	var updated []string
	taskPath, err := s.boards.Write(ctx, taskBoard, domain.RenderTaskBoard(backlog, done, bridge))
	if err != nil {
		return nil, fmt.Errorf("write task board: %w", err)
	}
	updated = append(updated, taskPath)

	goals := s.GoalSections(ctx)
	if !s.boards.Exists(goalsBoard) {
		if _, err := s.boards.Write(ctx, goalsBoard, domain.GoalsBoardTemplate()); err != nil {
			return nil, fmt.Errorf("seed goals board: %w", err)
		}
	}
	content, err := s.boards.Read(ctx, goalsBoard)
	if err != nil {
		return nil, fmt.Errorf("read goals board: %w", err)
	}
	goalsPath, err := s.boards.Write(ctx, goalsBoard, domain.MergeGoals(content, goals))
	if err != nil {
		return nil, fmt.Errorf("write goals board: %w", err)
	}
	updated = append(updated, goalsPath)

	return updated, nil
}

// Bridge builds the intent/reality projection over the recent event
// window. An unreadable window degrades to an empty projection.
func (s *KanbanService) Bridge(ctx context.Context) domain.Bridge {
	backlog, _ := s.backlogItems(ctx)
	events, err := s.events.Window(ctx, s.lookbackDays)
	if err != nil {
		return domain.Bridge{Now: []string{}, Paused: []string{}, Captured: []string{}, Next: []string{}}
	}
	return domain.BuildBridge(events, backlog)
}

func (s *KanbanService) GoalSections(ctx context.Context) map[string][]string {
	events, err := s.events.Goals(ctx)
	if err != nil {
		return domain.MapGoalEvents(nil)
	}
	return domain.MapGoalEvents(events)
}

func (s *KanbanService) resolveBoardNames(guide bool) (taskBoard, goalsBoard string) {
	if guide {
		return guideTaskBoard, guideGoalsBoard
	}
	taskBoard = pickExisting(s.boards, taskBoardCandidates)
	goalsBoard = pickExisting(s.boards, goalsBoardCandidates)
	return taskBoard, goalsBoard
}

// pickExisting prefers a board file that already exists so a manually
// renamed board keeps receiving updates; new vaults get the last candidate.
func pickExisting(boards kanbanout.BoardStore, candidates []string) string {
	for _, name := range candidates {
		if boards.Exists(name) {
			return name
		}
	}
	return candidates[len(candidates)-1]
}

func (s *KanbanService) backlogItems(ctx context.Context) (backlog, done []string) {
	backlog, done, err := s.backlog.Items(ctx)
	if err != nil {
		return nil, nil
	}
	return backlog, done
}

func (s *KanbanService) doneTodayLines(ctx context.Context) []string {
	events, err := s.events.DoneToday(ctx)
	if err != nil {
		return nil
	}
	var lines []string
	for _, event := range events {
		if event.Activity == "" {
			continue
		}
		lines = append(lines, domain.DoneLine(event.Activity, event.Category))
	}
	return lines
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
