package domain

import (
	"strings"
	"testing"
)

func TestRenderTaskBoardColumns(t *testing.T) {
	t.Parallel()

	board := RenderTaskBoard([]string{"finish report"}, []string{"laundry [category:: Task] [source:: Event]"}, nil)

	if !strings.HasPrefix(board, "---\nkanban-plugin: list\n---\n") {
		t.Fatalf("missing frontmatter:\n%s", board)
	}
	for _, header := range []string{"## Focus", "## Creative", "## Light", "## Recovery", "## Reflect", "## Backlog", "## Reconsider", "## Done Today", "## Admin"} {
		if !strings.Contains(board, header) {
			t.Fatalf("missing column %q", header)
		}
	}
	if strings.Contains(board, "## Now") {
		t.Fatal("bridge columns must be absent without a projection")
	}
	if !strings.Contains(board, "- [ ] finish report") {
		t.Fatal("backlog item missing")
	}
	if !strings.Contains(board, "- [x] laundry [category:: Task] [source:: Event]") {
		t.Fatal("done item must be checked")
	}
	if !strings.Contains(board, "%% kanban:settings") {
		t.Fatal("settings footer missing")
	}
}

func TestRenderTaskBoardEmptyColumnsGetPlaceholder(t *testing.T) {
	t.Parallel()

	board := RenderTaskBoard(nil, nil, nil)
	if !strings.Contains(board, "## Backlog\n- [ ]\n") {
		t.Fatalf("empty backlog needs placeholder:\n%s", board)
	}
	if !strings.Contains(board, "## Done Today\n- [x]\n") {
		t.Fatalf("empty done needs checked placeholder:\n%s", board)
	}
}

func TestRenderTaskBoardWithBridge(t *testing.T) {
	t.Parallel()

	bridge := &Bridge{
		Now:      []string{"pandas [category:: Theory] [source:: Event]"},
		Paused:   []string{},
		Captured: []string{"pandas [category:: Theory] [source:: Event]"},
		Next:     []string{"finish report [source:: Manual]"},
	}
	board := RenderTaskBoard(nil, nil, bridge)

	for _, header := range []string{"## Now", "## Paused", "## Captured from Reality", "## Next 3"} {
		if !strings.Contains(board, header) {
			t.Fatalf("missing bridge column %q", header)
		}
	}
	if !strings.Contains(board, "- [ ] pandas [category:: Theory] [source:: Event]") {
		t.Fatal("now item missing")
	}
	if strings.Index(board, "## Now") > strings.Index(board, "## Focus") {
		t.Fatal("bridge columns must precede manual columns")
	}
}

func TestMergeGoalsIdempotent(t *testing.T) {
	t.Parallel()

	goals := map[string][]string{
		SectionShortTerm: {"learn music theory"},
		SectionLongTerm:  {"earn 10k month"},
	}
	once := MergeGoals(GoalsBoardTemplate(), goals)
	twice := MergeGoals(once, goals)

	if once != twice {
		t.Fatalf("merge is not idempotent:\n--- once ---\n%s\n--- twice ---\n%s", once, twice)
	}
	if !strings.Contains(once, "- [ ] learn music theory") {
		t.Fatal("short term goal missing")
	}
	if !strings.Contains(once, "- [ ] earn 10k month") {
		t.Fatal("long term goal missing")
	}

	short := strings.Index(once, "## "+SectionShortTerm)
	medium := strings.Index(once, "## "+SectionMediumTerm)
	goalPos := strings.Index(once, "- [ ] learn music theory")
	if !(short < goalPos && goalPos < medium) {
		t.Fatal("goal must land inside its section")
	}
}

func TestMergeGoalsKeepsManualEntries(t *testing.T) {
	t.Parallel()

	board := GoalsBoardTemplate()
	board = MergeGoals(board, map[string][]string{SectionShortTerm: {"Learn Music Theory"}})

	// The same goal with different casing and punctuation dedups against
	// the existing line.
	merged := MergeGoals(board, map[string][]string{SectionShortTerm: {"learn music theory!"}})
	if strings.Count(merged, "learn music theory") > strings.Count(board, "learn music theory") {
		t.Fatalf("duplicate goal line appended:\n%s", merged)
	}
	if !strings.Contains(merged, "- [ ] Learn Music Theory") {
		t.Fatal("existing manual entry must survive")
	}
}

func TestParseBacklog(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"# TODO",
		"- [ ] finish report",
		"- [x] laundry",
		"  - [ X ] ship release",
		"* [ ] not a task line",
		"random prose",
		"- [ ]   ",
	}, "\n")

	backlog, done := ParseBacklog(content)
	if len(backlog) != 1 || backlog[0] != "finish report" {
		t.Fatalf("backlog %v", backlog)
	}
	if len(done) != 2 || done[0] != "laundry" || done[1] != "ship release" {
		t.Fatalf("done %v", done)
	}
}
