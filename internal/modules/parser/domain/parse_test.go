package domain

import "testing"

func TestParseClassifiesCommonPhrases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input     string
		action    string
		category  string
		activity  string
		formatted string
	}{
		{"Started working on pandas theory", "start", "THEORY", "PANDAS", "START THEORY PANDAS"},
		{"Done with the database refactor", "done", "TASK", "REFACTOR", "DONE TASK REFACTOR"},
		{"Beginning practice session for rust", "start", "PRACTICE", "RUST", "START PRACTICE RUST"},
		{"playing valorant", "start", "GAME", "VALORANT", "START GAME VALORANT"},
		{"finished my workout", "done", "TASK", "WORKOUT", "DONE TASK WORKOUT"},
	}
	for _, tc := range cases {
		got := Parse(tc.input)
		if got.Action != tc.action {
			t.Fatalf("%q: action %q, want %q", tc.input, got.Action, tc.action)
		}
		if got.Category != tc.category {
			t.Fatalf("%q: category %q, want %q", tc.input, got.Category, tc.category)
		}
		if got.Activity != tc.activity {
			t.Fatalf("%q: activity %q, want %q", tc.input, got.Activity, tc.activity)
		}
		if got.FormattedEvent != tc.formatted {
			t.Fatalf("%q: formatted %q, want %q", tc.input, got.FormattedEvent, tc.formatted)
		}
	}
}

func TestParseNoteKeepsSubject(t *testing.T) {
	t.Parallel()

	got := Parse("Note: pytorch data loaders are tricky")
	if got.Action != "note" {
		t.Fatalf("action %q", got.Action)
	}
	if got.Activity != "PYTORCH" {
		t.Fatalf("activity %q", got.Activity)
	}
	if got.FormattedEvent != "NOTE PYTORCH" {
		t.Fatalf("formatted %q", got.FormattedEvent)
	}
}

func TestParseGameNameWithoutCue(t *testing.T) {
	t.Parallel()

	got := Parse("minecraft session")
	if got.Category != "GAME" {
		t.Fatalf("category %q", got.Category)
	}
	if got.Activity != "MINECRAFT" {
		t.Fatalf("activity %q", got.Activity)
	}
}

func TestParseRustIsTheoryWhenLearning(t *testing.T) {
	t.Parallel()

	got := Parse("learning rust")
	if got.Category != "THEORY" {
		t.Fatalf("category %q, want THEORY", got.Category)
	}
	if got.Activity != "RUST" {
		t.Fatalf("activity %q", got.Activity)
	}
}

func TestParseGoalWithHorizon(t *testing.T) {
	t.Parallel()

	got := Parse("add goal short term learn music theory")
	if got.Category != "GOAL" {
		t.Fatalf("category %q", got.Category)
	}
	if got.Activity != "LEARN_MUSIC_THEORY" {
		t.Fatalf("activity %q", got.Activity)
	}
	if got.Context != "SHORT_TERM" {
		t.Fatalf("context %q", got.Context)
	}
	if got.NeedsClarification {
		t.Fatal("goal with payload should not need clarification")
	}
	if got.FormattedEvent != "START GOAL LEARN_MUSIC_THEORY" {
		t.Fatalf("formatted %q", got.FormattedEvent)
	}
}

func TestParseGoalComeBackToHorizon(t *testing.T) {
	t.Parallel()

	got := Parse("add goal come back to blender donut tutorial")
	if got.Context != "COME_BACK_TO" {
		t.Fatalf("context %q", got.Context)
	}
	if got.Activity != "BLENDER_DONUT_TUTORIAL" {
		t.Fatalf("activity %q", got.Activity)
	}
}

func TestParseGoalWithoutPayloadNeedsClarification(t *testing.T) {
	t.Parallel()

	got := Parse("add goal short term")
	if !got.NeedsClarification {
		t.Fatal("expected clarification")
	}
	if got.ClarificationMessage != ClarificationGoalText {
		t.Fatalf("message %q", got.ClarificationMessage)
	}
	if got.Activity != "" {
		t.Fatalf("activity %q, want empty", got.Activity)
	}
	if got.Context != "SHORT_TERM" {
		t.Fatalf("context %q", got.Context)
	}
	if got.FormattedEvent != "" {
		t.Fatalf("formatted %q, want empty", got.FormattedEvent)
	}
}

func TestParseQuotedContext(t *testing.T) {
	t.Parallel()

	got := Parse(`start coding "fix the flaky importer test"`)
	if got.Context != "fix the flaky importer test" {
		t.Fatalf("context %q", got.Context)
	}
	if got.Category != "PRACTICE" {
		t.Fatalf("category %q", got.Category)
	}
}

func TestParseDefaultsToStartTask(t *testing.T) {
	t.Parallel()

	got := Parse("laundry")
	if got.Action != "start" || got.Category != "TASK" {
		t.Fatalf("got %q %q", got.Action, got.Category)
	}
	if got.Activity != "LAUNDRY" {
		t.Fatalf("activity %q", got.Activity)
	}
}
