package domain

import "testing"

func TestMapGoalEventsSections(t *testing.T) {
	t.Parallel()

	sections := MapGoalEvents([]GoalEvent{
		{Activity: "LEARN_MUSIC_THEORY", Context: "SHORT_TERM", RawInput: "add goal short term learn music theory"},
		{Activity: "SAVE_FOR_HOUSE", Context: "MEDIUM_TERM", RawInput: "add goal medium term save for house"},
		{Activity: "EARN_MORE", Context: "LONG_TERM", RawInput: ""},
		{Activity: "FIX_WEBSITE", Context: "COME_BACK_TO", RawInput: "add goal come back to fix website"},
		{Activity: "NO_CONTEXT_GOAL", Context: "", RawInput: ""},
	})

	if got := sections[SectionShortTerm]; len(got) != 2 || got[0] != "learn music theory" {
		t.Fatalf("short term %v", got)
	}
	if got := sections[SectionMediumTerm]; len(got) != 1 || got[0] != "save for house" {
		t.Fatalf("medium term %v", got)
	}
	if got := sections[SectionLongTerm]; len(got) != 1 || got[0] != "Earn More" {
		t.Fatalf("long term %v (activity fallback is title-cased)", got)
	}
	if got := sections[SectionComeBackTo]; len(got) != 1 || got[0] != "fix website" {
		t.Fatalf("come back to %v", got)
	}
}

func TestMapGoalEventsDedupesWithinSection(t *testing.T) {
	t.Parallel()

	sections := MapGoalEvents([]GoalEvent{
		{Activity: "LEARN_RUSSIAN", Context: "SHORT_TERM"},
		{Activity: "LEARN_RUSSIAN", Context: "SHORT_TERM"},
	})
	if got := sections[SectionShortTerm]; len(got) != 1 {
		t.Fatalf("short term %v, want deduped", got)
	}
}

func TestGoalDisplayTextCleansTriggers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw      string
		activity string
		want     string
	}{
		{"add goal short term learn japanese", "", "learn japanese"},
		{"set a new long-term goal earn 10k month", "", "a earn 10k month"},
		{"add goal come back to finish the market bot", "", "finish the market bot"},
		{"", "BUILD_SECURITY_FUND", "Build Security Fund"},
		{"", "", ""},
	}
	for _, tc := range cases {
		if got := GoalDisplayText(tc.activity, tc.raw); got != tc.want {
			t.Fatalf("(%q,%q): got %q, want %q", tc.activity, tc.raw, got, tc.want)
		}
	}
}

func TestGoalSectionFromContextDefaultsShortTerm(t *testing.T) {
	t.Parallel()

	if got := GoalSectionFromContext("SOMEDAY"); got != SectionShortTerm {
		t.Fatalf("got %q", got)
	}
	if got := GoalSectionFromContext(" medium_term "); got != SectionMediumTerm {
		t.Fatalf("got %q", got)
	}
}
