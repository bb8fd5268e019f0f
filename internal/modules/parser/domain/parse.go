package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	ActionStart = "start"
	ActionDone  = "done"
	ActionNote  = "note"
)

const ClarificationGoalText = "Please include your goal text. Example: add goal short term learn japanese"

// Suggestion is advisory. The parser never records; the caller decides
// whether to turn a suggestion into an event.
type Suggestion struct {
	Action               string
	Category             string
	Activity             string
	Context              string
	RawInput             string
	Confidence           float64
	Method               string
	NeedsClarification   bool
	ClarificationMessage string
	FormattedEvent       string
}

var (
	tokenCleanRe   = regexp.MustCompile(`[^\w\s-]`)
	gameTokenRe    = regexp.MustCompile(`[^a-z0-9_-]`)
	quotedRe       = regexp.MustCompile(`"([^"]+)"`)
	goalTriggerRe  = regexp.MustCompile(`\b(add|set|create|new)\b`)
	goalWordRe     = regexp.MustCompile(`\b(goal|goals)\b`)
	goalHorizonRe  = regexp.MustCompile(`\b(short|medium|long)\b`)
	goalTermRe     = regexp.MustCompile(`\bterm\b`)
	goalComeBackRe = regexp.MustCompile(`\b(come\s+back\s+to|comeback|come-back)\b`)
	goalSlugRe     = regexp.MustCompile(`[^a-z0-9\s_-]`)
	spacesRe       = regexp.MustCompile(`\s+`)
)

// Parse turns free text into a structured event suggestion using the rule
// tables. Matching is case-insensitive; cues match as substrings.
func Parse(input string) Suggestion {
	lowered := strings.ToLower(input)

	action := ActionStart
	for _, group := range []struct {
		action string
		cues   []string
	}{
		{ActionStart, startCues},
		{ActionDone, doneCues},
		{ActionNote, noteCues},
	} {
		if containsAny(lowered, group.cues) {
			action = group.action
			break
		}
	}

	category := ""
	if strings.Contains(lowered, "goal") {
		category = "GOAL"
	} else if isGameIntent(lowered) {
		category = "GAME"
	}
	if category == "" {
		switch {
		case containsAny(lowered, theoryCues):
			category = "THEORY"
		case containsAny(lowered, practiceCues):
			category = "PRACTICE"
		case containsAny(lowered, taskCues):
			category = "TASK"
		case containsAnySet(lowered, gameCues) || containsAnySet(lowered, gameNames):
			category = "GAME"
		}
	}

	var (
		activity       string
		goalHorizon    string
		hasGoalPayload = true
	)
	if category == "GOAL" {
		activity, goalHorizon, hasGoalPayload = extractGoalPayload(input)
	} else {
		activity = extractActivity(input, category)
	}
	activity = strings.TrimSpace(tokenCleanRe.ReplaceAllString(activity, ""))

	context := ""
	if m := quotedRe.FindStringSubmatch(input); m != nil {
		context = m[1]
	}
	if goalHorizon != "" && context == "" {
		context = goalHorizon
	}

	if category == "GOAL" && !hasGoalPayload {
		return Suggestion{
			Action:               action,
			Category:             "GOAL",
			Activity:             "",
			Context:              goalHorizon,
			RawInput:             input,
			Confidence:           0,
			Method:               "rule_based",
			NeedsClarification:   true,
			ClarificationMessage: ClarificationGoalText,
		}
	}

	if category == "" {
		category = "TASK"
	}
	s := Suggestion{
		Action:     action,
		Category:   category,
		Activity:   strings.ToUpper(activity),
		Context:    context,
		RawInput:   input,
		Confidence: 0.7,
		Method:     "rule_based",
	}
	s.FormattedEvent = formatEvent(s)
	return s
}

func formatEvent(s Suggestion) string {
	switch strings.ToUpper(s.Action) {
	case "NOTE":
		return fmt.Sprintf("NOTE %s", s.Activity)
	case "DONE":
		return fmt.Sprintf("DONE %s %s", s.Category, s.Activity)
	default:
		return fmt.Sprintf("START %s %s", s.Category, s.Activity)
	}
}

func containsAny(lowered string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(lowered, cue) {
			return true
		}
	}
	return false
}

func containsAnySet(lowered string, cues map[string]struct{}) bool {
	for cue := range cues {
		if strings.Contains(lowered, cue) {
			return true
		}
	}
	return false
}

// isGameIntent recognizes gaming from explicit cues or bare game names.
// Known category vocabulary blocks the bare-name path, so "learning rust"
// stays THEORY while "rust session" is a game.
func isGameIntent(lowered string) bool {
	words := make(map[string]struct{})
	for _, token := range strings.Fields(lowered) {
		words[gameTokenRe.ReplaceAllString(token, "")] = struct{}{}
	}
	if intersects(words, gameCues) {
		return true
	}
	for _, group := range [][]string{theoryCues, practiceCues, taskCues} {
		for _, w := range group {
			if _, ok := words[w]; ok {
				return false
			}
		}
	}
	if intersects(words, gameNames) {
		return true
	}
	return containsAnySet(lowered, gameCues)
}

func intersects(words, set map[string]struct{}) bool {
	for w := range set {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

// extractActivity finds the main subject of the input, trying the most
// specific heuristics first.
func extractActivity(input, category string) string {
	lowered := strings.ToLower(input)
	words := strings.Fields(input)
	if len(words) == 0 {
		return "unknown"
	}

	// Named games win outright.
	for _, word := range words {
		clean := strings.ToLower(strings.TrimSpace(tokenCleanRe.ReplaceAllString(word, "")))
		if _, ok := gameNames[clean]; ok {
			return word
		}
	}

	// "session for rust": the subject follows "for".
	if idx := strings.Index(lowered, " for "); idx >= 0 {
		after := strings.Fields(lowered[idx+len(" for "):])
		if len(after) > 0 {
			clean := strings.TrimSpace(tokenCleanRe.ReplaceAllString(after[0], ""))
			if clean != "" && !isSkipWord(clean) {
				return clean
			}
		}
	}

	// "database refactor": a subject word followed by a process noun.
	for i := 0; i+1 < len(words); i++ {
		first := strings.ToLower(strings.TrimSpace(tokenCleanRe.ReplaceAllString(words[i], "")))
		second := strings.ToLower(strings.TrimSpace(tokenCleanRe.ReplaceAllString(words[i+1], "")))
		if !isSkipWord(first) {
			if _, ok := compoundTails[second]; ok {
				return words[i+1]
			}
		}
	}

	// "pandas theory": the word just before the category cue.
	if category != "" {
		catLower := strings.ToLower(category)
		for i, word := range words {
			if strings.Contains(strings.ToLower(word), catLower) && i > 0 {
				clean := strings.TrimSpace(tokenCleanRe.ReplaceAllString(words[i-1], ""))
				if clean != "" && !isSkipWord(strings.ToLower(clean)) {
					return clean
				}
			}
		}
	}

	// First significant word that is not itself a category name.
	for _, word := range words {
		clean := strings.TrimSpace(tokenCleanRe.ReplaceAllString(word, ""))
		cleanLower := strings.ToLower(clean)
		if clean == "" || isSkipWord(cleanLower) {
			continue
		}
		switch cleanLower {
		case "theory", "practice", "game", "task":
			continue
		}
		return clean
	}

	for _, word := range words {
		clean := strings.TrimSpace(tokenCleanRe.ReplaceAllString(word, ""))
		if clean != "" && !isSkipWord(strings.ToLower(clean)) {
			return clean
		}
	}

	for i := len(words) - 1; i >= 0; i-- {
		clean := strings.TrimSpace(tokenCleanRe.ReplaceAllString(words[i], ""))
		if clean != "" {
			return clean
		}
	}
	return "unknown"
}

var horizonPatterns = []struct {
	value    string
	patterns []string
}{
	{"SHORT_TERM", []string{"short term", "short-term", "short"}},
	{"MEDIUM_TERM", []string{"medium term", "medium-term", "medium"}},
	{"LONG_TERM", []string{"long term", "long-term", "long"}},
	{"COME_BACK_TO", []string{"come back to", "come-back", "comeback"}},
}

// extractGoalPayload strips trigger words and horizon hints from goal text
// and returns the remaining phrase as an upper-snake slug.
func extractGoalPayload(input string) (slug, horizon string, hasPayload bool) {
	lowered := strings.ToLower(input)

	for _, h := range horizonPatterns {
		if containsAny(lowered, h.patterns) {
			horizon = h.value
			break
		}
	}

	cleaned := lowered
	cleaned = goalTriggerRe.ReplaceAllString(cleaned, " ")
	cleaned = goalWordRe.ReplaceAllString(cleaned, " ")
	cleaned = goalHorizonRe.ReplaceAllString(cleaned, " ")
	cleaned = goalTermRe.ReplaceAllString(cleaned, " ")
	cleaned = goalComeBackRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(spacesRe.ReplaceAllString(cleaned, " "))

	if cleaned == "" {
		return "", horizon, false
	}
	slug = goalSlugRe.ReplaceAllString(cleaned, "")
	slug = strings.ReplaceAll(slug, " ", "_")
	return strings.ToUpper(slug), horizon, true
}
