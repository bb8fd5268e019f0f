package domain

import (
	"regexp"
	"strings"
)

// GoalEvent is the slice of a GOAL event the goals board needs.
type GoalEvent struct {
	Activity string
	Context  string
	RawInput string
}

// Goal board sections in render order. Context values map onto them;
// anything unrecognized lands in Short term.
const (
	SectionShortTerm  = "Short term"
	SectionMediumTerm = "Medium Term"
	SectionLongTerm   = "Long Term"
	SectionComeBackTo = "Come back to"
)

var GoalSectionOrder = []string{SectionShortTerm, SectionMediumTerm, SectionLongTerm, SectionComeBackTo}

var (
	goalTriggerRe  = regexp.MustCompile(`(?i)\b(add|set|create|new)\b`)
	goalWordRe     = regexp.MustCompile(`(?i)\b(goal|goals)\b`)
	goalHorizonRe  = regexp.MustCompile(`(?i)\b(short|medium|long)\s*-?\s*term\b`)
	goalComeBackRe = regexp.MustCompile(`(?i)\bcome\s+back\s+to\b`)
	spacesRe       = regexp.MustCompile(`\s+`)
)

// MapGoalEvents buckets goal events into board sections, deduping repeated
// display text within a section.
func MapGoalEvents(events []GoalEvent) map[string][]string {
	sections := make(map[string][]string, len(GoalSectionOrder))
	for _, section := range GoalSectionOrder {
		sections[section] = []string{}
	}
	for _, event := range events {
		text := GoalDisplayText(event.Activity, event.RawInput)
		if text == "" {
			continue
		}
		section := GoalSectionFromContext(event.Context)
		if contains(sections[section], text) {
			continue
		}
		sections[section] = append(sections[section], text)
	}
	return sections
}

func GoalSectionFromContext(context string) string {
	switch strings.ToUpper(strings.TrimSpace(context)) {
	case "MEDIUM_TERM":
		return SectionMediumTerm
	case "LONG_TERM":
		return SectionLongTerm
	case "COME_BACK_TO":
		return SectionComeBackTo
	default:
		return SectionShortTerm
	}
}

// GoalDisplayText prefers the raw input with trigger words and horizon
// hints removed; it falls back to a title-cased activity slug.
func GoalDisplayText(activity, rawInput string) string {
	if rawInput != "" {
		cleaned := rawInput
		cleaned = goalTriggerRe.ReplaceAllString(cleaned, "")
		cleaned = goalWordRe.ReplaceAllString(cleaned, "")
		cleaned = goalHorizonRe.ReplaceAllString(cleaned, "")
		cleaned = goalComeBackRe.ReplaceAllString(cleaned, "")
		cleaned = strings.Trim(spacesRe.ReplaceAllString(cleaned, " "), " -")
		if cleaned != "" {
			return cleaned
		}
	}
	if activity != "" {
		return titleWords(strings.ReplaceAll(activity, "_", " "))
	}
	return ""
}

func displayActivity(activity string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(activity, "_", " ")))
}

func titleWord(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

func titleWords(text string) string {
	fields := strings.Fields(text)
	for i, field := range fields {
		fields[i] = titleWord(field)
	}
	return strings.Join(fields, " ")
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
