package slug

import (
	"regexp"
	"strings"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases input into a dash-separated slug for note filenames.
func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}

// Activity renders a phrase as the upper-snake activity slug carried by
// events ("learn music theory" -> "LEARN_MUSIC_THEORY").
func Activity(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = regexp.MustCompile(`[^a-z0-9\s_-]`).ReplaceAllString(s, "")
	s = regexp.MustCompile(`\s+`).ReplaceAllString(strings.TrimSpace(s), "_")
	return strings.ToUpper(s)
}

// Display reverses Activity for human-facing text ("LEARN_MUSIC_THEORY" ->
// "learn music theory").
func Display(activity string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(activity, "_", " ")))
}

// Title renders an activity slug in title case for goal fallback text.
func Title(activity string) string {
	words := strings.Fields(Display(activity))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
