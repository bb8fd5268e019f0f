package normalize

import (
	"regexp"
	"strings"
)

// Key is the canonical form of an activity's text. Two renderings of the
// same task ("Report drafting", "report_drafting [category:: Task]") must
// collapse to the same Key so bridge and goal dedup can use map membership.
type Key string

var (
	bracketed   = regexp.MustCompile(`\[.*?\]`)
	nonAlphaNum = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
	listPrefix  = regexp.MustCompile(`^[-\s\[\]x]+`)
)

// Task canonicalizes free activity text: lower-case, bracketed metadata
// tokens removed, punctuation removed, whitespace collapsed.
func Task(text string) Key {
	s := strings.ToLower(strings.TrimSpace(text))
	s = bracketed.ReplaceAllString(s, " ")
	s = nonAlphaNum.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return Key(strings.TrimSpace(s))
}

// GoalLine canonicalizes a rendered "- [ ] item" board line so merges can
// tell whether a goal is already present.
func GoalLine(line string) Key {
	s := strings.ToLower(strings.TrimSpace(line))
	s = listPrefix.ReplaceAllString(s, "")
	s = nonAlphaNum.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return Key(strings.TrimSpace(s))
}

func (k Key) Empty() bool { return k == "" }
