package domain

import (
	"fmt"
	"regexp"
	"strings"

	"tvp/internal/platform/normalize"
)

var taskLineRe = regexp.MustCompile(`(?i)^\s*-\s*\[(\s*x\s*|\s*)\]\s*(.+)$`)

// ParseBacklog splits a TODO file into unchecked (backlog) and checked
// (done) task texts.
func ParseBacklog(content string) (backlog, done []string) {
	for _, line := range strings.Split(content, "\n") {
		m := taskLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}
		if strings.ToLower(strings.TrimSpace(m[1])) == "x" {
			done = append(done, text)
		} else {
			backlog = append(backlog, text)
		}
	}
	return backlog, done
}

// DoneLine formats a completed event for the Done Today column.
func DoneLine(activity, category string) string {
	if category == "" {
		category = "TASK"
	}
	return fmt.Sprintf("%s [category:: %s] [source:: Event]", strings.ToLower(activity), titleWord(category))
}

// RenderTaskBoard produces the task board markdown. Bridge columns are
// prepended when a projection is supplied; the manual columns always
// follow. Empty columns render a single unchecked placeholder.
func RenderTaskBoard(backlog, done []string, bridge *Bridge) string {
	lines := []string{"---", "kanban-plugin: list", "---", ""}

	if bridge != nil {
		lines = append(lines, "## Now")
		lines = append(lines, taskLines(bridge.Now, false)...)
		lines = append(lines, "", "## Paused")
		lines = append(lines, taskLines(bridge.Paused, false)...)
		lines = append(lines, "", "## Captured from Reality")
		lines = append(lines, taskLines(bridge.Captured, false)...)
		lines = append(lines, "", "## Next 3")
		lines = append(lines, taskLines(bridge.Next, false)...)
		lines = append(lines, "")
	}

	lines = append(lines,
		"## Focus", "", "",
		"## Creative", "", "",
		"## Light", "", "",
		"## Recovery", "", "",
		"## Reflect", "", "",
		"## Backlog",
	)
	lines = append(lines, taskLines(backlog, false)...)
	lines = append(lines, "", "## Reconsider", "- [ ]", "", "## Done Today")
	lines = append(lines, taskLines(done, true)...)
	lines = append(lines,
		"",
		"## Admin",
		"- [ ]",
		"",
		"",
		"%% kanban:settings",
		"```",
		`{"kanban-plugin":"list","list-collapse":[false,null,false,false,false,false]}`,
		"```",
		"%%",
		"",
	)
	return strings.Join(lines, "\n")
}

func taskLines(items []string, checked bool) []string {
	mark := " "
	if checked {
		mark = "x"
	}
	if len(items) == 0 {
		return []string{fmt.Sprintf("- [%s]", mark)}
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- [%s] %s", mark, item))
	}
	return lines
}

// GoalsBoardTemplate is the starting goals board: empty horizon sections
// that merges fill in over time.
func GoalsBoardTemplate() string {
	var b strings.Builder
	b.WriteString("---\nkanban-plugin: board\n---\n")
	for _, section := range GoalSectionOrder {
		b.WriteString("\n## " + section + "\n\n")
	}
	b.WriteString("\n%% kanban:settings\n```\n")
	b.WriteString(`{"kanban-plugin":"board","list-collapse":[false,false,false,false]}`)
	b.WriteString("\n```\n%%\n")
	return b.String()
}

// MergeGoals appends missing goal lines to the end of their board section,
// deduping against existing lines by normalized text. Manual entries are
// never rewritten, so merging the same goals twice is a no-op.
func MergeGoals(content string, goals map[string][]string) string {
	boundaryHeaders := []string{
		"## " + SectionShortTerm,
		"## " + SectionMediumTerm,
		"## " + SectionLongTerm,
		"## " + SectionComeBackTo,
		"%% kanban:settings",
	}

	for _, section := range GoalSectionOrder {
		items := goals[section]
		if len(items) == 0 {
			continue
		}

		header := "## " + section
		start := strings.Index(content, header)
		if start == -1 {
			continue
		}

		end := len(content)
		for _, boundary := range boundaryHeaders {
			if boundary == header {
				continue
			}
			if idx := strings.Index(content[start+len(header):], boundary); idx != -1 {
				candidate := start + len(header) + idx
				if candidate < end {
					end = candidate
				}
			}
		}

		existing := make(map[normalize.Key]struct{})
		for _, line := range strings.Split(content[start:end], "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "- [") {
				existing[normalize.GoalLine(line)] = struct{}{}
			}
		}

		var appendLines []string
		for _, item := range items {
			line := "- [ ] " + item
			if _, ok := existing[normalize.GoalLine(line)]; !ok {
				appendLines = append(appendLines, line)
			}
		}
		if len(appendLines) == 0 {
			continue
		}

		content = content[:end] + "\n" + strings.Join(appendLines, "\n") + "\n" + content[end:]
	}
	return content
}
