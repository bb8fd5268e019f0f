package markdown

import "strings"

// SectionBounds locates the byte range of a "## Header" section: from the
// header itself up to the next header in nextHeaders (or end of content).
// Returns ok=false when the header is absent.
func SectionBounds(content, header string, nextHeaders []string) (start, end int, ok bool) {
	start = strings.Index(content, header)
	if start < 0 {
		return 0, 0, false
	}
	end = len(content)
	for _, next := range nextHeaders {
		if next == header {
			continue
		}
		if idx := strings.Index(content[start+len(header):], next); idx >= 0 {
			candidate := start + len(header) + idx
			if candidate < end {
				end = candidate
			}
		}
	}
	return start, end, true
}

// TaskLines extracts the "- [ ]"/"- [x]" lines inside a block of text.
func TaskLines(block string) []string {
	lines := []string{}
	for _, line := range strings.Split(block, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "- [") {
			lines = append(lines, line)
		}
	}
	return lines
}
