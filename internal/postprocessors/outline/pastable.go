package outline

import "strings"

const fence = "```"

// Pastable returns body ready to paste into a terminal or editor. A body
// that is exactly one fenced code block loses its opening and closing fence
// lines. Anything else is returned unchanged.
func Pastable(body string) string {
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) < 2 {
		return body
	}

	first, last := lines[0], strings.TrimSpace(lines[len(lines)-1])
	if !strings.HasPrefix(first, fence) || last != fence {
		return body
	}
	inner := lines[1 : len(lines)-1]
	for _, line := range inner {
		if strings.HasPrefix(strings.TrimSpace(line), fence) {
			return body
		}
	}
	return strings.Join(inner, "\n")
}
