package shared

import "strings"

// WithBottomHints places content at the top of the available height and pins
// hints to the last line. A height that cannot fit both stacks them directly.
func WithBottomHints(content, hints string, height int) string {
	content = strings.TrimRight(content, "\n")
	hints = strings.TrimRight(hints, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	hintLines := strings.Split(hints, "\n")

	gap := height - len(contentLines) - len(hintLines)
	if gap <= 0 {
		if content == "" {
			return hints
		}
		return content + "\n" + hints
	}

	lines := make([]string, 0, height)
	lines = append(lines, contentLines...)
	for i := 0; i < gap; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, hintLines...)

	return strings.Join(lines, "\n")
}
