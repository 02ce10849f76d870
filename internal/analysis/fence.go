package analysis

import "strings"

// StripFences removes a leading ```json (or bare ```) marker and a
// trailing ``` from the text. The prompts forbid code fences, but
// backends wrap JSON in them anyway often enough that parsing without
// this step is unreliable.
func StripFences(text string) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimLeft(s, "\r\n")
	}
	if strings.HasSuffix(strings.TrimSpace(s), "```") {
		s = strings.TrimSpace(s)
		s = strings.TrimSuffix(s, "```")
	}

	return strings.TrimSpace(s)
}
