package template

import "strings"

// ExtractValue scans s for the first maximal run of characters containing no
// single or double quote and returns it. This tolerates shell-style quoting
// like KEY="value" or KEY='value'. The boolean is false when no such run
// exists, which callers must treat as "absent", never as empty-string.
func ExtractValue(s string) (string, bool) {
	s = strings.TrimSpace(s)
	start := -1
	for i, r := range s {
		if r == '\'' || r == '"' {
			if start >= 0 {
				return s[start:i], true
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start < 0 {
		return "", false
	}
	return s[start:], true
}
