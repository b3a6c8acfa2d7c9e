package extract

import "strings"

// balanced returns the object or array literal starting at the first '{' or
// '[' in s, tracking nesting depth outside of string literals. It returns ""
// when the literal is unterminated.
func balanced(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}
	depth := 0
	var quote byte
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// afterMarker returns the text following the first occurrence of marker.
func afterMarker(s, marker string) (string, bool) {
	_, rest, ok := strings.Cut(s, marker)
	return rest, ok
}

// assignmentBody isolates the right-hand side of an inline script
// assignment: text up to the closing script tag, without the statement
// terminator.
func assignmentBody(rest string) string {
	if end := strings.Index(rest, "</script>"); end >= 0 {
		rest = rest[:end]
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, ";")
	return strings.TrimSpace(rest)
}
