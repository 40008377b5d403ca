// Package jsonarray extracts the first JSON-array-shaped substring from free
// text. Model output often wraps JSON in prose or markdown fences, so strict
// whole-string parsing is not an option.
package jsonarray

// Extract returns the first balanced JSON array found in text.
// The scan tracks bracket depth and skips over string literals (including
// escaped quotes), so brackets inside values do not break matching.
// The second return value is false when no balanced array exists.
func Extract(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if start != -1 {
				inString = true
			}
		case '[':
			if start == -1 {
				start = i
			}
			depth++
		case ']':
			if start == -1 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
