package arrowconv

import "strings"

// Unquote strips a surrounding double-quote pair and unescapes the body.
// Strings without surrounding quotes pass through unchanged.
func Unquote(s string) string {
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return s
	}
	body := s[1 : len(s)-1]
	body = strings.ReplaceAll(body, `\"`, `"`)
	body = strings.ReplaceAll(body, `\\`, `\`)
	return body
}

// splitAware splits s on delim at nesting depth zero, respecting double
// quotes (backslash-escaped) and angle or round brackets. max limits the
// number of splits; negative means unlimited.
//
// Hive type options nest through angle brackets (MAP<STRING,ARRAY<INT>>), so
// depth tracking is what keeps inner commas intact.
func splitAware(s string, delim byte, max int) []string {
	if max == 0 {
		return []string{s}
	}

	var parts []string
	depth := 0
	inQuotes := false
	start := 0
	for j := 0; j < len(s); j++ {
		switch ch := s[j]; {
		case inQuotes:
			if ch == '\\' {
				j++
			} else if ch == '"' {
				inQuotes = false
			}
		case ch == '"':
			inQuotes = true
		case ch == '<' || ch == '(':
			depth++
		case ch == '>' || ch == ')':
			depth--
		case ch == delim && depth == 0:
			parts = append(parts, s[start:j])
			start = j + 1
			if max > 0 {
				if max--; max == 0 {
					return append(parts, s[start:])
				}
			}
		}
	}
	return append(parts, s[start:])
}
