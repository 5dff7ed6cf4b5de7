package provider

import "strings"

// NormalizeJSON prepares raw generator output for JSON parsing. Providers
// wrap JSON in markdown code fences even when told not to, and sometimes
// pad a valid object with extra prose, so both are stripped here before any
// call site attempts to decode.
func NormalizeJSON(content string) string {
	content = stripCodeFences(content)
	return extractJSONValue(content)
}

// stripCodeFences removes a surrounding markdown code fence, with or
// without a language tag.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	// Drop the language tag on the opening fence line, e.g. "json".
	if newline := strings.IndexByte(content, '\n'); newline >= 0 {
		firstLine := strings.TrimSpace(content[:newline])
		if firstLine == "" || isFenceLanguageTag(firstLine) {
			content = content[newline+1:]
		}
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

func isFenceLanguageTag(s string) bool {
	for _, ch := range s {
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}

// extractJSONValue returns the first complete JSON object or array in
// content, skipping any text around it. Braces inside strings are ignored.
// If no complete value is found, content is returned as-is so the JSON
// decoder reports the real parse error.
func extractJSONValue(content string) string {
	first := -1
	var opener, closer rune
	for i, ch := range content {
		if ch == '{' || ch == '[' {
			first = i
			opener = ch
			closer = '}'
			if ch == '[' {
				closer = ']'
			}
			break
		}
	}
	if first == -1 {
		return content
	}

	depth := 0
	inString := false
	escapeNext := false
	for i, ch := range content[first:] {
		if escapeNext {
			escapeNext = false
			continue
		}
		if ch == '\\' && inString {
			escapeNext = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return content[first : first+i+1]
			}
		}
	}
	return content
}
