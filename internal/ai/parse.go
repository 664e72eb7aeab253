package ai

import "strings"

// ExtractJSONBlock pulls the JSON payload out of a model answer. Models
// often wrap the payload in a ```json fence or surround it with prose; we
// strip the fence when present, otherwise fall back to the outermost
// bracket pair.
func ExtractJSONBlock(answer string) ([]byte, error) {
	s := strings.TrimSpace(answer)

	if i := strings.Index(s, "```json"); i >= 0 {
		rest := s[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return []byte(strings.TrimSpace(rest[:j])), nil
		}
		// unterminated fence: take everything after the opener
		return []byte(strings.TrimSpace(rest)), nil
	}
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		if j := strings.Index(rest, "```"); j >= 0 {
			return []byte(strings.TrimSpace(rest[:j])), nil
		}
		return []byte(strings.TrimSpace(rest)), nil
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return nil, &MalformedResponseError{Detail: "no JSON found in answer", Raw: []byte(answer)}
	}
	var end int
	if s[start] == '{' {
		end = strings.LastIndex(s, "}")
	} else {
		end = strings.LastIndex(s, "]")
	}
	if end <= start {
		return nil, &MalformedResponseError{Detail: "unbalanced JSON in answer", Raw: []byte(answer)}
	}
	return []byte(s[start : end+1]), nil
}
