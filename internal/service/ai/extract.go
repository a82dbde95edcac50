package ai

import (
	"encoding/json"
	"strings"

	"github.com/anzen-app/bosai-go/pkg/errors"
)

// ExtractJSON pulls a JSON document out of a model response. Models asked
// for JSON still wrap it in markdown fences or chatty prose often enough
// that three extraction stages are tried in order:
//
//  1. the whole response parses as JSON
//  2. the response contains a ```json fenced block
//  3. a balanced {...} or [...] region is scanned out of surrounding text
//
// The returned string is always valid JSON. When no stage yields a document
// the raw response is preserved in the error for diagnosis.
func ExtractJSON(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.NewMalformedTranslationError("empty model response", raw, nil)
	}

	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}

	if block, ok := extractFencedBlock(trimmed); ok && json.Valid([]byte(block)) {
		return block, nil
	}

	if region, ok := scanBalancedRegion(trimmed); ok && json.Valid([]byte(region)) {
		return region, nil
	}

	return "", errors.NewMalformedTranslationError("no JSON document in model response", raw, nil)
}

// DecodeJSON extracts a JSON document from raw and unmarshals it into dest.
func DecodeJSON(raw string, dest any) error {
	doc, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(doc), dest); err != nil {
		return errors.NewMalformedTranslationError("JSON document does not match expected shape", raw, err)
	}
	return nil
}

// extractFencedBlock returns the contents of the first markdown code fence.
// A ```json language tag is preferred but any fence is accepted.
func extractFencedBlock(s string) (string, bool) {
	start := strings.Index(s, "```json")
	offset := len("```json")
	if start == -1 {
		start = strings.Index(s, "```")
		offset = len("```")
	}
	if start == -1 {
		return "", false
	}

	rest := s[start+offset:]
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// scanBalancedRegion finds the first balanced JSON object or array in s.
// String literals and escape sequences are tracked so braces inside strings
// do not affect the depth count.
func scanBalancedRegion(s string) (string, bool) {
	start := -1
	var open, close byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' {
			start, open, close = i, '{', '}'
			break
		}
		if s[i] == '[' {
			start, open, close = i, '[', ']'
			break
		}
	}
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
