package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseModelJSON extracts and parses a JSON object from model output that may be:
// - Pure JSON
// - JSON wrapped in markdown code blocks (```json ... ```)
// - JSON with surrounding prose
// - JSON with trailing commas or unquoted keys
func ParseModelJSON(input string, target interface{}) error {
	if input == "" {
		return fmt.Errorf("empty input")
	}

	// Direct parsing first (most common case)
	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	if extracted := extractFromMarkdown(input); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), target); err == nil {
			return nil
		}
	}

	if extracted := extractJSONObject(input); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), target); err == nil {
			return nil
		}
		// Object found but malformed; try to repair common issues
		if err := json.Unmarshal([]byte(cleanJSON(extracted)), target); err == nil {
			return nil
		}
	}

	if cleaned := cleanJSON(input); cleaned != "" {
		if err := json.Unmarshal([]byte(cleaned), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to parse JSON from model output: %s", truncate(input, 100))
}

// extractFromMarkdown pulls the payload out of ```json ... ``` or ``` ... ``` fences.
func extractFromMarkdown(input string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	if matches := re.FindStringSubmatch(input); len(matches) > 1 {
		content := strings.TrimSpace(matches[1])
		if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
			return content
		}
	}
	return ""
}

// extractJSONObject finds the first balanced {...} in surrounding text.
func extractJSONObject(input string) string {
	start := strings.Index(input, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escape := false
	for i, ch := range input[start:] {
		if escape {
			escape = false
			continue
		}
		switch {
		case ch == '\\':
			escape = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return input[start : start+i+1]
			}
		}
	}
	return ""
}

// cleanJSON fixes the JSON defects models most often produce.
func cleanJSON(input string) string {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "\ufeff")

	// Trailing commas before closing braces/brackets
	s = regexp.MustCompile(`,\s*([}\]])`).ReplaceAllString(s, "$1")

	// Unquoted keys: {word: "value"} -> {"word": "value"}
	s = regexp.MustCompile(`([{,]\s*)(\w+)(\s*:)`).ReplaceAllString(s, `$1"$2"$3`)

	// Control characters
	s = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`).ReplaceAllString(s, "")

	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
