package service

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	codeFenceOpen  = regexp.MustCompile("(?i)^```(?:json)?")
	codeFenceClose = regexp.MustCompile("```$")
)

// CleanModelJSON pulls a JSON object out of model output: markdown code
// fences are stripped and the span from the first '{' to the last '}' is
// returned. When no brace pair exists the trimmed input comes back so the
// caller can decide what to do with it.
func CleanModelJSON(text string) string {
	text = codeFenceOpen.ReplaceAllString(strings.TrimSpace(text), "")
	text = codeFenceClose.ReplaceAllString(strings.TrimSpace(text), "")
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return strings.TrimSpace(text)
}

// RepairJSON attempts to recover a JSON object from model output. The second
// return value reports whether a parsable object was found; callers keep the
// raw text when it is false. It never fails with an error.
func RepairJSON(text string) (json.RawMessage, bool) {
	cleaned := CleanModelJSON(text)
	var probe map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, false
	}
	return json.RawMessage(cleaned), true
}
