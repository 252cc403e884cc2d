package service

import (
	"encoding/json"
	"testing"
)

func TestRepairJSON_FencedObject(t *testing.T) {
	raw, ok := RepairJSON("```json\n{\"a\": 1}\n```")
	if !ok {
		t.Fatal("expected fenced JSON to be recovered")
	}
	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("recovered span does not parse: %v", err)
	}
	if got["a"] != float64(1) {
		t.Errorf("a = %v, want 1", got["a"])
	}
}

func TestRepairJSON_FenceWithoutLanguageTag(t *testing.T) {
	raw, ok := RepairJSON("```\n{\"overview\": \"short trip\"}\n```")
	if !ok {
		t.Fatal("expected fenced JSON to be recovered")
	}
	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("recovered span does not parse: %v", err)
	}
	if got["overview"] != "short trip" {
		t.Errorf("overview = %v", got["overview"])
	}
}

func TestRepairJSON_ObjectBuriedInProse(t *testing.T) {
	raw, ok := RepairJSON("Here is the summary you asked for:\n\n{\"overview\": \"two day trip\"}\n\nLet me know if you need more.")
	if !ok {
		t.Fatal("expected embedded JSON to be recovered")
	}
	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("recovered span does not parse: %v", err)
	}
	if got["overview"] != "two day trip" {
		t.Errorf("overview = %v", got["overview"])
	}
}

func TestRepairJSON_UnparsableText(t *testing.T) {
	if _, ok := RepairJSON("Sorry, I cannot help."); ok {
		t.Error("expected recovery to fail on plain prose")
	}
}

func TestRepairJSON_MalformedObject(t *testing.T) {
	if _, ok := RepairJSON("{\"overview\": \"unterminated"); ok {
		t.Error("expected recovery to fail on malformed JSON")
	}
}

func TestRepairJSON_NonObjectJSON(t *testing.T) {
	// Arrays and scalars are not the summary shape; callers need an object.
	if _, ok := RepairJSON("[1, 2, 3]"); ok {
		t.Error("expected recovery to fail on a JSON array")
	}
}

func TestCleanModelJSON_ReturnsTrimmedInputWithoutBraces(t *testing.T) {
	got := CleanModelJSON("  no json here  ")
	if got != "no json here" {
		t.Errorf("got %q, want trimmed passthrough", got)
	}
}
