package util

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, map[string]string{"slug": "wagner_richard"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if decoded["slug"] != "wagner_richard" {
		t.Fatalf("unexpected value: %#v", decoded)
	}
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	value := map[string]interface{}{"title": "Der Ring", "authors": []string{"Richard Wagner"}}
	if err := PrintYAML(&buf, value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded struct {
		Title   string   `yaml:"title"`
		Authors []string `yaml:"authors"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if decoded.Title != "Der Ring" || len(decoded.Authors) != 1 {
		t.Fatalf("unexpected value: %#v", decoded)
	}
}

func TestStructuredResultAndPrintLines(t *testing.T) {
	payload := StructuredResult(true, "ok", map[string]int{"value": 1})
	if payload["success"] != true {
		t.Fatalf("expected success true: %#v", payload)
	}
	if payload["message"] != "ok" {
		t.Fatalf("unexpected message: %#v", payload)
	}
	if payload["data"].(map[string]int)["value"] != 1 {
		t.Fatalf("unexpected data")
	}

	failure := ErrorResult("MissingTitle", "missing title")
	if failure["success"] != false || failure["kind"] != "MissingTitle" {
		t.Fatalf("unexpected failure payload: %#v", failure)
	}
	if _, ok := ErrorResult("", "boom")["kind"]; ok {
		t.Fatalf("expected kind omitted when empty")
	}

	var buf bytes.Buffer
	PrintLines(&buf, "one", "two")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Fatalf("unexpected lines: %#v", lines)
	}
}
