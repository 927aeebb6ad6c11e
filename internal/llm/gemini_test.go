package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":     "array",
				"maxItems": 15,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":     map[string]any{"type": "string"},
						"priority": map[string]any{"type": "string", "enum": []string{"high", "medium"}},
					},
					"required": []string{"word"},
				},
			},
			"count": map[string]any{"type": "integer"},
		},
		"required": []any{"items"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(schema.Properties))
	}
	items := schema.Properties["items"]
	if items.Type != "ARRAY" {
		t.Fatalf("expected ARRAY for items, got %s", items.Type)
	}
	if items.MaxItems == nil || *items.MaxItems != 15 {
		t.Fatalf("expected maxItems 15, got %v", items.MaxItems)
	}
	if got := items.Items.Properties["priority"].Enum; len(got) != 2 {
		t.Fatalf("expected 2 enum values, got %v", got)
	}
	if got := items.Items.Required; len(got) != 1 || got[0] != "word" {
		t.Fatalf("expected required [word], got %v", got)
	}
	if schema.Properties["count"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for count, got %s", schema.Properties["count"].Type)
	}
	if len(schema.Required) != 1 {
		t.Fatalf("expected 1 required field, got %d", len(schema.Required))
	}
}

func TestBuildGeminiContents(t *testing.T) {
	got := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "hi"},
	})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Role != string(genai.RoleUser) || got[1].Role != string(genai.RoleModel) {
		t.Errorf("roles = %q, %q", got[0].Role, got[1].Role)
	}
	if got[1].Parts[0].Text != "hi" {
		t.Errorf("text = %q, want hi", got[1].Parts[0].Text)
	}
}
