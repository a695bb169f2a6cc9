package llm

import "testing"

func TestNewClient(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	tests := []struct {
		name     string
		provider string
		model    string
		wantType string
		wantErr  bool
	}{
		{name: "openai", provider: "openai", model: "gpt-4o", wantType: "*llm.OpenAIClient"},
		{name: "empty defaults to openai", provider: "", model: "", wantType: "*llm.OpenAIClient"},
		{name: "ollama", provider: "ollama", model: "llama3", wantType: "*llm.OllamaClient"},
		{name: "lmstudio", provider: "lmstudio", model: "qwen2.5", wantType: "*llm.LMStudioClient"},
		{name: "lm-studio alias", provider: "lm-studio", model: "qwen2.5", wantType: "*llm.LMStudioClient"},
		{name: "case insensitive", provider: "  OpenAI ", model: "gpt-4o", wantType: "*llm.OpenAIClient"},
		{name: "unknown provider", provider: "bard", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.provider, tt.model, "")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := typeName(client); got != tt.wantType {
				t.Errorf("client type = %s, want %s", got, tt.wantType)
			}
		})
	}
}

func TestNewLMStudioClientRequiresModel(t *testing.T) {
	if _, err := NewLMStudioClient("", ""); err == nil {
		t.Fatal("expected error for empty model, got nil")
	}
}

func TestNewOpenAIClientRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewOpenAIClient("gpt-4o", ""); err == nil {
		t.Fatal("expected error without API key, got nil")
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *OpenAIClient:
		return "*llm.OpenAIClient"
	case *OllamaClient:
		return "*llm.OllamaClient"
	case *LMStudioClient:
		return "*llm.LMStudioClient"
	default:
		return "unknown"
	}
}
