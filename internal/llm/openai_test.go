package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare json",
			input: `{"actions":[]}`,
			want:  `{"actions":[]}`,
		},
		{
			name:  "surrounding whitespace",
			input: "\n  {\"actions\":[]}  \n",
			want:  `{"actions":[]}`,
		},
		{
			name:  "fenced json",
			input: "```json\n{\"actions\":[]}\n```",
			want:  `{"actions":[]}`,
		},
		{
			name:  "fenced json with prose",
			input: "Hier ist der Plan:\n```json\n{\"actions\":[]}\n```\nViel Erfolg!",
			want:  `{"actions":[]}`,
		},
		{
			name:  "unterminated fence",
			input: "```json\n{\"actions\":[]}",
			want:  "```json\n{\"actions\":[]}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.input); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
