package generator

import (
	"path/filepath"
	"testing"
)

func TestResolveOutputPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		vars    map[string]string
		want    string
	}{
		{
			name:    "lowercase placeholder, lowercase var",
			pattern: "docs/{concept_name}.md",
			vars:    map[string]string{"concept_name": "auth"},
			want:    "docs/auth.md",
		},
		{
			name:    "uppercase placeholder spelling honored",
			pattern: "docs/{CONCEPT_NAME}.md",
			vars:    map[string]string{"concept_name": "auth"},
			want:    "docs/auth.md",
		},
		{
			name:    "unresolved known name takes table default",
			pattern: "docs/{concept_name}.md",
			vars:    nil,
			want:    "docs/example-concept.md",
		},
		{
			name:    "unresolved unknown name stays bracket-free",
			pattern: "docs/{qualifier}/{concept_name}.md",
			vars:    map[string]string{"concept_name": "auth"},
			want:    "docs/qualifier/auth.md",
		},
		{
			name:    "multiple variables",
			pattern: "docs/{service_name}/{concept_name}.md",
			vars:    map[string]string{"service_name": "billing", "concept_name": "retry"},
			want:    "docs/billing/retry.md",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveOutputPattern(tt.pattern, tt.vars); got != tt.want {
				t.Errorf("resolveOutputPattern() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveAIPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"docs/auth.md", filepath.Join("docs", "ai", "auth-ai.md")},
		{"docs/sub/deep.md", filepath.Join("docs", "sub", "ai", "deep-ai.md")},
		{"plain.md", filepath.Join("ai", "plain-ai.md")},
		{"docs/noext", filepath.Join("docs", "ai", "noext-ai")},
	}
	for _, tt := range tests {
		if got := deriveAIPath(tt.in); got != tt.want {
			t.Errorf("deriveAIPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
