package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/docforge/internal/format"
	founderr "git.home.luguber.info/inful/docforge/internal/foundation/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullManifest(t *testing.T) {
	path := writeManifest(t, `
base_template: concept.md
specialist_role: backend
token_budget:
  max_tokens: 3000
output_path_pattern: docs/{concept_name}.md
ai_output_format:
  sections:
    "Architecture Overview": bullet_points
    "Implementation": code_blocks
  token_optimization:
    remove_examples: true
    compress_whitespace: true
default_slug: caching
`)
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.TemplateRef() != "concept.md" {
		t.Errorf("TemplateRef() = %q", m.TemplateRef())
	}
	if m.TokenBudget == nil || m.TokenBudget.MaxTokens != 3000 {
		t.Errorf("budget = %+v", m.TokenBudget)
	}
	if !m.Optimization().RemoveExamples || !m.Optimization().CompressWhitespace || m.Optimization().ShortenDescriptions {
		t.Errorf("optimization = %+v", m.Optimization())
	}
	if m.DefaultSlug != "caching" {
		t.Errorf("default slug = %q", m.DefaultSlug)
	}

	formats := m.SectionFormats()
	if len(formats) != 2 {
		t.Fatalf("got %d section formats", len(formats))
	}
	// Sorted by section name for deterministic output.
	if formats[0].Section != "Architecture Overview" || formats[0].Kind != format.KindBulletPoints {
		t.Errorf("formats[0] = %+v", formats[0])
	}
	if formats[1].Section != "Implementation" || formats[1].Kind != format.KindCodeBlocks {
		t.Errorf("formats[1] = %+v", formats[1])
	}
}

func TestTemplateRefPrecedence(t *testing.T) {
	path := writeManifest(t, "base_template: a.md\ntemplate_path: b.md\noutput_path_pattern: docs/{name}.md\n")
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.TemplateRef() != "a.md" {
		t.Errorf("base_template must win, got %q", m.TemplateRef())
	}
}

func TestTemplatePathFallback(t *testing.T) {
	path := writeManifest(t, "template_path: b.md\noutput_path_pattern: docs/{name}.md\n")
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.TemplateRef() != "b.md" {
		t.Errorf("TemplateRef() = %q", m.TemplateRef())
	}
}

func TestLoadMissingTemplateRef(t *testing.T) {
	path := writeManifest(t, "specialist_role: backend\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("manifest without template reference must fail")
	}
	if !founderr.HasCategory(err, founderr.CategoryManifest) {
		t.Errorf("expected manifest category, got %v", err)
	}
}

func TestLoadUnknownFormatKind(t *testing.T) {
	path := writeManifest(t, `
base_template: t.md
ai_output_format:
  sections:
    "Overview": summarize_harder
`)
	if _, err := Load(path); err == nil {
		t.Fatal("unknown format kind must fail to parse")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("missing file must fail")
	}
	if !founderr.HasCategory(err, founderr.CategoryManifest) {
		t.Errorf("expected manifest category, got %v", err)
	}
}

func TestSectionFormatsAbsent(t *testing.T) {
	path := writeManifest(t, "base_template: t.md\n")
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.SectionFormats() != nil {
		t.Error("absent format descriptor should yield nil section formats")
	}
}
