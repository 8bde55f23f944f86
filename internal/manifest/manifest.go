// Package manifest loads and validates the per-document generation
// descriptors that drive the pipeline. A manifest names a template, an
// output path pattern, an optional token budget, and the AI output format:
// which sections get reformatted, with which strategy, and which document
// wide optimizations run afterwards.
package manifest

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docforge/internal/format"
	founderr "git.home.luguber.info/inful/docforge/internal/foundation/errors"
	"git.home.luguber.info/inful/docforge/internal/tokens"
)

// Manifest is the immutable descriptor for one documentation generation.
type Manifest struct {
	// BaseTemplate takes precedence over TemplatePath when both are set.
	BaseTemplate      string          `yaml:"base_template"`
	TemplatePath      string          `yaml:"template_path"`
	SpecialistRole    string          `yaml:"specialist_role"`
	TokenBudget       *tokens.Budget  `yaml:"token_budget"`
	OutputPathPattern string          `yaml:"output_path_pattern"`
	AIOutputFormat    *AIOutputFormat `yaml:"ai_output_format"`
	DefaultSlug       string          `yaml:"default_slug"`
}

// AIOutputFormat describes how the AI variant differs from the human one.
type AIOutputFormat struct {
	Sections          map[string]format.Kind `yaml:"sections"`
	TokenOptimization format.Optimization    `yaml:"token_optimization"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryManifest, "read manifest").
			WithContext("path", path).Build()
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryManifest, "parse manifest").
			WithContext("path", path).Build()
	}
	if m.TemplateRef() == "" {
		return nil, founderr.NewError(founderr.CategoryManifest,
			"manifest declares no template reference (base_template or template_path)").
			WithContext("path", path).Build()
	}
	return &m, nil
}

// TemplateRef returns the template reference, preferring base_template.
func (m *Manifest) TemplateRef() string {
	if m.BaseTemplate != "" {
		return m.BaseTemplate
	}
	return m.TemplatePath
}

// SectionFormats returns the declared section formats ordered by section
// name. Map iteration order must not leak into output bytes: identical
// manifests have to produce identical documents.
func (m *Manifest) SectionFormats() []format.SectionFormat {
	if m.AIOutputFormat == nil || len(m.AIOutputFormat.Sections) == 0 {
		return nil
	}
	out := make([]format.SectionFormat, 0, len(m.AIOutputFormat.Sections))
	for section, kind := range m.AIOutputFormat.Sections {
		out = append(out, format.SectionFormat{Section: section, Kind: kind})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Section < out[j].Section })
	return out
}

// Optimization returns the declared optimization flags, zero when absent.
func (m *Manifest) Optimization() format.Optimization {
	if m.AIOutputFormat == nil {
		return format.Optimization{}
	}
	return m.AIOutputFormat.TokenOptimization
}
