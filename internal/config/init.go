package config

import (
	"os"
	"path/filepath"

	founderr "git.home.luguber.info/inful/docforge/internal/foundation/errors"
)

const starterConfig = `# docforge configuration
templates:
  directory: templates

manifests:
  installed: .docforge/manifests
  development: manifests

output:
  directory: docs

index:
  path: docs/MASTER_INDEX.md
  template_path: templates/master-index.md

logging:
  level: info
`

const starterTemplate = `# {CONCEPT_NAME}

## Overview

{CONCEPT_NAME} is part of {SYSTEM_NAME}.

## Implementation

Describe how {CONCEPT_NAME} works.

## Examples

Add usage examples here.
`

const starterManifest = `base_template: concept.md
specialist_role: backend
token_budget:
  max_tokens: 4000
output_path_pattern: docs/{concept_name}.md
ai_output_format:
  sections:
    "Overview": bullet_points
  token_optimization:
    remove_examples: true
    compress_whitespace: true
    shorten_descriptions: false
default_slug: example-concept
`

// Init writes a starter configuration, an example template, and an example
// manifest next to it. Existing files are only overwritten with force.
func Init(configPath string, force bool) error {
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return founderr.NewError(founderr.CategoryConfig, "configuration file already exists (use --force to overwrite)").
				WithContext("path", configPath).Build()
		}
	}

	baseDir := filepath.Dir(configPath)
	files := map[string]string{
		configPath: starterConfig,
		filepath.Join(baseDir, "templates", "concept.md"):            starterTemplate,
		filepath.Join(baseDir, "manifests", "example-manifest.yaml"): starterManifest,
	}
	for path, content := range files {
		if !force {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return founderr.WrapError(err, founderr.CategoryFileSystem, "create directory").
				WithContext("path", filepath.Dir(path)).Build()
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return founderr.WrapError(err, founderr.CategoryFileSystem, "write starter file").
				WithContext("path", path).Build()
		}
	}
	return nil
}
