package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docforge/internal/logfields"
	"git.home.luguber.info/inful/docforge/internal/manifest"
)

// manifestSuffix is the conventional file name suffix for generation manifests.
const manifestSuffix = "-manifest.yaml"

// reservedBaseNames are manifest base names too generic to name a document.
// Their slug is timestamp-qualified so repeated batch runs cannot silently
// overwrite each other's output.
var reservedBaseNames = map[string]bool{
	"template": true,
	"example":  true,
	"default":  true,
}

// Skipped records one manifest the batch run could not generate.
type Skipped struct {
	Manifest string
	Err      error
}

// BatchReport summarizes one GenerateAll run.
type BatchReport struct {
	RunID     string
	Dir       string
	Generated []*Result
	Skipped   []Skipped
}

// GenerateAll discovers eligible manifests and generates each one in turn,
// strictly sequentially. The installed manifests directory wins over the
// development one when it exists. A failing manifest is logged and skipped;
// it never aborts the batch.
func (g *Generator) GenerateAll() (*BatchReport, error) {
	report := &BatchReport{RunID: uuid.NewString()}
	logger := g.logger().With(logfields.RunID(report.RunID))

	dir := g.manifestsDir()
	report.Dir = dir
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("no manifests directory found", logfields.Path(dir))
			return report, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), manifestSuffix) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		vars, err := g.defaultVariables(path, logger)
		if err != nil {
			logger.Warn("skipping manifest", logfields.Manifest(path), logfields.Error(err))
			report.Skipped = append(report.Skipped, Skipped{Manifest: path, Err: err})
			continue
		}
		res, err := g.GenerateFromManifest(path, vars)
		if err != nil {
			logger.Warn("skipping manifest", logfields.Manifest(path), logfields.Error(err))
			report.Skipped = append(report.Skipped, Skipped{Manifest: path, Err: err})
			continue
		}
		report.Generated = append(report.Generated, res)
	}

	logger.Info("batch generation finished",
		logfields.Path(dir),
		logfields.Count(len(report.Generated)))
	return report, nil
}

// manifestsDir picks the installed location when present, the development
// location otherwise.
func (g *Generator) manifestsDir() string {
	installed := rootedPath(g.Root, g.Manifests.Installed)
	if info, err := os.Stat(installed); err == nil && info.IsDir() {
		return installed
	}
	return rootedPath(g.Root, g.Manifests.Development)
}

// DefaultVariables derives the variable set for a discovered manifest: its
// declared default slug, or its file name stripped of the manifest suffix.
// Reserved base names get a timestamp-qualified slug and a warning.
func (g *Generator) DefaultVariables(path string) (map[string]string, error) {
	return g.defaultVariables(path, g.logger())
}

func (g *Generator) defaultVariables(path string, logger *slog.Logger) (map[string]string, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}

	slug := m.DefaultSlug
	if slug == "" {
		base := strings.TrimSuffix(filepath.Base(path), manifestSuffix)
		if reservedBaseNames[base] {
			slug = fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405"))
			logger.Warn("reserved manifest name, using timestamped slug; declare default_slug for a stable name",
				logfields.Manifest(path), logfields.Slug(slug))
		} else {
			slug = base
		}
	}
	return map[string]string{
		"concept_name": slug,
		"name":         slug,
	}, nil
}
