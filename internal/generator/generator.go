// Package generator orchestrates one documentation generation: manifest in,
// human and AI document variants out, master index updated. Each call is a
// strictly sequential pipeline; nothing here runs concurrently, and files
// written before a failing step are deliberately not rolled back. A later
// full index rebuild reconciles any partial state.
package generator

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/docforge/internal/config"
	"git.home.luguber.info/inful/docforge/internal/format"
	founderr "git.home.luguber.info/inful/docforge/internal/foundation/errors"
	"git.home.luguber.info/inful/docforge/internal/index"
	"git.home.luguber.info/inful/docforge/internal/logfields"
	"git.home.luguber.info/inful/docforge/internal/manifest"
	"git.home.luguber.info/inful/docforge/internal/template"
	"git.home.luguber.info/inful/docforge/internal/tokens"
)

// Generator runs the generation pipeline. All relative paths resolve against
// Root, never against the ambient working directory, so callers and tests can
// redirect output without mutating global state.
type Generator struct {
	Root         string
	TemplatesDir string
	Manifests    config.ManifestsConfig
	Counter      *tokens.Counter
	Index        *index.Builder
	Logger       *slog.Logger
}

// Result describes one completed generation. Created once per call,
// read-only afterward.
type Result struct {
	HumanPath  string
	AIPath     string
	TokenCount int
	Manifest   *manifest.Manifest
}

// New wires a Generator from application configuration, rooted at root.
func New(cfg *config.Config, root string, logger *slog.Logger) *Generator {
	counter := tokens.NewCounter()
	return &Generator{
		Root:         root,
		TemplatesDir: rootedPath(root, cfg.Templates.Directory),
		Manifests:    cfg.Manifests,
		Counter:      counter,
		Index: &index.Builder{
			DocsDir:      rootedPath(root, cfg.Output.Directory),
			IndexPath:    rootedPath(root, cfg.Index.Path),
			TemplatePath: rootedPath(root, cfg.Index.TemplatePath),
			Counter:      counter,
			Logger:       logger,
		},
		Logger: logger,
	}
}

func rootedPath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// GenerateFromManifest loads the manifest at manifestPath and produces the
// human and AI document variants plus an index update. Any internal failure
// is wrapped exactly once into a generation error.
func (g *Generator) GenerateFromManifest(manifestPath string, vars map[string]string) (*Result, error) {
	start := time.Now()
	res, err := g.generate(manifestPath, vars)
	if err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryGeneration, "generation failed").
			WithContext("manifest", manifestPath).Build()
	}
	g.logger().Info("documentation generated",
		logfields.Manifest(manifestPath),
		logfields.Path(res.AIPath),
		logfields.Tokens(res.TokenCount),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return res, nil
}

func (g *Generator) generate(manifestPath string, vars map[string]string) (*Result, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	templatePath := g.resolveTemplatePath(manifestPath, m.TemplateRef())
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryFileSystem, "read template").
			WithContext("path", templatePath).Build()
	}

	human := template.Substitute(string(raw), vars)
	ai := format.Apply(human, m.SectionFormats(), m.Optimization())

	count := g.Counter.Count(ai)
	if err := tokens.ValidateBudget(count, m.TokenBudget); err != nil {
		// Budget overflow aborts before anything is written.
		return nil, err
	}

	if m.OutputPathPattern == "" {
		return nil, founderr.NewError(founderr.CategoryManifest, "manifest declares no output_path_pattern").
			WithContext("path", manifestPath).Build()
	}
	rel := resolveOutputPattern(m.OutputPathPattern, vars)
	humanPath := rootedPath(g.Root, rel)
	aiPath := rootedPath(g.Root, deriveAIPath(rel))

	for _, dir := range []string{filepath.Dir(humanPath), filepath.Dir(aiPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, founderr.WrapError(err, founderr.CategoryFileSystem, "create output directory").
				WithContext("path", dir).Build()
		}
	}
	if err := os.WriteFile(humanPath, []byte(human), 0o644); err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryFileSystem, "write human document").
			WithContext("path", humanPath).Build()
	}
	if err := os.WriteFile(aiPath, []byte(ai), 0o644); err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryFileSystem, "write ai document").
			WithContext("path", aiPath).Build()
	}

	entry := index.Entry{
		Path:         aiPath,
		Name:         index.DisplayName(aiPath),
		Type:         g.entryType(m, aiPath),
		TokenCount:   count,
		LastModified: time.Now(),
	}
	if _, err := g.Index.UpdateMasterIndex([]index.Entry{entry}); err != nil {
		return nil, err
	}

	return &Result{HumanPath: humanPath, AIPath: aiPath, TokenCount: count, Manifest: m}, nil
}

// entryType prefers a specialist role that names a known index type and
// falls back to filename inference.
func (g *Generator) entryType(m *manifest.Manifest, aiPath string) index.Type {
	if t, ok := index.TypeFromString(m.SpecialistRole); ok {
		return t
	}
	return index.InferType(aiPath)
}

// resolveTemplatePath resolves a manifest's template reference: absolute
// paths are used as-is, parent-relative paths resolve against the manifest's
// directory, everything else resolves against the templates root.
func (g *Generator) resolveTemplatePath(manifestPath, ref string) string {
	switch {
	case filepath.IsAbs(ref):
		return ref
	case strings.HasPrefix(ref, ".."):
		return filepath.Join(filepath.Dir(manifestPath), ref)
	default:
		return filepath.Join(g.TemplatesDir, ref)
	}
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}
