package index

import (
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	founderr "git.home.luguber.info/inful/docforge/internal/foundation/errors"
	"git.home.luguber.info/inful/docforge/internal/logfields"
	"git.home.luguber.info/inful/docforge/internal/template"
	"git.home.luguber.info/inful/docforge/internal/tokens"
)

// recentWindow is how far back a modification still counts as "recently updated".
const recentWindow = 24 * time.Hour

// Builder rebuilds the master index document.
type Builder struct {
	// DocsDir is the documentation root that gets rescanned for AI variants.
	DocsDir string
	// IndexPath is where the regenerated index is written.
	IndexPath string
	// TemplatePath points at the index template; when it cannot be read the
	// built-in skeleton is used instead.
	TemplatePath string
	Counter      *tokens.Counter
	Logger       *slog.Logger
}

// UpdateResult reports one completed index rebuild.
type UpdateResult struct {
	TotalFiles int
	IndexPath  string
	Timestamp  time.Time
}

// UpdateMasterIndex rescans the documentation root, merges the rescanned
// entries with newEntries, and regenerates the full index document.
// Rescanned and supplied entries are concatenated without path deduplication.
func (b *Builder) UpdateMasterIndex(newEntries []Entry) (*UpdateResult, error) {
	logger := b.logger()
	runID := uuid.NewString()
	start := time.Now()

	scanned, err := b.rescan()
	if err != nil {
		return nil, err
	}
	entries := append(scanned, newEntries...)

	now := time.Now()
	vars := map[string]string{
		"generated_at":      now.Format(time.RFC3339),
		"total_documents":   fmt.Sprintf("%d", len(entries)),
		"routing_table":     renderRoutingTable(entries),
		"token_summary":     renderTokenSummary(entries),
		"document_listing":  b.renderListing(entries),
		"validation_status": renderValidationStatus(entries, now),
	}
	content := template.Substitute(b.loadTemplate(), vars)

	if err := os.MkdirAll(filepath.Dir(b.IndexPath), 0o755); err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryIndex, "create index directory").
			WithContext("path", filepath.Dir(b.IndexPath)).Build()
	}
	if err := os.WriteFile(b.IndexPath, []byte(content), 0o644); err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryIndex, "write master index").
			WithContext("path", b.IndexPath).Build()
	}

	logger.Info("master index regenerated",
		logfields.RunID(runID),
		logfields.Path(b.IndexPath),
		logfields.Count(len(entries)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))

	return &UpdateResult{TotalFiles: len(entries), IndexPath: b.IndexPath, Timestamp: now}, nil
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// rescan walks the documentation root collecting every -ai.md file except the
// index itself, recomputing token counts as it goes.
func (b *Builder) rescan() ([]Entry, error) {
	indexAbs, _ := filepath.Abs(b.IndexPath)

	var entries []Entry
	err := filepath.WalkDir(b.DocsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == b.DocsDir {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), "-ai.md") {
			return nil
		}
		if abs, aerr := filepath.Abs(path); aerr == nil && abs == indexAbs {
			return nil
		}

		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return rerr
		}
		info, ierr := d.Info()
		if ierr != nil {
			return ierr
		}
		entries = append(entries, Entry{
			Path:         path,
			Name:         DisplayName(path),
			Type:         InferType(path),
			TokenCount:   b.Counter.Count(string(data)),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryIndex, "rescan documentation directory").
			WithContext("path", b.DocsDir).Build()
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

func (b *Builder) loadTemplate() string {
	if b.TemplatePath != "" {
		if data, err := os.ReadFile(b.TemplatePath); err == nil {
			return string(data)
		}
	}
	return fallbackIndexTemplate
}

func groupByType(entries []Entry) map[Type][]Entry {
	buckets := make(map[Type][]Entry, len(bucketOrder))
	for _, e := range entries {
		buckets[e.Type] = append(buckets[e.Type], e)
	}
	return buckets
}

func renderRoutingTable(entries []Entry) string {
	if len(entries) == 0 {
		return "No documents available for routing."
	}
	buckets := groupByType(entries)

	var sb strings.Builder
	sb.WriteString("| Type | Documents | Token Range |\n")
	sb.WriteString("|------|-----------|-------------|\n")
	for _, t := range bucketOrder {
		bucket := buckets[t]
		if len(bucket) == 0 {
			continue
		}
		names := make([]string, 0, len(bucket))
		minTok, maxTok := bucket[0].TokenCount, bucket[0].TokenCount
		for _, e := range bucket {
			names = append(names, e.Name)
			if e.TokenCount < minTok {
				minTok = e.TokenCount
			}
			if e.TokenCount > maxTok {
				maxTok = e.TokenCount
			}
		}
		fmt.Fprintf(&sb, "| %s | %s | %d-%d tokens |\n",
			titleCaser.String(string(t)), strings.Join(names, ", "), minTok, maxTok)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func renderTokenSummary(entries []Entry) string {
	if len(entries) == 0 {
		return "- Total tokens: 0\n- Documents: 0"
	}
	total, max := 0, 0
	for _, e := range entries {
		total += e.TokenCount
		if e.TokenCount > max {
			max = e.TokenCount
		}
	}
	avg := int(math.Round(float64(total) / float64(len(entries))))
	return fmt.Sprintf("- Total tokens: %d\n- Documents: %d\n- Average tokens: %d\n- Largest document: %d tokens",
		total, len(entries), avg, max)
}

func (b *Builder) renderListing(entries []Entry) string {
	if len(entries) == 0 {
		return "No documents generated yet."
	}
	buckets := groupByType(entries)

	var sb strings.Builder
	for _, t := range bucketOrder {
		bucket := buckets[t]
		if len(bucket) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "### %s\n\n", titleCaser.String(string(t)))
		for _, e := range bucket {
			fmt.Fprintf(&sb, "- %s (%d tokens)\n", b.relPath(e.Path), e.TokenCount)
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (b *Builder) relPath(path string) string {
	if rel, err := filepath.Rel(b.DocsDir, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

func renderValidationStatus(entries []Entry, now time.Time) string {
	if len(entries) == 0 {
		return "No documents indexed yet."
	}
	recent := 0
	for _, e := range entries {
		if now.Sub(e.LastModified) <= recentWindow {
			recent++
		}
	}
	return fmt.Sprintf("Status: Active\n\n- %d of %d documents updated in the last 24 hours", recent, len(entries))
}

const fallbackIndexTemplate = `# Master Documentation Index

Generated: {GENERATED_AT}

## Routing

{ROUTING_TABLE}

## Token Summary

{TOKEN_SUMMARY}

## Documents

{DOCUMENT_LISTING}

## Validation

{VALIDATION_STATUS}
`
