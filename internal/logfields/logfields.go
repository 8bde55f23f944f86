package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyManifest   = "manifest"
	KeyTemplate   = "template"
	KeySection    = "section"
	KeyFormatKind = "format_kind"
	KeyTokens     = "tokens"
	KeyBudget     = "budget"
	KeyPath       = "path"
	KeySlug       = "slug"
	KeyRunID      = "run_id"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Manifest(p string) slog.Attr      { return slog.String(KeyManifest, p) }
func Template(p string) slog.Attr      { return slog.String(KeyTemplate, p) }
func Section(name string) slog.Attr    { return slog.String(KeySection, name) }
func FormatKind(kind string) slog.Attr { return slog.String(KeyFormatKind, kind) }
func Tokens(n int) slog.Attr           { return slog.Int(KeyTokens, n) }
func Budget(max int) slog.Attr         { return slog.Int(KeyBudget, max) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Slug(s string) slog.Attr          { return slog.String(KeySlug, s) }
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
