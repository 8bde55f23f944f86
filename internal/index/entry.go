// Package index maintains the master index over generated AI document
// variants. The index is always rebuilt in full from a directory rescan plus
// any entries handed in by the generator; it is never patched in place.
package index

import (
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type buckets an indexed document by its subject matter.
type Type string

const (
	TypeConcept      Type = "concept"
	TypeIntegration  Type = "integration"
	TypeArchitecture Type = "architecture"
	TypeOther        Type = "other"
)

// bucketOrder is the fixed rendering order of the four type buckets.
var bucketOrder = [...]Type{TypeConcept, TypeIntegration, TypeArchitecture, TypeOther}

// Entry describes one AI document variant known to the index.
type Entry struct {
	Path         string
	Name         string
	Type         Type
	TokenCount   int
	LastModified time.Time
}

// TypeFromString maps an explicitly declared type name to its Type.
func TypeFromString(s string) (Type, bool) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeConcept:
		return TypeConcept, true
	case TypeIntegration:
		return TypeIntegration, true
	case TypeArchitecture:
		return TypeArchitecture, true
	case TypeOther:
		return TypeOther, true
	}
	return "", false
}

// InferType classifies a document by filename keywords.
func InferType(path string) Type {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, "concept"):
		return TypeConcept
	case strings.Contains(name, "integration"):
		return TypeIntegration
	case strings.Contains(name, "architecture"), strings.Contains(name, "arch"):
		return TypeArchitecture
	default:
		return TypeOther
	}
}

var titleCaser = cases.Title(language.English)

// DisplayName derives a human-readable name from an AI variant filename:
// the -ai.md suffix drops, separators become spaces, words get title-cased.
func DisplayName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, "-ai.md")
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	return titleCaser.String(base)
}
