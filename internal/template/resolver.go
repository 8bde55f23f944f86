// Package template implements placeholder substitution for documentation
// templates. Placeholders use the {NAME} form; resolution is total and never
// fails: names without a supplied value fall back to a fixed default table,
// and names unknown to the table echo back as a bracketed lowercase marker so
// a half-filled template remains visibly half-filled instead of erroring.
package template

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {WORD}-shaped placeholders: letters, digits and
// underscores, starting with a letter.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_]*)\}`)

// defaults maps canonical uppercase placeholder names to their fallback value.
var defaults = map[string]string{
	"CONCEPT_NAME":   "example-concept",
	"SERVICE_NAME":   "example-service",
	"SYSTEM_NAME":    "example-system",
	"MODULE_NAME":    "example-module",
	"COMPONENT_NAME": "example-component",
}

// Substitute replaces every {NAME} placeholder in tmpl. Supplied variable keys
// match case-insensitively. Unresolved placeholders are defaulted, never
// reported as an error.
func Substitute(tmpl string, vars map[string]string) string {
	lookup := make(map[string]string, len(vars))
	for k, v := range vars {
		lookup[strings.ToUpper(k)] = v
	}
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := strings.ToUpper(match[1 : len(match)-1])
		if v, ok := lookup[name]; ok {
			return v
		}
		return DefaultFor(name)
	})
}

// DefaultFor returns the fallback value for an unresolved placeholder name.
// Known names come from the default table; anything else becomes a bracketed
// lowercase echo, e.g. FOO_BAR -> [foo_bar].
func DefaultFor(name string) string {
	upper := strings.ToUpper(name)
	if v, ok := defaults[upper]; ok {
		return v
	}
	return "[" + strings.ToLower(name) + "]"
}

// KnownDefault reports whether name has an entry in the default table and
// returns it. Path resolution uses this to default known names without
// introducing bracket characters into file paths.
func KnownDefault(name string) (string, bool) {
	v, ok := defaults[strings.ToUpper(name)]
	return v, ok
}

// Placeholders returns the distinct placeholder names present in tmpl, in
// order of first appearance, uppercased.
func Placeholders(tmpl string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
		name := strings.ToUpper(m[1])
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
