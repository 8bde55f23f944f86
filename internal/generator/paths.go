package generator

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docforge/internal/template"
)

var pathPlaceholderPattern = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_]*)\}`)

// resolveOutputPattern turns an output path pattern into a concrete relative
// path. Pass 1 replaces the lower- and uppercase spellings of every supplied
// variable. Pass 2 defaults any remaining {WORD} placeholder: names known to
// the resolver's default table take their default value, anything else
// becomes its bare lowercase name so the result stays filesystem-safe.
func resolveOutputPattern(pattern string, vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := vars[k]
		pattern = strings.ReplaceAll(pattern, "{"+strings.ToLower(k)+"}", v)
		pattern = strings.ReplaceAll(pattern, "{"+strings.ToUpper(k)+"}", v)
	}

	return pathPlaceholderPattern.ReplaceAllStringFunc(pattern, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := template.KnownDefault(name); ok {
			return v
		}
		return strings.ToLower(name)
	})
}

// deriveAIPath places the AI variant next to the human document: the final
// directory gains a literal "ai" subdirectory and the base name gains an
// "-ai" suffix before its extension.
func deriveAIPath(humanPath string) string {
	dir := filepath.Dir(humanPath)
	base := filepath.Base(humanPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, "ai", stem+"-ai"+ext)
}
