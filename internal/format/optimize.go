package format

import (
	"strings"

	"git.home.luguber.info/inful/docforge/internal/markdown"
)

// Optimize applies the enabled optimization passes in their fixed order.
func Optimize(doc string, opt Optimization) string {
	if opt.RemoveExamples {
		doc = removeExamples(doc)
	}
	if opt.CompressWhitespace {
		doc = compressWhitespace(doc)
	}
	if opt.ShortenDescriptions {
		doc = shortenDescriptions(doc)
	}
	return doc
}

// removeExamples deletes every "Example"/"Examples" heading together with its
// body, up to the next heading of any level or end of document.
func removeExamples(doc string) string {
	lines := strings.Split(doc, "\n")
	var out []string

	inFence := false
	skipping := false
	for _, line := range lines {
		if markdown.IsFenceDelimiter(line) {
			inFence = !inFence
			if !skipping {
				out = append(out, line)
			}
			continue
		}
		if !inFence {
			if title, ok := headingTitle(line); ok {
				skipping = isExampleTitle(title)
				if skipping {
					continue
				}
			}
		}
		if !skipping {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func headingTitle(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimLeft(trimmed, "#")), true
}

func isExampleTitle(title string) bool {
	lower := strings.ToLower(title)
	return lower == "example" || lower == "examples" ||
		strings.HasPrefix(lower, "example ") || strings.HasPrefix(lower, "examples ")
}

// compressWhitespace collapses runs of two or more blank lines into one.
func compressWhitespace(doc string) string {
	return blankRunPattern.ReplaceAllString(doc, "\n\n")
}

// shortenDescriptions drops every 4th whitespace-delimited word from prose
// lines. A crude, intentionally lossy compaction, not a summarizer.
// Headings, table lines, and fenced content are left alone.
func shortenDescriptions(doc string) string {
	lines := strings.Split(doc, "\n")
	inFence := false
	for i, line := range lines {
		if markdown.IsFenceDelimiter(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || markdown.IsTableLine(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 4 {
			continue
		}
		kept := make([]string, 0, len(words))
		for idx, w := range words {
			if (idx+1)%4 == 0 {
				continue
			}
			kept = append(kept, w)
		}
		lines[i] = strings.Join(kept, " ")
	}
	return strings.Join(lines, "\n")
}
