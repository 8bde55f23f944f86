// Package markdown provides structural analysis of Markdown documents:
// heading-based section location, explicit format markers, and partitioning
// of text into code, table, and prose runs.
//
// This is an analysis API; it never rewrites Markdown itself. Callers that
// transform content splice the returned byte ranges so that everything
// outside the range is preserved exactly.
package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Section describes a located section body as a byte range into the source
// document. BodyStart..BodyEnd excludes the heading (or marker) line itself so
// a formatter can rewrite the body without touching its delimiter.
type Section struct {
	Heading   string
	BodyStart int
	BodyEnd   int
}

// markerPattern matches explicit section markers of the form
// <!-- AI_FORMAT: section=<name> -->.
var markerPattern = regexp.MustCompile(`^\s*<!--\s*AI_FORMAT:\s*section=(.+?)\s*-->\s*$`)

// NormalizeSectionName lowercases a section name and collapses the separator
// characters space, '-', and '_' into single spaces, so "Getting-Started",
// "getting_started", and "Getting Started" all address the same section.
func NormalizeSectionName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_':
			return ' '
		}
		return r
	}, strings.ToLower(name))
	return strings.Join(strings.Fields(mapped), " ")
}

// heading is an internal record of a heading's position in the source.
type heading struct {
	text      string
	lineStart int // offset of the first byte of the heading line
	lineEnd   int // offset just past the heading line's newline
}

// FindSection locates the named section in doc. Headings of any level are
// tried first (case-insensitive, separator-normalized); the body runs from
// the end of the heading line to the start of the next heading of any level,
// or end of document. Only when no heading matches, an explicit
// AI_FORMAT marker delimits the body up to the next marker or end of
// document. The second return value is false when neither matches.
func FindSection(doc string, name string) (Section, bool) {
	want := NormalizeSectionName(name)
	if want == "" {
		return Section{}, false
	}

	headings := collectHeadings(doc)
	for i, h := range headings {
		if NormalizeSectionName(h.text) != want {
			continue
		}
		end := len(doc)
		if i+1 < len(headings) {
			end = headings[i+1].lineStart
		}
		return Section{Heading: h.text, BodyStart: h.lineEnd, BodyEnd: end}, true
	}

	return findMarkerSection(doc, want)
}

// collectHeadings parses doc with goldmark and returns every heading in
// document order with the byte range of its source line. Headings inside
// fenced code blocks are not headings to the parser, so they never match.
func collectHeadings(doc string) []heading {
	source := []byte(doc)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var out []heading
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok || h.Lines().Len() == 0 {
			return gmast.WalkContinue, nil
		}

		var sb strings.Builder
		for i := 0; i < h.Lines().Len(); i++ {
			seg := h.Lines().At(i)
			sb.Write(source[seg.Start:seg.Stop])
		}

		first := h.Lines().At(0)
		last := h.Lines().At(h.Lines().Len() - 1)
		out = append(out, heading{
			text:      sb.String(),
			lineStart: lineStartBefore(doc, first.Start),
			lineEnd:   lineEndAfter(doc, last.Stop),
		})
		return gmast.WalkContinue, nil
	})
	return out
}

func findMarkerSection(doc, want string) (Section, bool) {
	offset := 0
	matchedStart := -1
	matchedName := ""
	for offset <= len(doc) {
		lineEnd := strings.IndexByte(doc[offset:], '\n')
		var next int
		var line string
		if lineEnd < 0 {
			line = doc[offset:]
			next = len(doc) + 1
		} else {
			line = doc[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		}

		if m := markerPattern.FindStringSubmatch(line); m != nil {
			if matchedStart >= 0 {
				// Next marker of any name closes the matched region.
				return Section{Heading: matchedName, BodyStart: matchedStart, BodyEnd: offset}, true
			}
			if NormalizeSectionName(m[1]) == want {
				matchedStart = next
				if matchedStart > len(doc) {
					matchedStart = len(doc)
				}
				matchedName = m[1]
			}
		}
		offset = next
	}
	if matchedStart >= 0 {
		return Section{Heading: matchedName, BodyStart: matchedStart, BodyEnd: len(doc)}, true
	}
	return Section{}, false
}

// lineStartBefore returns the offset of the first byte of the line containing
// offset pos (pos may point anywhere inside the line).
func lineStartBefore(doc string, pos int) int {
	if pos > len(doc) {
		pos = len(doc)
	}
	i := strings.LastIndexByte(doc[:pos], '\n')
	return i + 1
}

// lineEndAfter returns the offset just past the newline that terminates the
// line containing pos, or len(doc) when the line is unterminated.
func lineEndAfter(doc string, pos int) int {
	if pos >= len(doc) {
		return len(doc)
	}
	i := strings.IndexByte(doc[pos:], '\n')
	if i < 0 {
		return len(doc)
	}
	return pos + i + 1
}
