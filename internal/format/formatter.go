package format

import (
	"git.home.luguber.info/inful/docforge/internal/markdown"
)

// SectionFormat pairs a section name with the strategy to apply to it.
type SectionFormat struct {
	Section string
	Kind    Kind
}

// Optimization holds the document-wide token optimization flags. They run
// after section formatting, always in the fixed order remove_examples,
// compress_whitespace, shorten_descriptions.
type Optimization struct {
	RemoveExamples      bool `yaml:"remove_examples"`
	CompressWhitespace  bool `yaml:"compress_whitespace"`
	ShortenDescriptions bool `yaml:"shorten_descriptions"`
}

// Apply runs every declared section format in order, then the optimization
// passes. With no sections and no flags it returns doc unchanged.
func Apply(doc string, sections []SectionFormat, opt Optimization) string {
	for _, sf := range sections {
		doc = FormatSection(doc, sf.Section, sf.Kind)
	}
	return Optimize(doc, opt)
}

// FormatSection locates the named section and rewrites its body with the
// given strategy. A targeting miss is a silent no-op: the document is
// returned byte-identical.
func FormatSection(doc, section string, kind Kind) string {
	sec, ok := markdown.FindSection(doc, section)
	if !ok {
		return doc
	}
	body := doc[sec.BodyStart:sec.BodyEnd]
	formatted := kind.strategyFor().apply(sec.Heading, body)
	if formatted == body {
		return doc
	}
	return doc[:sec.BodyStart] + formatted + doc[sec.BodyEnd:]
}
