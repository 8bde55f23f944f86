// Package format rewrites targeted sections of a Markdown document using a
// closed set of formatting strategies, then applies document-wide token
// optimizations. Headings, fenced code blocks, and table blocks are
// structural regions and are never rewritten, even inside a targeted section.
package format

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind enumerates the section formatting strategies. The set is closed:
// dispatch happens through an exhaustive switch, not a string-keyed lookup,
// so an unhandled kind is a compile-time hole rather than a silent fallthrough.
type Kind int

const (
	KindBulletPoints Kind = iota
	KindNumberedSteps
	KindTable
	KindCodeBlocks
	KindMinimal
	KindStructured
)

var kindNames = [...]string{
	KindBulletPoints:  "bullet_points",
	KindNumberedSteps: "numbered_steps",
	KindTable:         "table",
	KindCodeBlocks:    "code_blocks",
	KindMinimal:       "minimal",
	KindStructured:    "structured",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a manifest string to its Kind. Unknown strings are an error;
// the manifest loader surfaces them as manifest validation failures.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown section format kind %q", s)
}

// UnmarshalYAML lets manifests declare kinds as plain strings.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML renders the kind as its manifest string.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}
