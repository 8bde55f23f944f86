package format

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docforge/internal/markdown"
)

// TruncationMarker is the literal line substituted for the middle of an
// oversized fenced block by the code_blocks strategy.
const TruncationMarker = "... (truncated) ..."

// convertMinLength is the minimum trimmed line length for the bullet and
// numbered scans to touch a line.
const convertMinLength = 10

// strategy rewrites a section body. The heading is the section's own heading
// text; only the structured strategy consumes it.
type strategy interface {
	apply(heading, body string) string
}

// strategyFor dispatches a Kind to its implementation. The switch is
// exhaustive over the closed Kind set.
func (k Kind) strategyFor() strategy {
	switch k {
	case KindBulletPoints:
		return bulletPoints{}
	case KindNumberedSteps:
		return numberedSteps{}
	case KindTable:
		return tableExtract{}
	case KindCodeBlocks:
		return codeBlocks{}
	case KindMinimal:
		return minimal{}
	case KindStructured:
		return structured{}
	}
	panic(fmt.Sprintf("unhandled format kind %v", k))
}

// convertible reports whether a line is eligible for bullet/numbered
// conversion: non-blank, not a heading, not already a bullet, not a table
// line, and longer than the trimmed-length threshold. Fenced lines are
// excluded by the caller's fence tracking.
func convertible(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return false
	case strings.HasPrefix(trimmed, "#"):
		return false
	case strings.HasPrefix(trimmed, "-"), strings.HasPrefix(trimmed, "*"):
		return false
	case strings.HasPrefix(trimmed, "|"):
		return false
	}
	return len(trimmed) > convertMinLength
}

type bulletPoints struct{}

func (bulletPoints) apply(_, body string) string {
	lines := strings.Split(body, "\n")
	inFence := false
	for i, line := range lines {
		if markdown.IsFenceDelimiter(line) {
			inFence = !inFence
			continue
		}
		if inFence || !convertible(line) {
			continue
		}
		lines[i] = "- " + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

type numberedSteps struct{}

func (numberedSteps) apply(_, body string) string {
	lines := strings.Split(body, "\n")
	inFence := false
	step := 0
	for i, line := range lines {
		if markdown.IsFenceDelimiter(line) {
			inFence = !inFence
			continue
		}
		if inFence || !convertible(line) {
			continue
		}
		step++
		lines[i] = fmt.Sprintf("%d. %s", step, strings.TrimSpace(line))
	}
	return strings.Join(lines, "\n")
}

// tableExtract scans for key: value pairs and appends a two-column table
// after the original content. The body itself is never rewritten.
type tableExtract struct{}

func (tableExtract) apply(_, body string) string {
	type pair struct{ key, value string }
	var pairs []pair

	inFence := false
	for _, line := range strings.Split(body, "\n") {
		if markdown.IsFenceDelimiter(line) {
			inFence = !inFence
			continue
		}
		if inFence || markdown.IsTableLine(line) {
			continue
		}
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" || value == "" || strings.Contains(key, "|") {
			continue
		}
		pairs = append(pairs, pair{key, value})
	}
	if len(pairs) == 0 {
		return body
	}

	var sb strings.Builder
	sb.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString("\n| Key | Value |\n|-----|-------|\n")
	for _, p := range pairs {
		fmt.Fprintf(&sb, "| %s | %s |\n", p.key, p.value)
	}
	return sb.String()
}

// codeBlocks collapses oversized fenced blocks. A block longer than 20 lines
// (fence delimiters included) keeps its first 11 lines and last 5 with one
// truncation marker line between them.
type codeBlocks struct{}

func (codeBlocks) apply(_, body string) string {
	lines := strings.Split(body, "\n")
	var out []string

	for i := 0; i < len(lines); i++ {
		if !markdown.IsFenceDelimiter(lines[i]) {
			out = append(out, lines[i])
			continue
		}
		close := -1
		for j := i + 1; j < len(lines); j++ {
			if markdown.IsFenceDelimiter(lines[j]) {
				close = j
				break
			}
		}
		if close < 0 {
			// Unterminated fence: leave the rest untouched.
			out = append(out, lines[i:]...)
			break
		}
		block := lines[i : close+1]
		if len(block) > 20 {
			out = append(out, block[:11]...)
			out = append(out, TruncationMarker)
			out = append(out, block[len(block)-5:]...)
		} else {
			out = append(out, block...)
		}
		i = close
	}
	return strings.Join(out, "\n")
}

var (
	blankRunPattern   = regexp.MustCompile(`\n{3,}`)
	multiSpacePattern = regexp.MustCompile(`[ \t]{2,}`)
	punctSpacePattern = regexp.MustCompile(`[ \t]+([:,])`)
)

// minimal partitions the section into code, table, and prose runs. Code and
// table runs pass through untouched; prose runs get their whitespace
// normalized: consecutive blank lines collapse to one, repeated spaces
// collapse to one, and spacing tightens before ':' and ','.
type minimal struct{}

func (minimal) apply(_, body string) string {
	runs := markdown.PartitionRuns(strings.Split(body, "\n"))
	var out []string
	for _, run := range runs {
		if run.Kind != markdown.RunProse {
			out = append(out, run.Lines...)
			continue
		}
		blanks := 0
		for _, line := range run.Lines {
			if strings.TrimSpace(line) == "" {
				blanks++
				if blanks > 1 {
					continue
				}
				out = append(out, "")
				continue
			}
			blanks = 0
			out = append(out, normalizeProseLine(line))
		}
	}
	return strings.Join(out, "\n")
}

func normalizeProseLine(line string) string {
	line = multiSpacePattern.ReplaceAllString(line, " ")
	return punctSpacePattern.ReplaceAllString(line, "$1")
}

// structured rewrites prose lines as key points, but only while the nearest
// preceding heading (starting with the section's own heading) contains
// "Overview" or "Summary".
type structured struct{}

func (structured) apply(heading, body string) string {
	lines := strings.Split(body, "\n")
	currentTitle := heading
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
		if strings.HasPrefix(trimmed, "#") {
			currentTitle = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			continue
		}
		if trimmed == "" || markdown.IsTableLine(line) || strings.HasPrefix(trimmed, "**Key Point:**") {
			continue
		}
		if titleWantsKeyPoints(currentTitle) {
			lines[i] = "**Key Point:** " + trimmed
		}
	}
	return strings.Join(lines, "\n")
}

func titleWantsKeyPoints(title string) bool {
	lower := strings.ToLower(title)
	return strings.Contains(lower, "overview") || strings.Contains(lower, "summary")
}
