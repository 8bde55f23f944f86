package markdown

import "strings"

// RunKind classifies a contiguous run of lines.
type RunKind int

const (
	RunProse RunKind = iota
	RunCode
	RunTable
)

// Run is a maximal sequence of consecutive lines of one structural kind.
// Code runs span from a fence delimiter to its closing delimiter inclusive
// (or to the end of input when unterminated). Table runs are maximal
// sequences of '|'-prefixed lines.
type Run struct {
	Kind  RunKind
	Lines []string
}

// IsFenceDelimiter reports whether a line opens or closes a fenced code block.
func IsFenceDelimiter(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// IsTableLine reports whether a line belongs to a table block.
func IsTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "|")
}

// PartitionRuns splits lines into contiguous {code, table, prose} runs.
// Fence state toggles on delimiter lines; table detection applies only
// outside fences.
func PartitionRuns(lines []string) []Run {
	var runs []Run
	appendLine := func(kind RunKind, line string) {
		if len(runs) > 0 && runs[len(runs)-1].Kind == kind {
			runs[len(runs)-1].Lines = append(runs[len(runs)-1].Lines, line)
			return
		}
		runs = append(runs, Run{Kind: kind, Lines: []string{line}})
	}

	inFence := false
	for _, line := range lines {
		switch {
		case IsFenceDelimiter(line):
			if inFence {
				// Closing delimiter belongs to the code run it terminates.
				appendLine(RunCode, line)
				inFence = false
			} else {
				inFence = true
				runs = append(runs, Run{Kind: RunCode, Lines: []string{line}})
			}
		case inFence:
			appendLine(RunCode, line)
		case IsTableLine(line):
			appendLine(RunTable, line)
		default:
			appendLine(RunProse, line)
		}
	}
	return runs
}
