// Package tabular implements the delimited-text pipeline: delimiter
// detection, quote-aware record parsing, row-count estimation, structural
// validation, and the initial-load/load-more orchestration on top.
package tabular

import "strings"

// Auto asks Detect to inspect the sample instead of honoring an override.
const Auto = "auto"

// detectSampleLines caps how many non-blank lines Detect scores.
const detectSampleLines = 5

// Delimiter is the single character separating fields in a record. The
// candidate set is closed (comma, semicolon, tab, pipe); anything else is
// a custom override carrying its literal character.
type Delimiter struct {
	name string
	char byte
}

var (
	Comma     = Delimiter{"Comma", ','}
	Semicolon = Delimiter{"Semicolon", ';'}
	Tab       = Delimiter{"Tab", '\t'}
	Pipe      = Delimiter{"Pipe", '|'}
)

// candidates in declaration order; earlier wins score ties.
var candidates = []Delimiter{Comma, Semicolon, Tab, Pipe}

// Custom returns the Delimiter for an override character, folding known
// candidates back to their canonical value.
func Custom(c byte) Delimiter {
	for _, d := range candidates {
		if d.char == c {
			return d
		}
	}
	return Delimiter{"Custom", c}
}

// Char returns the literal delimiter character.
func (d Delimiter) Char() byte { return d.char }

// DisplayName returns "Comma", "Semicolon", "Tab", "Pipe" or "Custom".
func (d Delimiter) DisplayName() string { return d.name }

// Detect picks the delimiter for a source text. A non-auto override is
// returned verbatim without inspecting the sample; the two-character
// escape sequence `\t` is translated to a literal tab. Otherwise each
// candidate is scored over up to the first 5 non-blank sample lines and
// the highest score wins, defaulting to comma.
func Detect(sample, override string) Delimiter {
	if override != "" && override != Auto {
		if override == `\t` {
			return Tab
		}
		return Custom(override[0])
	}

	lines := sampleLines(sample, detectSampleLines)
	if len(lines) == 0 {
		return Comma
	}

	best := Comma
	bestScore := 0
	for _, cand := range candidates {
		if s := scoreCandidate(lines, cand.char); s > bestScore {
			best = cand
			bestScore = s
		}
	}
	return best
}

// scoreCandidate counts delim per line outside quoted spans. A count that
// is identical and nonzero across two or more lines is the strongest
// signal and scores count*100; a nonzero but inconsistent first line
// scores count*10; a single sampled line scores its raw count.
func scoreCandidate(lines []string, delim byte) int {
	counts := make([]int, len(lines))
	for i, line := range lines {
		counts[i] = countOutsideQuotes(line, delim)
	}

	if counts[0] == 0 {
		return 0
	}
	if len(counts) == 1 {
		return counts[0]
	}
	consistent := true
	for _, c := range counts[1:] {
		if c != counts[0] {
			consistent = false
			break
		}
	}
	if consistent {
		return counts[0] * 100
	}
	return counts[0] * 10
}

func sampleLines(sample string, max int) []string {
	var lines []string
	for _, line := range strings.FieldsFunc(sample, func(r rune) bool {
		return r == '\n' || r == '\r'
	}) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == max {
			break
		}
	}
	return lines
}
