// Package dialect infers the delimiter convention of a delimited text file
// from a bounded byte sample.
package dialect

import (
	"bytes"
	"strings"
)

// Dialect describes the inferred delimiter convention.
type Dialect struct {
	// Comma is the field delimiter, named after encoding/csv's knob.
	Comma rune

	// Fallback reports that sniffing failed and the comma default was used.
	Fallback bool
}

// candidates are tried in order; ties go to the earlier one.
var candidates = []byte{',', '\t', ';', '|'}

// Sniff infers the delimiter from a byte sample. The sample is cut at its
// last newline so a truncated trailing line cannot skew the counts. When no
// candidate delimiter is consistent enough, Sniff falls back to comma and
// reports the fallback so the caller can surface a diagnostic.
func Sniff(sample []byte) Dialect {
	if i := bytes.LastIndexByte(sample, '\n'); i > 0 {
		sample = sample[:i+1]
	}

	lines := splitSampleLines(sample)

	best := Dialect{Comma: ',', Fallback: true}
	bestScore := 0.0
	for _, delim := range candidates {
		if score := scoreDelim(lines, delim); score > bestScore {
			bestScore = score
			best = Dialect{Comma: rune(delim)}
		}
	}
	return best
}

func splitSampleLines(sample []byte) []string {
	var lines []string
	for _, raw := range strings.Split(string(sample), "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// scoreDelim scores a candidate delimiter by how consistently it splits the
// sample lines. A delimiter only qualifies when it appears on every counted
// line and at least 80% of the lines agree on one count.
func scoreDelim(lines []string, delim byte) float64 {
	if len(lines) == 0 {
		return 0
	}

	freq := map[int]int{}
	for _, ln := range lines {
		freq[countDelimitersOutsideQuotes(ln, delim)]++
	}

	bestCount, bestFreq := 0, 0
	for cnt, f := range freq {
		if f > bestFreq || (f == bestFreq && cnt > bestCount) {
			bestCount = cnt
			bestFreq = f
		}
	}
	if bestCount < 1 {
		return 0
	}

	ratio := float64(bestFreq) / float64(len(lines))
	if ratio < 0.8 {
		return 0
	}
	return ratio * float64(bestCount+1)
}

// countDelimitersOutsideQuotes counts delimiter occurrences not inside
// double-quoted fields.
func countDelimitersOutsideQuotes(line string, delim byte) int {
	count := 0
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"':
			inQuote = !inQuote
		case !inQuote && line[i] == delim:
			count++
		}
	}
	return count
}
