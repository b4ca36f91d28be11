package tabular

import "strings"

// estimateSampleSize caps how many leading characters Estimate inspects.
const estimateSampleSize = 10000

// Estimate approximates the total row count of text without parsing it:
// line breaks are counted in a leading sample and extrapolated linearly
// over the full length. The result is a UI hint, never an exact count,
// and is always at least 1.
func Estimate(text string) int {
	if len(text) == 0 {
		return 1
	}

	sample := text
	if len(sample) > estimateSampleSize {
		sample = sample[:estimateSampleSize]
	}

	breaks := strings.Count(sample, "\n")
	if breaks == 0 {
		return 1
	}

	est := int(float64(len(text)) / float64(len(sample)) * float64(breaks))
	if est < 1 {
		est = 1
	}
	return est
}
