package tabular

import "strings"

// quoteTracker follows quoted spans across a byte scan. The delimiter
// detector and the record parser both advance through text with it, so
// they can never disagree about what counts as "inside quotes".
type quoteTracker struct {
	inQuotes bool
}

// advance consumes the byte at s[i] and returns the index of the next
// byte to examine. A doubled quote inside a span is an escaped literal
// quote: both bytes are consumed and the span stays open.
func (t *quoteTracker) advance(s string, i int) (next int, escapedQuote bool) {
	if s[i] != '"' {
		return i + 1, false
	}
	if t.inQuotes && i+1 < len(s) && s[i+1] == '"' {
		return i + 2, true
	}
	t.inQuotes = !t.inQuotes
	return i + 1, false
}

// countOutsideQuotes counts occurrences of delim in line that sit outside
// quoted spans. Quote state resets per call, i.e. per line.
func countOutsideQuotes(line string, delim byte) int {
	var t quoteTracker
	n := 0
	for i := 0; i < len(line); {
		if line[i] == delim && !t.inQuotes {
			n++
		}
		i, _ = t.advance(line, i)
	}
	return n
}

// splitRecords splits text into records on line breaks outside quoted
// spans, so a quoted field may span multiple lines. Blank and
// whitespace-only lines produce no record. emit returning false stops
// the scan.
func splitRecords(text string, emit func(rec string) bool) {
	var t quoteTracker
	start := 0
	for i := 0; i < len(text); {
		c := text[i]
		if (c == '\n' || c == '\r') && !t.inQuotes {
			rec := text[start:i]
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			i++
			start = i
			if strings.TrimSpace(rec) != "" && !emit(rec) {
				return
			}
			continue
		}
		i, _ = t.advance(text, i)
	}
	if rec := text[start:]; strings.TrimSpace(rec) != "" {
		emit(rec)
	}
}

// splitFields splits one record into fields on delim, stripping field
// quotes and unescaping doubled quotes. clean is false when the record
// ends inside an unterminated quoted span.
func splitFields(rec string, delim byte) (fields []string, clean bool) {
	var t quoteTracker
	var buf strings.Builder
	for i := 0; i < len(rec); {
		c := rec[i]
		if c == delim && !t.inQuotes {
			fields = append(fields, buf.String())
			buf.Reset()
			i++
			continue
		}
		next, escaped := t.advance(rec, i)
		if escaped {
			buf.WriteByte('"')
		} else if c != '"' {
			buf.WriteByte(c)
		}
		i = next
	}
	fields = append(fields, buf.String())
	return fields, !t.inQuotes
}
