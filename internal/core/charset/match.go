package charset

import (
	"cmp"
	"slices"
)

// UnknownLanguage is reported when no language could be attached to a match
const UnknownLanguage = "Unknown"

// UTF8 is the canonical codec label for UTF-8
const UTF8 = "utf_8"

// Match is one ranked guess for a byte sequence
type Match struct {
	Encoding string  // codec label, e.g. "utf_8", "cp1252"; "" when the detector could not name it
	Language string  // English language name, or UnknownLanguage
	Chaos    float64 // 0 = perfectly plausible decoding, 1 = noise
	BOM      bool    // input starts with this encoding's byte order mark
}

// Confidence is the complement of Chaos
func (m Match) Confidence() float64 { return 1 - m.Chaos }

// Matches is ordered best first (ascending chaos)
type Matches []Match

// Best returns a copy of the top ranked match, or nil when there is none
func (ms Matches) Best() *Match {
	if len(ms) == 0 {
		return nil
	}
	m := ms[0]
	return &m
}

// Get returns a copy of the match for encoding label, or nil
func (ms Matches) Get(encoding string) *Match {
	for _, m := range ms {
		if m.Encoding == encoding {
			return &m
		}
	}
	return nil
}

// Encodings lists the labels in rank order
func (ms Matches) Encodings() []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Encoding
	}
	return out
}

// rank sorts by ascending chaos (stable) and keeps only the best match per label
func rank(ms Matches) Matches {
	slices.SortStableFunc(ms, func(a, b Match) int { return cmp.Compare(a.Chaos, b.Chaos) })
	seen := make(map[string]struct{}, len(ms))
	out := ms[:0]
	for _, m := range ms {
		if _, dup := seen[m.Encoding]; dup {
			continue
		}
		seen[m.Encoding] = struct{}{}
		out = append(out, m)
	}
	return out
}
