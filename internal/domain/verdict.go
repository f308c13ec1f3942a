package domain

import "fmt"

// VerdictKind enumerates the four possible classification outcomes.
type VerdictKind string

const (
	VerdictFake      VerdictKind = "fake"
	VerdictReal      VerdictKind = "real"
	VerdictUnknown   VerdictKind = "unknown"
	VerdictNoMatches VerdictKind = "no_matches"
)

// Verdict is the result of one classification call. It is produced fresh per
// request and never cached or persisted.
type Verdict struct {
	Kind   VerdictKind `json:"kind"`
	Score  float64     `json:"score,omitempty"`  // similarity of the deciding match
	Reason string      `json:"reason,omitempty"` // curator note from the reference entry
}

// FakeVerdict builds a FAKE verdict from the deciding match.
func FakeVerdict(score float64, reason string) Verdict {
	return Verdict{Kind: VerdictFake, Score: score, Reason: reason}
}

// RealVerdict builds a REAL verdict from the deciding match.
func RealVerdict(score float64, reason string) Verdict {
	return Verdict{Kind: VerdictReal, Score: score, Reason: reason}
}

// UnknownVerdict builds an UNKNOWN verdict carrying the top-ranked match's
// similarity score.
func UnknownVerdict(topScore float64) Verdict {
	return Verdict{Kind: VerdictUnknown, Score: topScore}
}

// NoMatchesVerdict builds the verdict for an empty result set.
func NoMatchesVerdict() Verdict {
	return Verdict{Kind: VerdictNoMatches}
}

// String renders the verdict as human-readable text with the similarity
// score formatted to two decimal places.
func (v Verdict) String() string {
	switch v.Kind {
	case VerdictFake:
		return fmt.Sprintf("Likely FAKE (similarity %.2f). Reason: %s", v.Score, v.Reason)
	case VerdictReal:
		return fmt.Sprintf("Likely GENUINE (similarity %.2f). Reason: %s", v.Score, v.Reason)
	case VerdictUnknown:
		return fmt.Sprintf("Unknown product: no close match in reference data (top similarity %.2f)", v.Score)
	case VerdictNoMatches:
		return "No reference matches found"
	default:
		return "Unrecognized verdict"
	}
}
