package domain

// Decision is the outcome of filtering a single raw line.
type Decision int

// Filter decisions, in the order the checks run.
const (
	// DecisionAccepted means the candidate passed every check.
	DecisionAccepted Decision = iota

	// DecisionEmpty means the raw line was empty.
	DecisionEmpty

	// DecisionBlank means the line held only whitespace.
	DecisionBlank

	// DecisionPattern means the candidate contained a disallowed character.
	DecisionPattern

	// DecisionTooShort means the candidate was below the minimum length.
	DecisionTooShort

	// DecisionTooLong means the candidate exceeded the maximum length.
	DecisionTooLong
)

// String returns a short name for the decision.
func (d Decision) String() string {
	switch d {
	case DecisionAccepted:
		return "accepted"
	case DecisionEmpty:
		return "empty"
	case DecisionBlank:
		return "blank"
	case DecisionPattern:
		return "pattern"
	case DecisionTooShort:
		return "too_short"
	case DecisionTooLong:
		return "too_long"
	default:
		return unknownDescription
	}
}

// NormaliseStats counts how each input line was handled.
// Lines equals the sum of all other fields.
type NormaliseStats struct {
	Lines      int
	Empty      int
	Blank      int
	Pattern    int
	TooShort   int
	TooLong    int
	Duplicates int
	Accepted   int
}

// Record counts one line with the given decision. A duplicate is an
// accepted candidate that was already in the set.
func (s *NormaliseStats) Record(d Decision, duplicate bool) {
	s.Lines++
	switch d {
	case DecisionAccepted:
		if duplicate {
			s.Duplicates++
		} else {
			s.Accepted++
		}
	case DecisionEmpty:
		s.Empty++
	case DecisionBlank:
		s.Blank++
	case DecisionPattern:
		s.Pattern++
	case DecisionTooShort:
		s.TooShort++
	case DecisionTooLong:
		s.TooLong++
	}
}

// Rejected returns the number of lines dropped by a filter rule.
func (s NormaliseStats) Rejected() int {
	return s.Empty + s.Blank + s.Pattern + s.TooShort + s.TooLong
}

// NormaliseResult is the output of running the filter over a line sequence.
type NormaliseResult struct {
	Words WordSet
	Stats NormaliseStats
}
