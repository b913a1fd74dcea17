package text

import "golang.org/x/text/unicode/bidi"

// DetectDirection returns the base direction of s according to the
// Unicode bidirectional algorithm: the direction of the first strong
// character, LTR when the text has none.
func DetectDirection(s string) Direction {
	if s == "" {
		return DirectionLTR
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(s); err != nil {
		return DirectionLTR
	}
	if p.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}
