package formula

// Band is a single classification rule: a half-open (or closed) numeric
// range and the clinical label it maps to. Boundaries are inclusive on
// one side only and vary per formula, so bands carry their inclusivity
// explicitly rather than assuming a convention.
type Band struct {
	Min        *float64
	Max        *float64
	IncludeMin bool
	IncludeMax bool
	Label      string
}

// Scale is an ordered list of bands evaluated top to bottom; the first
// matching band determines the label. Order is the declared clinical
// order, never sorted, and lookup is never binary-searched.
type Scale []Band

// Classify returns the label of the first band matching v, or the empty
// string when no band matches.
func (s Scale) Classify(v float64) string {
	for _, band := range s {
		if band.matches(v) {
			return band.Label
		}
	}
	return ""
}

func (b Band) matches(v float64) bool {
	if b.Min != nil {
		if b.IncludeMin {
			if v < *b.Min {
				return false
			}
		} else if v <= *b.Min {
			return false
		}
	}
	if b.Max != nil {
		if b.IncludeMax {
			if v > *b.Max {
				return false
			}
		} else if v >= *b.Max {
			return false
		}
	}
	return true
}

// BandBelow matches values under max (inclusive when includeMax is set).
func BandBelow(max float64, includeMax bool, label string) Band {
	return Band{Max: &max, IncludeMax: includeMax, Label: label}
}

// BandAbove matches values over min (inclusive when includeMin is set).
func BandAbove(min float64, includeMin bool, label string) Band {
	return Band{Min: &min, IncludeMin: includeMin, Label: label}
}

// BandRange matches values between min and max with per-side inclusivity.
func BandRange(min float64, includeMin bool, max float64, includeMax bool, label string) Band {
	return Band{Min: &min, IncludeMin: includeMin, Max: &max, IncludeMax: includeMax, Label: label}
}
