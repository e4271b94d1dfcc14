package generator

import (
	"fmt"
	"strings"
)

// Position identifies where in the address a pattern matched.
type Position int

const (
	PositionStart       Position = iota // Match at the beginning of the address
	PositionEnd                         // Match at the end of the address
	PositionContains                    // Match at an arbitrary position
	PositionStartAndEnd                 // Combined prefix and suffix match
)

// MatchOutcome records which pattern matched a candidate address and where.
// For combined start+end searches the End fields carry the suffix leg.
type MatchOutcome struct {
	Pattern  string   // Configured pattern that matched, original spelling
	Position Position // Where the match occurred
	Index    int      // Byte offset of the match (PositionContains only)
	Matched  string   // Matched substring as it appears in the address

	EndPattern string // Configured suffix pattern (PositionStartAndEnd only)
	EndMatched string // Matched suffix as it appears in the address
}

// PatternText returns the configured pattern(s) satisfied by the address.
func (o MatchOutcome) PatternText() string {
	if o.Position == PositionStartAndEnd {
		return fmt.Sprintf("start '%s' + end '%s'", o.Pattern, o.EndPattern)
	}
	return o.Pattern
}

// PositionText returns the match location in human-readable form:
// "start", "end", "index N", or both legs for combined searches.
func (o MatchOutcome) PositionText() string {
	switch o.Position {
	case PositionStart:
		return "start"
	case PositionEnd:
		return "end"
	case PositionStartAndEnd:
		return fmt.Sprintf("start '%s' and end '%s'", o.Matched, o.EndMatched)
	default:
		return fmt.Sprintf("index %d", o.Index)
	}
}

// MatchText returns the matched substring(s) in the address's own casing.
func (o MatchOutcome) MatchText() string {
	if o.Position == PositionStartAndEnd {
		return o.Matched + " ... " + o.EndMatched
	}
	return o.Matched
}

// pattern is a configured pattern with its precomputed comparison form.
type pattern struct {
	raw string // Original spelling, used for reporting
	cmp string // Comparison form: raw, or lowercased when folding
}

// Matcher decides whether an encoded address satisfies the search
// configuration. It is immutable after construction and safe for
// concurrent use by all workers.
type Matcher struct {
	mode          Mode
	caseSensitive bool
	start         pattern   // StartAndEnd prefix leg
	end           pattern   // StartAndEnd suffix leg
	patterns      []pattern // Alternatives for the single-leg modes, in tie-break order
}

// NewMatcher compiles the matcher for a validated config. Comparison forms
// are folded once here so the per-candidate check only folds the address.
func NewMatcher(config *Config) *Matcher {
	m := &Matcher{
		mode:          config.Mode,
		caseSensitive: config.CaseSensitive,
	}

	compile := func(raw string) pattern {
		if m.caseSensitive {
			return pattern{raw: raw, cmp: raw}
		}
		return pattern{raw: raw, cmp: strings.ToLower(raw)}
	}

	if config.Mode == StartAndEnd {
		m.start = compile(config.StartPattern)
		m.end = compile(config.EndPattern)
		return m
	}

	for _, p := range config.Patterns {
		m.patterns = append(m.patterns, compile(p))
	}
	// Single prefix/suffix searches carry their pattern in the dedicated
	// fields rather than the list.
	if len(m.patterns) == 0 {
		switch {
		case config.StartPattern != "":
			m.patterns = append(m.patterns, compile(config.StartPattern))
		case config.EndPattern != "":
			m.patterns = append(m.patterns, compile(config.EndPattern))
		}
	}
	return m
}

// Match reports whether the address satisfies the configured patterns.
// The first pattern in configured order that satisfies the mode's predicate
// is the one reported. Pure predicate: no state, no side effects.
func (m *Matcher) Match(address string) (MatchOutcome, bool) {
	compareAddr := address
	if !m.caseSensitive {
		compareAddr = strings.ToLower(address)
	}

	if m.mode == StartAndEnd {
		if !strings.HasPrefix(compareAddr, m.start.cmp) || !strings.HasSuffix(compareAddr, m.end.cmp) {
			return MatchOutcome{}, false
		}
		return MatchOutcome{
			Pattern:    m.start.raw,
			Position:   PositionStartAndEnd,
			Matched:    address[:len(m.start.cmp)],
			EndPattern: m.end.raw,
			EndMatched: address[len(address)-len(m.end.cmp):],
		}, true
	}

	for _, p := range m.patterns {
		if len(p.cmp) > len(address) {
			continue
		}
		switch m.mode {
		case StartOnly:
			if strings.HasPrefix(compareAddr, p.cmp) {
				return startOutcome(address, p), true
			}
		case EndOnly:
			if strings.HasSuffix(compareAddr, p.cmp) {
				return endOutcome(address, p), true
			}
		case StartOrEnd:
			if strings.HasPrefix(compareAddr, p.cmp) {
				return startOutcome(address, p), true
			}
			if strings.HasSuffix(compareAddr, p.cmp) {
				return endOutcome(address, p), true
			}
		case Anywhere:
			if i := strings.Index(compareAddr, p.cmp); i >= 0 {
				return MatchOutcome{
					Pattern:  p.raw,
					Position: PositionContains,
					Index:    i,
					Matched:  address[i : i+len(p.cmp)],
				}, true
			}
		}
	}
	return MatchOutcome{}, false
}

func startOutcome(address string, p pattern) MatchOutcome {
	return MatchOutcome{
		Pattern:  p.raw,
		Position: PositionStart,
		Matched:  address[:len(p.cmp)],
	}
}

func endOutcome(address string, p pattern) MatchOutcome {
	return MatchOutcome{
		Pattern:  p.raw,
		Position: PositionEnd,
		Matched:  address[len(address)-len(p.cmp):],
	}
}
