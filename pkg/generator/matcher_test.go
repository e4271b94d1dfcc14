package generator

import (
	"testing"
)

func mustMatcher(t *testing.T, cfg *Config) *Matcher {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config should be valid: %v", err)
	}
	return NewMatcher(cfg)
}

func TestStartOnly(t *testing.T) {
	m := mustMatcher(t, &Config{Mode: StartOnly, StartPattern: "Seek", CaseSensitive: true})

	out, ok := m.Match("Seek1Kq3vPms7LhhD8QrTDyJv6kSnYQgnrFp")
	if !ok {
		t.Fatal("expected prefix match")
	}
	if out.Pattern != "Seek" || out.Position != PositionStart || out.Matched != "Seek" {
		t.Errorf("unexpected outcome: %+v", out)
	}
	if got := out.PositionText(); got != "start" {
		t.Errorf("PositionText = %q, want %q", got, "start")
	}

	if _, ok := m.Match("1SeekKq3vPms7LhhD8QrTDyJv6kSnYQgnrF"); ok {
		t.Error("pattern in the middle must not satisfy start-only matching")
	}
}

func TestStartOnlyPatternList(t *testing.T) {
	m := mustMatcher(t, &Config{Mode: StartOnly, Patterns: []string{"AA", "BB"}, CaseSensitive: true})

	out, ok := m.Match("BBq3vPms7LhhD8QrTDyJv6kSnYQgnrFpXyZ")
	if !ok {
		t.Fatal("expected match on second alternative")
	}
	if out.Pattern != "BB" {
		t.Errorf("matched pattern = %q, want %q", out.Pattern, "BB")
	}
}

func TestEndOnly(t *testing.T) {
	m := mustMatcher(t, &Config{Mode: EndOnly, EndPattern: "seek", CaseSensitive: true})

	out, ok := m.Match("Kq3vPms7LhhD8QrTDyJv6kSnYQgnrFpseek")
	if !ok {
		t.Fatal("expected suffix match")
	}
	if out.Position != PositionEnd || out.Matched != "seek" {
		t.Errorf("unexpected outcome: %+v", out)
	}
	if got := out.PositionText(); got != "end" {
		t.Errorf("PositionText = %q, want %q", got, "end")
	}

	if _, ok := m.Match("seekKq3vPms7LhhD8QrTDyJv6kSnYQgnrFp"); ok {
		t.Error("prefix position must not satisfy end-only matching")
	}
}

func TestCaseFolding(t *testing.T) {
	insensitive := mustMatcher(t, &Config{Mode: StartOnly, StartPattern: "SEEK", CaseSensitive: false})
	out, ok := insensitive.Match("Seek123qqqqqqqqqqqqqqqqqqqqqqqqqqqq")
	if !ok {
		t.Fatal("case-insensitive matching should accept differing case")
	}
	if out.Matched != "Seek" {
		t.Errorf("matched substring should keep the address casing, got %q", out.Matched)
	}
	if out.Pattern != "SEEK" {
		t.Errorf("reported pattern should keep the configured spelling, got %q", out.Pattern)
	}

	sensitive := mustMatcher(t, &Config{Mode: StartOnly, StartPattern: "SEEK", CaseSensitive: true})
	if _, ok := sensitive.Match("Seek123qqqqqqqqqqqqqqqqqqqqqqqqqqqq"); ok {
		t.Error("case-sensitive matching must reject differing case")
	}
}

func TestStartAndEnd(t *testing.T) {
	m := mustMatcher(t, &Config{Mode: StartAndEnd, StartPattern: "So", EndPattern: "ek", CaseSensitive: true})

	out, ok := m.Match("So3vPms7LhhD8QrTDyJv6kSnYQgnrFp3qek")
	if !ok {
		t.Fatal("expected combined match")
	}
	if out.Position != PositionStartAndEnd {
		t.Fatalf("position = %v, want PositionStartAndEnd", out.Position)
	}
	if out.Matched != "So" || out.EndMatched != "ek" {
		t.Errorf("unexpected legs: %+v", out)
	}
	if got := out.PatternText(); got != "start 'So' + end 'ek'" {
		t.Errorf("PatternText = %q", got)
	}
	if got := out.PositionText(); got != "start 'So' and end 'ek'" {
		t.Errorf("PositionText = %q", got)
	}
	if got := out.MatchText(); got != "So ... ek" {
		t.Errorf("MatchText = %q", got)
	}

	// Both legs must hold against the same address.
	if _, ok := m.Match("So3vPms7LhhD8QrTDyJv6kSnYQgnrFp3qex"); ok {
		t.Error("prefix alone must not satisfy start-and-end matching")
	}
	if _, ok := m.Match("Xo3vPms7LhhD8QrTDyJv6kSnYQgnrFp3qek"); ok {
		t.Error("suffix alone must not satisfy start-and-end matching")
	}
}

func TestStartOrEnd(t *testing.T) {
	m := mustMatcher(t, &Config{Mode: StartOrEnd, Patterns: []string{"abc"}, CaseSensitive: true})

	out, ok := m.Match("abcvPms7LhhD8QrTDyJv6kSnYQgnrFp3qqq")
	if !ok || out.Position != PositionStart {
		t.Fatalf("expected start match, got ok=%t %+v", ok, out)
	}
	out, ok = m.Match("qvPms7LhhD8QrTDyJv6kSnYQgnrFp3qqabc")
	if !ok || out.Position != PositionEnd {
		t.Fatalf("expected end match, got ok=%t %+v", ok, out)
	}
	if _, ok := m.Match("qvabcms7LhhD8QrTDyJv6kSnYQgnrFp3qqq"); ok {
		t.Error("middle position must not satisfy start-or-end matching")
	}
}

func TestStartOrEndPatternPrecedence(t *testing.T) {
	// The first configured pattern that matches wins, even when a later
	// pattern would match at an earlier position.
	m := mustMatcher(t, &Config{Mode: StartOrEnd, Patterns: []string{"AA", "BB"}, CaseSensitive: true})

	out, ok := m.Match("BBms7LhhD8QrTDyJv6kSnYQgnrFp3qqqqAA")
	if !ok {
		t.Fatal("expected match")
	}
	if out.Pattern != "AA" || out.Position != PositionEnd {
		t.Errorf("tie-break should report the first configured pattern, got %+v", out)
	}
}

func TestAnywhere(t *testing.T) {
	m := mustMatcher(t, &Config{Mode: Anywhere, Patterns: []string{"F0RGE", "FORGE"}, CaseSensitive: true})

	out, ok := m.Match("xxFORGExxqqqqqqqqqqqqqqqqqqqqqqqqqq")
	if !ok {
		t.Fatal("expected substring match")
	}
	if out.Pattern != "FORGE" || out.Index != 2 || out.Matched != "FORGE" {
		t.Errorf("unexpected outcome: %+v", out)
	}
	if got := out.PositionText(); got != "index 2" {
		t.Errorf("PositionText = %q, want %q", got, "index 2")
	}

	out, ok = m.Match("xxF0RGExxqqqqqqqqqqqqqqqqqqqqqqqqqq")
	if !ok {
		t.Fatal("expected substring match")
	}
	if out.Pattern != "F0RGE" {
		t.Errorf("matched pattern = %q, want %q", out.Pattern, "F0RGE")
	}

	if _, ok := m.Match("qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq"); ok {
		t.Error("absent substring must not match")
	}
}

func TestAnywhereKeepsAddressCasing(t *testing.T) {
	m := mustMatcher(t, &Config{Mode: Anywhere, Patterns: []string{"forge"}, CaseSensitive: false})

	out, ok := m.Match("xxFORGExxqqqqqqqqqqqqqqqqqqqqqqqqqq")
	if !ok {
		t.Fatal("expected case-insensitive substring match")
	}
	if out.Matched != "FORGE" {
		t.Errorf("matched substring should keep the address casing, got %q", out.Matched)
	}
}

func TestMatchPatternLongerThanAddress(t *testing.T) {
	m := mustMatcher(t, &Config{Mode: Anywhere, Patterns: []string{"LongerThanTheAddress"}, CaseSensitive: true})
	if _, ok := m.Match("short"); ok {
		t.Error("pattern longer than the address must not match")
	}
}

func BenchmarkMatcherAnywhere(b *testing.B) {
	m := NewMatcher(&Config{Mode: Anywhere, Patterns: []string{"Seek"}, CaseSensitive: false})
	addr := "4Nd1mYvLPnpX7z3sBfqQoqGxMGsXLVkjPbNvDsJg6mvT"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Match(addr)
	}
}

func BenchmarkMatcherStartOnly(b *testing.B) {
	m := NewMatcher(&Config{Mode: StartOnly, StartPattern: "Seek", CaseSensitive: true})
	addr := "4Nd1mYvLPnpX7z3sBfqQoqGxMGsXLVkjPbNvDsJg6mvT"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Match(addr)
	}
}
