// Package ui renders the console surface of the search: the banner, the
// configuration echo, the live progress line, and the final report.
package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"solseek/pkg/generator"
)

var (
	colorTitle  = color.New(color.FgCyan, color.Bold)
	colorInfo   = color.New(color.FgCyan)
	colorFound  = color.New(color.FgGreen, color.Bold)
	colorWarn   = color.New(color.FgYellow)
	colorSecret = color.New(color.FgYellow)
	colorDim    = color.New(color.Faint)
)

// PrintBanner shows the program title.
func PrintBanner(version string) {
	fmt.Println()
	colorTitle.Println("Solana Vanity Address Generator")
	colorDim.Printf("solseek v%s\n\n", version)
}

// PrintSearchInfo echoes the search configuration before the search
// starts. usedDefault marks a run that fell back to the built-in pattern.
func PrintSearchInfo(config *generator.Config, engine string, workers int, difficulty uint64, usedDefault bool) {
	if config.Mode == generator.StartAndEnd {
		colorInfo.Printf("Start pattern: ")
		fmt.Println(config.StartPattern)
		colorInfo.Printf("End pattern: ")
		fmt.Println(config.EndPattern)
		colorInfo.Printf("Mode: ")
		fmt.Println("both start and end patterns must match")
	} else if len(config.Patterns) > 0 {
		if usedDefault {
			colorInfo.Printf("Using default pattern: ")
			fmt.Println(strings.Join(config.Patterns, ", "))
		} else {
			colorInfo.Printf("Patterns: ")
			fmt.Println(strings.Join(config.Patterns, ", "))
		}
		colorInfo.Printf("Match position: ")
		fmt.Println(config.Mode)
	} else if config.StartPattern != "" {
		colorInfo.Printf("Start pattern: ")
		fmt.Println(config.StartPattern)
	} else if config.EndPattern != "" {
		colorInfo.Printf("End pattern: ")
		fmt.Println(config.EndPattern)
	}

	colorInfo.Printf("Case sensitive: ")
	fmt.Printf("%t\n", config.CaseSensitive)
	colorInfo.Printf("Engine: ")
	fmt.Printf("%s with %d workers\n", engine, workers)
	colorInfo.Printf("Difficulty: ")
	fmt.Printf("about 1 in %s\n\n", FormatCount(float64(difficulty)))
}

// PrintResult shows the final report. This is the only place, besides the
// wallet file the user asks for, where secret key material is written.
func PrintResult(res generator.Result) {
	fmt.Println()
	colorFound.Println("Found matching address!")
	fmt.Println()

	colorInfo.Printf("Matched pattern: ")
	fmt.Println(res.Outcome.PatternText())
	colorInfo.Printf("Match position: ")
	fmt.Println(res.Outcome.PositionText())
	colorInfo.Printf("Actual match: ")
	fmt.Println(res.Outcome.MatchText())
	fmt.Println()

	colorInfo.Printf("Public key: ")
	colorFound.Println(res.Address)
	colorInfo.Printf("Secret key (Base58): ")
	colorSecret.Println(res.SecretBase58())
	colorInfo.Printf("Secret key (mnemonic): ")
	if phrase, err := res.Mnemonic(); err == nil {
		colorSecret.Println(phrase)
	} else {
		colorWarn.Println("unavailable")
	}
	fmt.Println()

	colorInfo.Printf("Total attempts: ")
	fmt.Println(FormatNumber(res.Attempts))
	colorInfo.Printf("Time taken: ")
	fmt.Println(FormatDuration(res.Elapsed))
	colorInfo.Printf("Speed: ")
	fmt.Println(FormatRate(res.Rate()))
	fmt.Println()
	colorWarn.Println("Keep the secret key private. Anyone holding it controls the address.")
}

// PrintCancelled reports a search stopped before any match.
func PrintCancelled(stats generator.Stats) {
	fmt.Println()
	colorWarn.Printf("Stopped without a match after %s attempts in %s\n",
		FormatNumber(stats.Attempts), FormatDuration(stats.Elapsed))
}

// SaveResult writes the found keypair to path, readable only by the owner.
// On Windows the file is marked hidden as well.
func SaveResult(path string, res generator.Result) error {
	mnemonic, err := res.Mnemonic()
	if err != nil {
		mnemonic = "unavailable"
	}

	content := fmt.Sprintf(`Solana Vanity Address
=====================

Address:               %s
Secret key (Base58):   %s
Secret key (mnemonic): %s

Matched pattern: %s
Match position:  %s

Statistics:
  Attempts: %s
  Time:     %s

Generated: %s

WARNING: keep this file secret. The secret key controls the address.
`,
		res.Address, res.SecretBase58(), mnemonic,
		res.Outcome.PatternText(), res.Outcome.PositionText(),
		FormatNumber(res.Attempts), FormatDuration(res.Elapsed),
		time.Now().Format("2006-01-02 15:04:05"))

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("save wallet file: %w", err)
	}
	hideFile(path)
	return nil
}

// FormatCount abbreviates large quantities as K, M, or B.
func FormatCount(n float64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", n/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.2fM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.2fK", n/1_000)
	default:
		return fmt.Sprintf("%.0f", n)
	}
}

// FormatNumber adds thousands separators to exact counts.
func FormatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if n < 1000 {
		return s
	}
	out := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// FormatDuration renders a duration as hours, minutes and seconds, with
// millisecond precision below one minute.
func FormatDuration(d time.Duration) string {
	total := int64(d.Seconds())
	switch {
	case total >= 3600:
		return fmt.Sprintf("%dh %dm %ds", total/3600, (total%3600)/60, total%60)
	case total >= 60:
		return fmt.Sprintf("%dm %ds", total/60, total%60)
	default:
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
}

// FormatRate renders a throughput figure.
func FormatRate(rate float64) string {
	return FormatCount(rate) + " addr/s"
}
