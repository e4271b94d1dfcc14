// Package generator implements the concurrent Solana vanity address search.
// It defines the search configuration and matching semantics shared by all
// engine backends, and the Generator contract a backend must satisfy.
package generator

import (
	"context"
	"fmt"
	"time"
)

// Mode selects where a pattern must appear in the encoded address.
type Mode int

const (
	StartOnly   Mode = iota // Address must begin with the pattern
	EndOnly                 // Address must end with the pattern
	StartAndEnd             // Both a start and an end pattern must match the same address
	StartOrEnd              // Address must begin or end with one of the patterns
	Anywhere                // Pattern may appear at any position
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case StartOnly:
		return "start only"
	case EndOnly:
		return "end only"
	case StartAndEnd:
		return "start and end"
	case StartOrEnd:
		return "start or end"
	case Anywhere:
		return "anywhere"
	default:
		return "unknown"
	}
}

// Config holds the validated configuration for one search.
// It is read-only once a search has started; workers share one instance.
type Config struct {
	Mode          Mode     // Where patterns must appear
	StartPattern  string   // Required address prefix (StartOnly, StartAndEnd)
	EndPattern    string   // Required address suffix (EndOnly, StartAndEnd)
	Patterns      []string // Ordered alternatives for list modes; order is the reporting tie-break
	CaseSensitive bool     // Exact matching when true, folded otherwise
	Workers       int      // Number of concurrent workers (0 = one per CPU core)
}

// Validate checks that the mode and pattern fields form a searchable
// combination. It must pass before the config is handed to a Generator.
func (c *Config) Validate() error {
	switch c.Mode {
	case StartOnly:
		if c.StartPattern == "" && len(c.Patterns) == 0 {
			return fmt.Errorf("start pattern required for %s mode", c.Mode)
		}
	case EndOnly:
		if c.EndPattern == "" && len(c.Patterns) == 0 {
			return fmt.Errorf("end pattern required for %s mode", c.Mode)
		}
	case StartAndEnd:
		if c.StartPattern == "" || c.EndPattern == "" {
			return fmt.Errorf("both start and end patterns required for %s mode", c.Mode)
		}
	case StartOrEnd, Anywhere:
		if len(c.Patterns) == 0 {
			return fmt.Errorf("at least one pattern required for %s mode", c.Mode)
		}
	default:
		return fmt.Errorf("unknown match mode %d", c.Mode)
	}

	for _, p := range c.Patterns {
		if p == "" {
			return fmt.Errorf("empty pattern in pattern list")
		}
	}
	return nil
}

// Stats holds cumulative performance statistics for a running search.
type Stats struct {
	Attempts uint64        // Total number of addresses generated
	Rate     float64       // Average addresses per second since start
	Elapsed  time.Duration // Time elapsed since start
}

// Snapshot is one periodic progress report emitted while a search runs.
type Snapshot struct {
	Elapsed  time.Duration // Time elapsed since the search started
	Attempts uint64        // Cumulative addresses generated so far
	Rate     float64       // Addresses per second over the last interval
	AvgRate  float64       // Addresses per second since start
}

// Generator defines the contract for search engine backends.
type Generator interface {
	// Start begins the search with the given configuration. It returns a
	// channel that delivers the winning result and is then closed; when the
	// context is cancelled before a match, the channel is closed without a
	// value. The configuration must already be validated.
	Start(ctx context.Context, config *Config) (<-chan Result, error)

	// Snapshots returns the progress stream for the search started last.
	// Snapshots are dropped, not queued, when the consumer falls behind.
	Snapshots() <-chan Snapshot

	// Stats returns the current cumulative statistics.
	// Safe to call concurrently from any goroutine.
	Stats() Stats

	// Wait blocks until all workers have exited and reports the first
	// fatal worker error, if any.
	Wait() error

	// Name returns the backend name (e.g. "CPU").
	Name() string
}
