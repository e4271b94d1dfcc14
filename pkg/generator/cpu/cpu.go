// Package cpu implements the Generator contract with a pool of
// goroutine workers, one per core by default.
package cpu

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"runtime"
	"sync"
	"time"

	"solseek/pkg/generator"
)

// flushThreshold is how many local attempts a worker accumulates before
// adding them to the shared counter. Exact totals are only observational;
// batching keeps the hot loop free of shared-cacheline traffic.
const flushThreshold = 10_000

// Generator is the CPU search engine. One instance runs one search at a
// time; Start may be called again once the previous search has finished.
type Generator struct {
	workers int

	// SnapshotInterval is the progress reporting cadence. Zero means one
	// second. Must be set before Start.
	SnapshotInterval time.Duration

	startTime time.Time
	state     *searchState
	wg        sync.WaitGroup
	snapshots chan generator.Snapshot
}

var _ generator.Generator = (*Generator)(nil)

// New creates a CPU generator. If workers is 0 or negative it defaults to
// the number of CPU cores.
func New(workers int) *Generator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Generator{workers: workers}
}

// Name returns the backend name.
func (g *Generator) Name() string {
	return "CPU"
}

// Workers returns the number of workers the next search will spawn.
func (g *Generator) Workers() int {
	return g.workers
}

// Stats returns the current cumulative statistics.
func (g *Generator) Stats() generator.Stats {
	if g.state == nil {
		return generator.Stats{}
	}
	attempts := g.state.attempts.Load()
	elapsed := time.Since(g.startTime)

	var rate float64
	if elapsed > 0 {
		rate = float64(attempts) / elapsed.Seconds()
	}
	return generator.Stats{
		Attempts: attempts,
		Rate:     rate,
		Elapsed:  elapsed,
	}
}

// Snapshots returns the progress stream for the search started last.
func (g *Generator) Snapshots() <-chan generator.Snapshot {
	return g.snapshots
}

// Wait blocks until every worker from the current search has exited and
// returns the first fatal worker error, if any.
func (g *Generator) Wait() error {
	g.wg.Wait()
	if g.state == nil {
		return nil
	}
	return g.state.err
}

// Start begins the search. The returned channel delivers the winning
// result and is closed afterwards; cancellation closes it without a value.
func (g *Generator) Start(ctx context.Context, config *generator.Config) (<-chan generator.Result, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search config: %w", err)
	}

	workers := g.workers
	if config.Workers > 0 {
		workers = config.Workers
	}

	matcher := generator.NewMatcher(config)
	g.state = newSearchState()
	g.startTime = time.Now()
	g.snapshots = make(chan generator.Snapshot, 1)
	resultChan := make(chan generator.Result, 1)

	for i := 0; i < workers; i++ {
		g.wg.Add(1)
		go g.worker(matcher)
	}
	go g.supervise(ctx, resultChan)

	return resultChan, nil
}

// worker runs the generate-encode-match loop until the search halts.
// Workers are symmetric; the keyspace is not partitioned, since collisions
// between independent random draws are negligible.
func (g *Generator) worker(matcher *generator.Matcher) {
	defer g.wg.Done()

	state := g.state
	var local uint64
	flush := func() {
		if local > 0 {
			state.attempts.Add(local)
			local = 0
		}
	}
	defer flush()

	for !state.stopped() {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			// No entropy means no worker can make progress; abort the
			// whole search rather than spin.
			state.fail(fmt.Errorf("generate keypair: %w", err))
			return
		}
		local++

		address := generator.Address(pub)
		outcome, ok := matcher.Match(address)
		if !ok {
			if local >= flushThreshold {
				flush()
			}
			continue
		}

		// Publish decides the race; losers drop their candidate and exit.
		state.publish(generator.Result{
			Address:   address,
			PublicKey: pub,
			SecretKey: priv,
			Outcome:   outcome,
		})
		return
	}
}

// supervise emits periodic snapshots until the search halts, then joins
// the workers and delivers the result.
func (g *Generator) supervise(ctx context.Context, resultChan chan<- generator.Result) {
	interval := g.SnapshotInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	state := g.state
	lastTime := g.startTime
	var lastAttempts uint64

	for {
		select {
		case <-ctx.Done():
			state.halt()
		case <-state.done:
		case <-ticker.C:
			now := time.Now()
			attempts := state.attempts.Load()
			elapsed := now.Sub(g.startTime)

			snap := generator.Snapshot{
				Elapsed:  elapsed,
				Attempts: attempts,
			}
			if span := now.Sub(lastTime).Seconds(); span > 0 {
				snap.Rate = float64(attempts-lastAttempts) / span
			}
			if elapsed > 0 {
				snap.AvgRate = float64(attempts) / elapsed.Seconds()
			}

			// Drop the snapshot when the consumer lags; reporting must
			// never stall the search.
			select {
			case g.snapshots <- snap:
			default:
			}

			lastTime = now
			lastAttempts = attempts
			continue
		}
		break
	}

	g.wg.Wait()

	if res, ok := state.result(); ok {
		res.Attempts = state.attempts.Load()
		res.Elapsed = time.Since(g.startTime)
		resultChan <- res
	}
	close(resultChan)
	close(g.snapshots)
}
