package ui

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"

	"solseek/pkg/generator"
)

// Progress renders the live search progress: an indeterminate spinner bar
// with the cumulative attempt count, the current rate, and an average-rate
// readout in the description.
type Progress struct {
	bar  *progressbar.ProgressBar
	last uint64
}

// NewProgress creates the progress line.
func NewProgress() *Progress {
	bar := progressbar.NewOptions64(
		-1,
		progressbar.OptionSetDescription("searching"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("addr"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
	)
	return &Progress{bar: bar}
}

// Update advances the bar to the snapshot's cumulative attempt count and
// refreshes the description.
func (p *Progress) Update(snap generator.Snapshot) {
	delta := snap.Attempts - p.last
	p.last = snap.Attempts
	_ = p.bar.Add64(int64(delta))
	p.bar.Describe(fmt.Sprintf("searching (avg %s, running %s)",
		FormatRate(snap.AvgRate), FormatDuration(snap.Elapsed)))
}

// Finish clears the progress line so the report below starts clean.
func (p *Progress) Finish() {
	_ = p.bar.Clear()
}
