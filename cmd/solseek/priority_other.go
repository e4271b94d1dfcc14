//go:build !windows

package main

// No automatic priority handling off Windows. Run under nice(1) when the
// search should yield to other work, or nice -n -20 for maximum throughput.
