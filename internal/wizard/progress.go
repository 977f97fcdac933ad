package wizard

import (
	"context"
	"time"
)

// GenerationStep is one beat of the scripted progress animation.
type GenerationStep struct {
	Message string
	Percent int
}

// GenerationScript is the fixed sequence the generate step plays.
// Percentages never decrease and the last entry is always 100.
var GenerationScript = []GenerationStep{
	{Message: "Reading product details", Percent: 8},
	{Message: "Applying brand voice", Percent: 18},
	{Message: "Writing Meta ad variations", Percent: 34},
	{Message: "Writing Google ad variations", Percent: 48},
	{Message: "Drafting UGC hooks", Percent: 62},
	{Message: "Building scene breakdowns", Percent: 76},
	{Message: "Running quality checks", Percent: 90},
	{Message: "Packaging results", Percent: 97},
	{Message: "Done", Percent: 100},
}

// Timing for the simulated latencies. The wizard always takes the same
// total time and always succeeds.
const (
	URLImportDelay = 1200 * time.Millisecond
	StepInterval   = 650 * time.Millisecond
)

// RunGeneration plays the script, calling emit after each interval. It is
// the headless form of the progress animation: the TUI drives the same
// script through its own tick messages, and both stop mutating anything
// the moment ctx is cancelled.
func RunGeneration(ctx context.Context, interval time.Duration, emit func(GenerationStep)) error {
	t := time.NewTimer(interval)
	defer t.Stop()

	for i, step := range GenerationScript {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		emit(step)
		if i < len(GenerationScript)-1 {
			t.Reset(interval)
		}
	}
	return nil
}
