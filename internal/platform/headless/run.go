// Package headless drives a game without a terminal: a fixed number of
// ticks with scripted input, optionally paced in real time.
package headless

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/vovakirdan/coinrush/internal/core"
)

// Stepper is the part of a game the headless driver needs.
type Stepper interface {
	Step(in core.InputFrame) core.StepResult
}

// Script is a sequence of per-tick intents. Tick i (from zero) uses
// Script[i]; ticks past the end use DirNone.
type Script []core.Direction

// ParseScript reads a script of U, D, L, R and '.' letters. Whitespace is
// ignored so long scripts can be wrapped.
func ParseScript(s string) (Script, error) {
	var out Script
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		d, ok := core.ParseDirection(r)
		if !ok {
			return nil, fmt.Errorf("headless: script offset %d: unknown move %q", i, r)
		}
		out = append(out, d)
	}
	return out, nil
}

// Intent returns the move for the given tick.
func (s Script) Intent(tick int) core.Direction {
	if tick < 0 || tick >= len(s) {
		return core.DirNone
	}
	return s[tick]
}

// Options configure a headless run.
type Options struct {
	// Period paces ticks in wall-clock time. Zero runs as fast as possible.
	Period time.Duration

	// MaxTicks stops the run after this many ticks. Zero runs until ctx is done.
	MaxTicks int

	Script Script

	// OnStep, if set, is called after every tick with its zero-based index.
	OnStep func(tick int, res core.StepResult)
}

// Run steps s until MaxTicks is reached or ctx is cancelled and returns the
// number of ticks executed. Cancellation returns ctx.Err().
func Run(ctx context.Context, s Stepper, opts Options) (int, error) {
	if s == nil {
		return 0, errors.New("headless: nil game")
	}
	if opts.MaxTicks <= 0 && ctx.Done() == nil {
		return 0, errors.New("headless: unbounded run needs a cancellable context")
	}

	var pace <-chan time.Time
	if opts.Period > 0 {
		ticker := time.NewTicker(opts.Period)
		defer ticker.Stop()
		pace = ticker.C
	}

	frame := core.NewInputFrame()
	ticks := 0
	for opts.MaxTicks <= 0 || ticks < opts.MaxTicks {
		if pace != nil {
			select {
			case <-ctx.Done():
				return ticks, ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return ticks, err
		}

		frame.Clear()
		if a := opts.Script.Intent(ticks).Action(); a != core.ActionNone {
			frame.Set(a)
		}
		res := s.Step(frame)
		if opts.OnStep != nil {
			opts.OnStep(ticks, res)
		}
		ticks++
	}
	return ticks, nil
}
