package coins

import (
	"errors"
	"testing"

	"github.com/vovakirdan/coinrush/internal/core"
)

func TestPlayerLastIntentWins(t *testing.T) {
	p := NewPlayer(core.Pos{Col: 5, Row: 5})
	p.SetIntent(core.DirUp)
	p.SetIntent(core.DirLeft)
	p.SetIntent(core.DirDown)

	if got := p.Advance(board); got != (core.Pos{Col: 5, Row: 6}) {
		t.Errorf("Advance() = %v, expected (5,6) from the last intent", got)
	}
}

func TestPlayerAdvanceClearsIntent(t *testing.T) {
	p := NewPlayer(core.Pos{Col: 5, Row: 5})
	p.SetIntent(core.DirRight)
	p.Advance(board)

	if p.Intent() != core.DirNone {
		t.Errorf("Intent() = %v after Advance, expected none", p.Intent())
	}
	if got := p.Advance(board); got != (core.Pos{Col: 6, Row: 5}) {
		t.Errorf("second Advance() = %v, expected to stay on (6,5)", got)
	}
}

func TestPlayerAdvanceClampsAtEdges(t *testing.T) {
	tests := []struct {
		name  string
		start core.Pos
		dir   core.Direction
	}{
		{"left edge", core.Pos{Col: 0, Row: 4}, core.DirLeft},
		{"right edge", core.Pos{Col: 17, Row: 4}, core.DirRight},
		{"top edge", core.Pos{Col: 4, Row: 0}, core.DirUp},
		{"bottom edge", core.Pos{Col: 4, Row: 11}, core.DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(tc.start)
			for range 5 {
				p.SetIntent(tc.dir)
				if got := p.Advance(board); got != tc.start {
					t.Fatalf("Advance() = %v, expected to stay on %v", got, tc.start)
				}
			}
		})
	}
}

func TestPlayerAddScore(t *testing.T) {
	p := NewPlayer(core.Pos{})

	if err := p.AddScore(50); err != nil {
		t.Fatalf("AddScore(50) failed: %v", err)
	}
	if err := p.AddScore(0); err != nil {
		t.Fatalf("AddScore(0) failed: %v", err)
	}
	if err := p.AddScore(-1); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("AddScore(-1) = %v, expected ErrInvalidAmount", err)
	}
	if p.Score() != 50 {
		t.Errorf("Score() = %d, expected 50", p.Score())
	}
}
