package engine

import (
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/breakout/core"
)

// TargetKind is the cosmetic animal shown for a target
type TargetKind int

const (
	KindDuck TargetKind = iota
	KindGoat
	KindHorse
	targetKindCount
)

func (k TargetKind) String() string {
	switch k {
	case KindDuck:
		return "duck"
	case KindGoat:
		return "goat"
	case KindHorse:
		return "horse"
	}
	return "unknown"
}

// Target is a destructible rectangle; alive while present in the field
type Target struct {
	ID   int
	Kind TargetKind
	Box  core.Box
}

// TargetField is the ordered set of live targets of a round
type TargetField struct {
	boardW    float64
	columns   int
	w, h      float64
	topMargin float64
	rowStep   float64

	rng     *rand.Rand
	targets []Target
}

// NewTargetField creates an empty field using the grid layout of cfg
func NewTargetField(cfg Config) *TargetField {
	return &TargetField{
		boardW:    cfg.BoardWidth,
		columns:   cfg.TargetColumns,
		w:         cfg.TargetWidth,
		h:         cfg.TargetHeight,
		topMargin: cfg.TargetTopMargin,
		rowStep:   cfg.TargetRowSpacing,
		rng:       rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

// Reset clears the field and lays out n targets row by row
// Column centers split the board width evenly; rows stack down from the top margin
func (f *TargetField) Reset(n int) {
	f.targets = f.targets[:0]
	if n <= 0 || f.columns <= 0 {
		return
	}

	colW := f.boardW / float64(f.columns)
	for i := 0; i < n; i++ {
		col, row := i%f.columns, i/f.columns
		cx := colW * (float64(col) + 0.5)
		cy := f.topMargin + float64(row)*f.rowStep + f.h/2
		f.targets = append(f.targets, Target{
			ID:   i + 1,
			Kind: TargetKind(f.rng.IntN(int(targetKindCount))),
			Box:  core.BoxFromCenter(cx, cy, f.w, f.h),
		})
	}
}

// RemoveIfHit removes every target intersecting ball and returns them in field order
// Hits are collected first, then filtered out, so simultaneous hits are all applied once
func (f *TargetField) RemoveIfHit(ball core.Box) []Target {
	var hits []Target
	for _, t := range f.targets {
		if t.Box.Intersects(ball) {
			hits = append(hits, t)
		}
	}
	if len(hits) == 0 {
		return nil
	}

	f.targets = slices.DeleteFunc(f.targets, func(t Target) bool {
		return t.Box.Intersects(ball)
	})
	return hits
}

func (f *TargetField) IsEmpty() bool { return len(f.targets) == 0 }
func (f *TargetField) Len() int     { return len(f.targets) }

// Targets returns a copy of the live targets in stable order
func (f *TargetField) Targets() []Target {
	return slices.Clone(f.targets)
}
