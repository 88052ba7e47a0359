// Package playback replays a search Result step by step at a fixed pace:
// first every traced cell, then every path cell.
package playback

import (
	"context"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/trace"
)

// DefaultDelay is the pause between two frames.
const DefaultDelay = 50 * time.Millisecond

// Stage tells which part of the Result a frame belongs to.
type Stage int

const (
	StageVisit Stage = iota
	StagePath
)

func (s Stage) String() string {
	if s == StagePath {
		return "path"
	}
	return "visit"
}

// Frame is one replay step.
type Frame struct {
	Stage Stage
	Step  int // 0-based within the stage
	Cell  gridgraph.Coord
}

// Play calls fn for every trace cell and then for every path cell, sleeping
// delay between calls. It stops early when ctx is done, returning ctx.Err(),
// or when fn returns an error, returning it. A non-positive delay replays
// without pausing.
func Play(ctx context.Context, res *trace.Result, delay time.Duration, fn func(Frame) error) error {
	if res == nil {
		return nil
	}
	p := &player{ctx: ctx, delay: delay, fn: fn}
	if err := p.stage(StageVisit, res.Trace); err != nil {
		return err
	}
	return p.stage(StagePath, res.Path)
}

type player struct {
	ctx    context.Context
	delay  time.Duration
	fn     func(Frame) error
	frames int
}

func (p *player) stage(s Stage, cells []gridgraph.Coord) error {
	for i, c := range cells {
		if p.frames > 0 {
			if err := p.wait(); err != nil {
				return err
			}
		} else if err := p.ctx.Err(); err != nil {
			return err
		}
		if err := p.fn(Frame{Stage: s, Step: i, Cell: c}); err != nil {
			return err
		}
		p.frames++
	}
	return nil
}

func (p *player) wait() error {
	if p.delay <= 0 {
		return p.ctx.Err()
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-p.ctx.Done():
		return p.ctx.Err()
	case <-t.C:
		return nil
	}
}
