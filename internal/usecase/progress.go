package usecase

import "sync/atomic"

// RunState is the lifecycle of a recompute run.
type RunState int32

const (
	RunStateIdle RunState = iota
	RunStateRunning
	RunStateCompleted
	RunStateFailed
)

func (s RunState) String() string {
	switch s {
	case RunStateRunning:
		return "running"
	case RunStateCompleted:
		return "completed"
	case RunStateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Progress is a point-in-time view of a rebuild. After a successful run
// Processed equals Total; counters are monotonic within a run.
type Progress struct {
	Processed uint64
	Total     uint64
	State     RunState
}

// progressTracker is written by the run driving goroutines and read by
// polling callers, so every field is an atomic.
type progressTracker struct {
	state     atomic.Int32
	processed atomic.Uint64
	total     atomic.Uint64
}

func (p *progressTracker) start() {
	p.processed.Store(0)
	p.total.Store(0)
	p.state.Store(int32(RunStateRunning))
}

func (p *progressTracker) setTotal(n uint64) {
	p.total.Store(n)
}

func (p *progressTracker) add(n uint64) {
	p.processed.Add(n)
}

func (p *progressTracker) finish(err error) {
	if err != nil {
		p.state.Store(int32(RunStateFailed))
		return
	}
	p.state.Store(int32(RunStateCompleted))
}

func (p *progressTracker) snapshot() Progress {
	return Progress{
		Processed: p.processed.Load(),
		Total:     p.total.Load(),
		State:     RunState(p.state.Load()),
	}
}
