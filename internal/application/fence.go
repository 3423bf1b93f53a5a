package application

import (
	"context"
	"sync"
)

// Fence keeps one in-flight request per key. Starting a request cancels the
// previous one for the same key, and only the most recent ticket may commit.
type Fence struct {
	mu      sync.Mutex
	seq     map[string]uint64
	cancels map[string]context.CancelFunc
}

// Ticket identifies one fenced request.
type Ticket struct {
	key string
	seq uint64
}

// NewFence creates an empty fence.
func NewFence() *Fence {
	return &Fence{
		seq:     make(map[string]uint64),
		cancels: make(map[string]context.CancelFunc),
	}
}

// Begin supersedes any in-flight request for key and returns a context
// derived from ctx that is cancelled when a newer request begins.
func (f *Fence) Begin(ctx context.Context, key string) (context.Context, Ticket) {
	return f.BeginApply(ctx, key, nil)
}

// BeginApply is Begin that also runs apply, if non-nil, while still holding
// the fence. State set by apply is therefore ordered before any later
// request's Begin or Commit. Apply must not call back into the fence.
func (f *Fence) BeginApply(ctx context.Context, key string, apply func()) (context.Context, Ticket) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cancel, ok := f.cancels[key]; ok {
		cancel()
	}
	f.seq[key]++
	reqCtx, cancel := context.WithCancel(ctx)
	f.cancels[key] = cancel
	if apply != nil {
		apply()
	}
	return reqCtx, Ticket{key: key, seq: f.seq[key]}
}

// Commit runs apply while holding the fence if t is still current, and
// reports whether it ran. Apply must not call back into the fence.
func (f *Fence) Commit(t Ticket, apply func()) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seq[t.key] != t.seq {
		return false
	}
	apply()
	return true
}

// End releases the ticket's context. Ending a superseded ticket does not
// affect the newer request.
func (f *Fence) End(t Ticket) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seq[t.key] != t.seq {
		return
	}
	if cancel, ok := f.cancels[t.key]; ok {
		cancel()
		delete(f.cancels, t.key)
	}
}

// Current reports whether t is the latest ticket for its key.
func (f *Fence) Current(t Ticket) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seq[t.key] == t.seq
}
