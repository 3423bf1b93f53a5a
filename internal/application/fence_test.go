package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFence_NewerTicketSupersedesOlder(t *testing.T) {
	f := NewFence()

	ctx1, t1 := f.Begin(context.Background(), "discover")
	_, t2 := f.Begin(context.Background(), "discover")

	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
	assert.False(t, f.Current(t1))
	assert.True(t, f.Current(t2))

	applied := false
	assert.False(t, f.Commit(t1, func() { applied = true }))
	assert.False(t, applied)

	assert.True(t, f.Commit(t2, func() { applied = true }))
	assert.True(t, applied)
}

func TestFence_KeysAreIndependent(t *testing.T) {
	f := NewFence()

	ctxA, ta := f.Begin(context.Background(), "discover")
	_, tb := f.Begin(context.Background(), "script")

	assert.NoError(t, ctxA.Err())
	assert.True(t, f.Current(ta))
	assert.True(t, f.Current(tb))
}

func TestFence_EndingStaleTicketKeepsNewerAlive(t *testing.T) {
	f := NewFence()

	_, t1 := f.Begin(context.Background(), "script")
	ctx2, t2 := f.Begin(context.Background(), "script")

	f.End(t1)
	assert.NoError(t, ctx2.Err())

	f.End(t2)
	assert.ErrorIs(t, ctx2.Err(), context.Canceled)
}

func TestFence_BeginApplyRunsBeforeNewerRequest(t *testing.T) {
	f := NewFence()
	var events []string

	_, t1 := f.BeginApply(context.Background(), "discover", func() { events = append(events, "start 1") })
	_, t2 := f.BeginApply(context.Background(), "discover", func() { events = append(events, "start 2") })
	f.Commit(t2, func() { events = append(events, "commit 2") })
	f.Commit(t1, func() { events = append(events, "commit 1") })

	assert.Equal(t, []string{"start 1", "start 2", "commit 2"}, events)
}

func TestFence_ConcurrentRequestsLeaveFlagCleared(t *testing.T) {
	f := NewFence()
	var mu sync.Mutex
	inFlight := false
	set := func(v bool) func() {
		return func() {
			mu.Lock()
			inFlight = v
			mu.Unlock()
		}
	}

	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ticket := f.BeginApply(context.Background(), "script", set(true))
			defer f.End(ticket)
			f.Commit(ticket, set(false))
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, inFlight)
}
