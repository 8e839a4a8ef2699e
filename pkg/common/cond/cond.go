// Package cond provides a condition variable whose waits can time out.
//
// sync.Cond has no timed wait, so Cond keeps its own list of waiters, each
// parked on a one-slot channel. Signal wakes the oldest waiter and Broadcast
// wakes all of them. WaitTimeout reports whether it returned because of a
// signal or because the timeout elapsed:
//
//	mu.Lock()
//	for !ready() {
//		if c.WaitTimeout(remaining) == cond.TimedOut {
//			break
//		}
//	}
//	mu.Unlock()
//
// As with sync.Cond, L must be held when calling Wait or WaitTimeout and is
// held again when they return. Signal and Broadcast may be called with or
// without L held.
package cond

import (
	"sync"
	"time"
)

// Status is the outcome of a timed wait.
type Status int

const (
	// Signaled means the waiter was woken by Signal or Broadcast.
	Signaled Status = iota
	// TimedOut means the timeout elapsed before any signal arrived.
	TimedOut
)

func (s Status) String() string {
	switch s {
	case Signaled:
		return "signaled"
	case TimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Cond is a condition variable bound to the Locker L.
type Cond struct {
	L sync.Locker

	mu      sync.Mutex
	waiters []chan struct{}
}

// New returns a Cond bound to l.
func New(l sync.Locker) *Cond {
	return &Cond{L: l}
}

// Wait atomically unlocks L and suspends until signaled, then relocks L.
func (c *Cond) Wait() {
	ch := c.enqueue()
	c.L.Unlock()
	<-ch
	c.L.Lock()
}

// WaitTimeout is Wait bounded by d. A non-positive d returns TimedOut
// without releasing L.
func (c *Cond) WaitTimeout(d time.Duration) Status {
	if d <= 0 {
		return TimedOut
	}

	ch := c.enqueue()
	c.L.Unlock()
	defer c.L.Lock()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ch:
		return Signaled
	case <-timer.C:
		if c.remove(ch) {
			return TimedOut
		}
		// A signal raced the timer and already picked this waiter.
		<-ch
		return Signaled
	}
}

// Signal wakes the longest-waiting goroutine, if any.
func (c *Cond) Signal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.waiters) == 0 {
		return
	}
	ch := c.waiters[0]
	c.waiters[0] = nil
	c.waiters = c.waiters[1:]
	ch <- struct{}{}
}

// Broadcast wakes all waiting goroutines.
func (c *Cond) Broadcast() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ch := range c.waiters {
		ch <- struct{}{}
	}
	c.waiters = nil
}

// Waiters returns the number of goroutines currently parked.
func (c *Cond) Waiters() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

func (c *Cond) enqueue() chan struct{} {
	ch := make(chan struct{}, 1)
	c.mu.Lock()
	c.waiters = append(c.waiters, ch)
	c.mu.Unlock()
	return ch
}

func (c *Cond) remove(ch chan struct{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, w := range c.waiters {
		if w == ch {
			c.waiters = append(c.waiters[:i], c.waiters[i+1:]...)
			return true
		}
	}
	return false
}
