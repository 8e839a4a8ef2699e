package cond

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vnykmshr/goexec/internal/testutil"
)

func TestWaitTimeout_TimesOut(t *testing.T) {
	var mu sync.Mutex
	c := New(&mu)

	mu.Lock()
	start := time.Now()
	status := c.WaitTimeout(20 * time.Millisecond)
	elapsed := time.Since(start)
	mu.Unlock()

	testutil.AssertEqual(t, status, TimedOut)
	if elapsed < 20*time.Millisecond {
		t.Errorf("returned after %v, before the timeout", elapsed)
	}
	testutil.AssertEqual(t, c.Waiters(), 0)
}

func TestWaitTimeout_NonPositive(t *testing.T) {
	var mu sync.Mutex
	c := New(&mu)

	mu.Lock()
	defer mu.Unlock()
	testutil.AssertEqual(t, c.WaitTimeout(0), TimedOut)
	testutil.AssertEqual(t, c.WaitTimeout(-time.Second), TimedOut)
}

func TestWaitTimeout_Signaled(t *testing.T) {
	var mu sync.Mutex
	c := New(&mu)
	result := make(chan Status, 1)

	go func() {
		mu.Lock()
		defer mu.Unlock()
		result <- c.WaitTimeout(5 * time.Second)
	}()

	testutil.Eventually(t, func() bool { return c.Waiters() == 1 }, time.Second, time.Millisecond)
	c.Signal()

	select {
	case s := <-result:
		testutil.AssertEqual(t, s, Signaled)
	case <-time.After(time.Second):
		t.Fatal("waiter not woken by Signal")
	}
}

func TestSignal_WakesOne(t *testing.T) {
	var mu sync.Mutex
	c := New(&mu)
	var woken int32
	var wg sync.WaitGroup

	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			c.Wait()
			atomic.AddInt32(&woken, 1)
			mu.Unlock()
		}()
	}

	testutil.Eventually(t, func() bool { return c.Waiters() == 3 }, time.Second, time.Millisecond)

	c.Signal()
	testutil.WaitForInt32(t, &woken, 1, time.Second)
	time.Sleep(20 * time.Millisecond)
	testutil.AssertEqual(t, atomic.LoadInt32(&woken), int32(1))

	c.Broadcast()
	wg.Wait()
	testutil.AssertEqual(t, atomic.LoadInt32(&woken), int32(3))
}

func TestBroadcast_WakesAll(t *testing.T) {
	var mu sync.Mutex
	c := New(&mu)
	const n = 5
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			c.WaitTimeout(5 * time.Second)
			mu.Unlock()
		}()
	}

	testutil.Eventually(t, func() bool { return c.Waiters() == n }, time.Second, time.Millisecond)
	c.Broadcast()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast did not wake all waiters")
	}
}

func TestStatusString(t *testing.T) {
	testutil.AssertEqual(t, Signaled.String(), "signaled")
	testutil.AssertEqual(t, TimedOut.String(), "timed out")
	testutil.AssertEqual(t, Status(7).String(), "unknown")
}
