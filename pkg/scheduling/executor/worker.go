package executor

import "time"

// worker is one pool goroutine. Workers share the executor lock and
// condition; they carry no state of their own beyond an id for hooks and logs.
type worker struct {
	id int
	ex *executor
}

// loop runs until the executor leaves StateRunning. The lock is held except
// while waiting on the condition or while a callback runs.
func (w *worker) loop() {
	e := w.ex
	defer e.wg.Done()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.log.Debugw("worker started", "worker", w.id)
	exited := true
	defer func() {
		// A callback called runtime.Goexit on this goroutine; keep the pool at size.
		if exited && e.state == StateRunning {
			e.log.Warnw("worker replaced after goroutine exit", "worker", w.id)
			e.wg.Add(1)
			go w.loop()
		}
	}()

	for e.state == StateRunning {
		head := e.queue.peek()
		if head == nil {
			e.cond.WaitTimeout(e.cfg.IdlePollInterval)
			continue
		}

		if remaining := time.Until(head.deadline); remaining > 0 {
			e.cond.WaitTimeout(remaining)
			continue
		}

		e.queue.pop()
		e.metrics.queueDepth(e.queue.Len())
		head.run(w)
		e.cond.Broadcast()
	}
	exited = false
	e.log.Debugw("worker stopped", "worker", w.id)
}
