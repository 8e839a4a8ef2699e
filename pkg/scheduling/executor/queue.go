package executor

import (
	"container/heap"
	"fmt"
)

// taskQueue is a min-heap of queued tasks ordered by deadline, then by
// insertion sequence so equal deadlines keep submission order.
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if !q[i].deadline.Equal(q[j].deadline) {
		return q[i].deadline.Before(q[j].deadline)
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x interface{}) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() interface{} {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil // avoid memory leak
	t.index = -1
	*q = old[:n-1]
	return t
}

func (q *taskQueue) push(t *task) {
	heap.Push(q, t)
}

// peek returns the task with the earliest deadline without removing it.
func (q taskQueue) peek() *task {
	if len(q) == 0 {
		return nil
	}
	return q[0]
}

func (q *taskQueue) pop() *task {
	return heap.Pop(q).(*task)
}

// remove takes t out of the queue. t must be queued.
func (q *taskQueue) remove(t *task) {
	if t.index < 0 || t.index >= len(*q) || (*q)[t.index] != t {
		panic(fmt.Sprintf("executor: task %s not in queue (index %d)", t.id, t.index))
	}
	heap.Remove(q, t.index)
}
