package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidDueTime = errors.New("scheduler: invalid due time")
	ErrStopped        = errors.New("scheduler: engine stopped")
)

// DeadlineEvent fires when a task's deadline arrives.
type DeadlineEvent struct {
	TaskID string
	Text   string
	DueAt  time.Time
}

type deadlineHeap []DeadlineEvent

func (h deadlineHeap) Len() int            { return len(h) }
func (h deadlineHeap) Less(i, j int) bool  { return h[i].DueAt.Before(h[j].DueAt) }
func (h deadlineHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *deadlineHeap) Push(x any)         { *h = append(*h, x.(DeadlineEvent)) }
func (h *deadlineHeap) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	*h = old[:n-1]
	return ev
}

// Engine delivers deadline alerts through a single timer over a min-heap.
// Rescheduling a task replaces its pending alert; cancellation is lazy, the
// superseded entry is skipped when it surfaces.
type Engine struct {
	mu      sync.Mutex
	pending deadlineHeap
	active  map[string]time.Time
	out     chan DeadlineEvent
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		active: make(map[string]time.Time),
		out:    make(chan DeadlineEvent, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// C is the alert stream. It closes when the engine stops.
func (e *Engine) C() <-chan DeadlineEvent {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.pending)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Schedule registers or replaces the alert for a task.
func (e *Engine) Schedule(ev DeadlineEvent) error {
	if ev.DueAt.IsZero() {
		return ErrInvalidDueTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}

	e.active[ev.TaskID] = ev.DueAt
	heap.Push(&e.pending, ev)
	e.signalWakeup()
	return nil
}

// Cancel drops any pending alert for the task. Completing or deleting a task
// goes through here so stale alerts never fire.
func (e *Engine) Cancel(taskID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.active, taskID)
}

// Dropped counts alerts discarded because the output buffer was full.
func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, ok := e.peek()
		if !ok {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.DueAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			for _, ev := range e.popDue(time.Now()) {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			stopTimer(timer)
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (DeadlineEvent, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.discardStaleHead()
	if len(e.pending) == 0 {
		return DeadlineEvent{}, false
	}
	return e.pending[0], true
}

func (e *Engine) popDue(now time.Time) []DeadlineEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	var due []DeadlineEvent
	for {
		e.discardStaleHead()
		if len(e.pending) == 0 || e.pending[0].DueAt.After(now) {
			break
		}
		ev := heap.Pop(&e.pending).(DeadlineEvent)
		delete(e.active, ev.TaskID)
		due = append(due, ev)
	}
	return due
}

// discardStaleHead pops entries that were canceled or replaced by a newer
// Schedule call. Caller must hold mu.
func (e *Engine) discardStaleHead() {
	for len(e.pending) > 0 {
		head := e.pending[0]
		current, ok := e.active[head.TaskID]
		if ok && current.Equal(head.DueAt) {
			return
		}
		heap.Pop(&e.pending)
	}
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
