package cellgrid

import (
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// job is a unit of deferred work. run is called when the job falls due and
// returns the delay until the job wants to run again, or false when done.
type job interface {
	run(g *Grid) (next time.Duration, again bool)
	// cell reports the grid position the job works on, for cancellation.
	cell() (row, col int)
}

type timer struct {
	due time.Duration
	seq uint64
	job job
}

// byDueThenSeq orders timers by due time, then by scheduling order so that
// jobs due at the same instant run first-in first-out.
func byDueThenSeq(a, b interface{}) int {
	ta := a.(*timer)
	tb := b.(*timer)
	switch {
	case ta.due < tb.due:
		return -1
	case ta.due > tb.due:
		return 1
	case ta.seq < tb.seq:
		return -1
	case ta.seq > tb.seq:
		return 1
	}
	return 0
}

// scheduler is a timer queue driven by an explicit clock. Nothing runs
// until advance is called, so all jobs execute on the caller's goroutine.
type scheduler struct {
	now       time.Duration
	seq       uint64
	heap      *binaryheap.Heap
	cancelled map[uint64]bool
}

func newScheduler() *scheduler {
	return &scheduler{
		heap:      binaryheap.NewWith(byDueThenSeq),
		cancelled: make(map[uint64]bool),
	}
}

// after queues j to run once delay has elapsed.
func (s *scheduler) after(delay time.Duration, j job) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.heap.Push(&timer{due: s.now + delay, seq: s.seq, job: j})
}

// advance moves the clock forward by d and runs every job that falls due,
// in due order. A job that reschedules itself inside the window runs again
// in the same call. Returns the number of job runs.
func (s *scheduler) advance(g *Grid, d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	runs := 0
	for {
		v, ok := s.heap.Peek()
		if !ok {
			break
		}
		t := v.(*timer)
		if t.due > target {
			break
		}
		s.heap.Pop()
		if s.cancelled[t.seq] {
			delete(s.cancelled, t.seq)
			continue
		}
		s.now = t.due
		next, again := t.job.run(g)
		runs++
		if again {
			s.after(next, t.job)
		}
	}
	s.now = target
	return runs
}

// cancelCell drops every queued job working on (row, col) and returns how
// many were dropped.
func (s *scheduler) cancelCell(row, col int) int {
	n := 0
	it := s.heap.Iterator()
	for it.Next() {
		t := it.Value().(*timer)
		if s.cancelled[t.seq] {
			continue
		}
		if r, c := t.job.cell(); r == row && c == col {
			s.cancelled[t.seq] = true
			n++
		}
	}
	return n
}

// pending returns the number of queued jobs, excluding cancelled ones.
func (s *scheduler) pending() int {
	return s.heap.Size() - len(s.cancelled)
}

// count returns the number of live queued jobs accepted by keep.
func (s *scheduler) count(keep func(job) bool) int {
	n := 0
	it := s.heap.Iterator()
	for it.Next() {
		t := it.Value().(*timer)
		if !s.cancelled[t.seq] && keep(t.job) {
			n++
		}
	}
	return n
}
