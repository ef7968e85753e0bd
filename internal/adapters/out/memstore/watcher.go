package memstore

import (
	"sync"

	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

type event struct {
	doc    ports.Document
	exists bool
}

type notification struct {
	w      *watcher
	doc    ports.Document
	exists bool
}

// watcher delivers events to one subscription callback sequentially, via a
// dedicated goroutine draining an unbounded queue. Enqueueing never blocks,
// so the store can notify while holding its mutex released but its callers
// still in a write path.
type watcher struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []event
	closed  bool

	fn func(ports.Document, bool)
}

func newWatcher(fn func(ports.Document, bool)) *watcher {
	w := &watcher{fn: fn}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

func (w *watcher) enqueue(ev event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending = append(w.pending, ev)
	w.cond.Signal()
}

func (w *watcher) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.cond.Signal()
}

func (w *watcher) run() {
	for {
		w.mu.Lock()
		for len(w.pending) == 0 && !w.closed {
			w.cond.Wait()
		}
		if len(w.pending) == 0 && w.closed {
			w.mu.Unlock()
			return
		}
		ev := w.pending[0]
		w.pending = w.pending[1:]
		w.mu.Unlock()

		w.fn(ev.doc, ev.exists)
	}
}

func dispatch(pending []notification) {
	for _, n := range pending {
		n.w.enqueue(event{doc: n.doc, exists: n.exists})
	}
}
