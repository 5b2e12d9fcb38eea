package editor

import (
	"slices"
	"sync"
)

// ResizeFunc receives new canvas dimensions.
type ResizeFunc func(width, height float64)

// ResizeSource delivers canvas size changes. Subscribe returns the function
// that removes the subscription.
type ResizeSource interface {
	Subscribe(fn ResizeFunc) (unsubscribe func())
}

// ResizeBus is an in-process ResizeSource. The host publishes window size
// changes; mounted sessions receive them.
type ResizeBus struct {
	mu   sync.Mutex
	next int
	subs map[int]ResizeFunc
}

// NewResizeBus creates a bus with no subscribers.
func NewResizeBus() *ResizeBus {
	return &ResizeBus{subs: make(map[int]ResizeFunc)}
}

// Subscribe registers fn. Calling the returned function more than once is safe.
func (b *ResizeBus) Subscribe(fn ResizeFunc) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers a size to every subscriber in subscription order.
func (b *ResizeBus) Publish(width, height float64) {
	b.mu.Lock()
	ids := make([]int, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	fns := make([]ResizeFunc, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, b.subs[id])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(width, height)
	}
}

// Len returns the number of live subscriptions.
func (b *ResizeBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
