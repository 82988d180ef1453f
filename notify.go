package inventory

import (
	"context"
	"slices"
	"sync"
)

// Listener is called after every change of the persisted inventory with the
// new list. Listeners own the slice they receive.
//
// Listeners run after the store is unlocked and may call its methods,
// including the mutators, which notify them again.
type Listener func(ctx context.Context, products []Product)

// listeners is a process-wide observer list.
type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]Listener
}

// add registers fn and returns the function removing it.
func (l *listeners) add(fn Listener) (remove func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]Listener)
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.fns, id)
	}
}

// broadcast calls every listener in subscription order with its own copy of products.
func (l *listeners) broadcast(ctx context.Context, products []Product) {
	l.mu.Lock()
	ids := make([]int, 0, len(l.fns))
	for id := range l.fns {
		ids = append(ids, id)
	}
	fns := make([]Listener, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, l.fns[id])
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(ctx, clone(products))
	}
}
