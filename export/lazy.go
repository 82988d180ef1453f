package export

import (
	"context"
	"sync"

	"github.com/etnz/inventory"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// ErrUnavailable is returned when the writer is still missing after its initialization.
var ErrUnavailable = errors.New("spreadsheet writer unavailable")

// Loader initializes a Writer.
type Loader func() (*Writer, error)

// Lazy defers loading the Writer until the first export.
//
// An export finding no writer initializes it and retries exactly once.
// Concurrent exports share a single initialization. A failed initialization
// is not remembered: the next export tries again.
type Lazy struct {
	load  Loader
	group singleflight.Group

	mu     sync.Mutex
	writer *Writer
}

// NewLazy returns a Lazy writer using load for its initialization.
func NewLazy(load Loader) *Lazy { return &Lazy{load: load} }

func (l *Lazy) current() *Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writer
}

// Ready reports whether the writer has been initialized.
func (l *Lazy) Ready() bool { return l.current() != nil }

// init loads the writer once for all concurrent callers.
func (l *Lazy) init(ctx context.Context) error {
	ch := l.group.DoChan("writer", func() (any, error) {
		if w := l.current(); w != nil {
			return w, nil
		}
		w, err := l.load()
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.writer = w
		l.mu.Unlock()
		return w, nil
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

// Save exports the report into dir, initializing the writer first if needed.
func (l *Lazy) Save(ctx context.Context, dir string, r *inventory.StockReport) (string, error) {
	w := l.current()
	if w == nil {
		if err := l.init(ctx); err != nil {
			return "", errors.Wrap(err, "initialize spreadsheet writer")
		}
		if w = l.current(); w == nil {
			return "", ErrUnavailable
		}
	}
	return w.Save(dir, r)
}
