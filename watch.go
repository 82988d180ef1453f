package inventory

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// WatchLowStock subscribes to store changes and logs a warning each time a
// product becomes critical or runs out of stock. It returns the function
// stopping the watch.
func WatchLowStock(ctx context.Context, store *Store, log logrus.FieldLogger) (stop func(), err error) {
	initial, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	var mu sync.Mutex
	previous := levels(initial)

	return store.Subscribe(func(_ context.Context, products []Product) {
		mu.Lock()
		defer mu.Unlock()
		current := levels(products)
		for _, p := range products {
			was, known := previous[p.ID]
			now := current[p.ID]
			if known && was == now {
				continue
			}
			fields := logrus.Fields{"id": p.ID, "name": p.Name, "quantity": p.Quantity}
			switch {
			case now == NoStock:
				log.WithFields(fields).Warn("product out of stock")
			case now == Critical && (!known || was > Critical):
				log.WithFields(fields).Warn("critical stock")
			}
		}
		previous = current
	}), nil
}

func levels(products []Product) map[string]Level {
	m := make(map[string]Level, len(products))
	for _, p := range products {
		m[p.ID] = ReportLevel(p.Quantity)
	}
	return m
}
