package inventory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/etnz/inventory/kv"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// fixedNow is the clock used by tests.
var fixedNow = time.Date(2025, 3, 5, 9, 7, 45, 0, time.UTC)

// newTestStore returns a Store over a memory backend, with a fixed clock and
// a discarding logger.
func newTestStore(t *testing.T, products ...Product) (*Store, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory(nil)
	logger, _ := test.NewNullLogger()
	s := NewStore(mem, WithClock(func() time.Time { return fixedNow }), WithLogger(logger))
	if len(products) > 0 {
		require.NoError(t, s.Save(context.Background(), products))
	}
	return s, mem
}

// raw returns the persisted inventory exactly as stored.
func raw(t *testing.T, mem *kv.Memory) string {
	t.Helper()
	v, err := mem.Get(context.Background(), KeyInventory)
	require.NoError(t, err)
	return v
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

// prod is a shortcut to build a product in tests.
func prod(id, name, supplier string, quantity int) Product {
	return Product{ID: id, Name: name, Supplier: supplier, Quantity: quantity, Registered: fixedNow.Add(-time.Hour)}
}

// answers is an Asker replaying canned answers, a nil entry cancels.
func answers(values ...*string) Asker {
	i := 0
	return AskFunc(func(_ context.Context, _, _ string) (string, bool) {
		if i >= len(values) || values[i] == nil {
			return "", false
		}
		v := *values[i]
		i++
		return v, true
	})
}

func str(s string) *string { return &s }
