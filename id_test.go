package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	testCases := []struct {
		name     string
		products []Product
		want     string
	}{
		{name: "empty inventory", products: nil, want: "PROD-001"},
		{name: "single product", products: []Product{{ID: "PROD-001"}}, want: "PROD-002"},
		{name: "maximum not last", products: []Product{{ID: "PROD-007"}, {ID: "PROD-003"}}, want: "PROD-008"},
		{name: "non conforming ids count as zero", products: []Product{{ID: "SKU-99"}, {ID: "abc"}}, want: "PROD-001"},
		{name: "mixed ids", products: []Product{{ID: "SKU-99"}, {ID: "PROD-041"}}, want: "PROD-042"},
		{name: "more than three digits", products: []Product{{ID: "PROD-999"}}, want: "PROD-1000"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextID(tc.products))
		})
	}
}

func TestNextIDIsUnique(t *testing.T) {
	var products []Product
	for i := 0; i < 50; i++ {
		id := NextID(products)
		_, exists := Find(products, id)
		require.False(t, exists, "id %s already used", id)
		products = append(products, Product{ID: id})
		// non conforming ids must never block generation
		if i%7 == 0 {
			products = append(products, Product{ID: "legacy"})
		}
	}
}

func TestIssueIDNeverReusesDeletedIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	a, _, err := s.Add(ctx, "A", "Acme", 1, Never)
	require.NoError(t, err)
	b, _, err := s.Add(ctx, "B", "Acme", 1, Never)
	require.NoError(t, err)
	assert.Equal(t, "PROD-001", a.ID)
	assert.Equal(t, "PROD-002", b.ID)

	_, err = s.Delete(ctx, b.ID, Always)
	require.NoError(t, err)

	c, _, err := s.Add(ctx, "C", "Acme", 1, Never)
	require.NoError(t, err)
	assert.Equal(t, "PROD-003", c.ID)
}

func TestIssueIDFollowsExistingData(t *testing.T) {
	// inventories written before the counter existed
	s, _ := newTestStore(t, prod("PROD-010", "A", "Acme", 1))
	p, _, err := s.Add(context.Background(), "B", "Acme", 1, Never)
	require.NoError(t, err)
	assert.Equal(t, "PROD-011", p.ID)
}
