package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddValidation(t *testing.T) {
	testCases := []struct {
		name     string
		product  string
		supplier string
		quantity int
		wantErr  error
	}{
		{"empty name", "  ", "Acme", 1, ErrEmptyName},
		{"empty supplier", "Widget", "", 1, ErrEmptySupplier},
		{"zero quantity", "Widget", "Acme", 0, ErrInvalidQuantity},
		{"negative quantity", "Widget", "Acme", -3, ErrInvalidQuantity},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mem := newTestStore(t)
			_, _, err := s.Add(context.Background(), tc.product, tc.supplier, tc.quantity, Always)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, mem.Keys(), "nothing must be written")
		})
	}
}

func TestAddNewProduct(t *testing.T) {
	s, _ := newTestStore(t)
	p, merged, err := s.Add(context.Background(), "  Widget ", " Acme ", 10, Never)
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, Product{ID: "PROD-001", Name: "Widget", Supplier: "Acme", Quantity: 10, Registered: fixedNow}, p)
}

func TestAddMerge(t *testing.T) {
	ctx := context.Background()
	existing := []Product{prod("PROD-001", "Widget", "Acme", 10), prod("PROD-002", "Gadget", "Acme", 3)}

	t.Run("confirmed", func(t *testing.T) {
		s, _ := newTestStore(t, existing...)
		var asked string
		confirm := ConfirmFunc(func(_ context.Context, msg string) bool { asked = msg; return true })

		p, merged, err := s.Add(ctx, "wIDGET", "Other", 5, confirm)
		require.NoError(t, err)
		assert.True(t, merged)
		assert.Contains(t, asked, "wIDGET")
		assert.Equal(t, "PROD-001", p.ID)
		assert.Equal(t, 15, p.Quantity)
		assert.Equal(t, "Acme", p.Supplier, "merging keeps the supplier")
		assert.Equal(t, fixedNow, p.Registered)

		products, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("declined", func(t *testing.T) {
		s, mem := newTestStore(t, existing...)
		before := raw(t, mem)
		_, _, err := s.Add(ctx, "widget", "Acme", 5, Never)
		assert.ErrorIs(t, err, ErrDeclined)
		assert.Equal(t, before, raw(t, mem))
	})
}

func TestEdit(t *testing.T) {
	ctx := context.Background()
	existing := []Product{prod("PROD-001", "Widget", "Acme", 10), prod("PROD-002", "Gadget", "Acme", 3)}

	t.Run("all answers", func(t *testing.T) {
		s, _ := newTestStore(t, existing...)
		p, err := s.Edit(ctx, "PROD-002", answers(str(" Gizmo "), str("Globex"), str("0")))
		require.NoError(t, err)
		assert.Equal(t, Product{ID: "PROD-002", Name: "Gizmo", Supplier: "Globex", Quantity: 0, Registered: fixedNow}, p)

		products, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "PROD-001", products[0].ID)
		assert.Equal(t, p, products[1])
	})

	t.Run("defaults are the current values", func(t *testing.T) {
		s, _ := newTestStore(t, existing...)
		var defaults []string
		ask := AskFunc(func(_ context.Context, _, current string) (string, bool) {
			defaults = append(defaults, current)
			return current, true
		})
		_, err := s.Edit(ctx, "PROD-001", ask)
		require.NoError(t, err)
		assert.Equal(t, []string{"Widget", "Acme", "10"}, defaults)
	})

	cancelled := []struct {
		name string
		ask  Asker
	}{
		{"cancel name", answers(nil)},
		{"cancel supplier", answers(str("Gizmo"), nil)},
		{"cancel quantity", answers(str("Gizmo"), str("Globex"), nil)},
	}
	for _, tc := range cancelled {
		t.Run(tc.name, func(t *testing.T) {
			s, mem := newTestStore(t, existing...)
			before := raw(t, mem)
			_, err := s.Edit(ctx, "PROD-001", tc.ask)
			assert.ErrorIs(t, err, ErrDeclined)
			assert.Equal(t, before, raw(t, mem))
		})
	}

	invalid := []struct {
		name    string
		ask     Asker
		wantErr error
	}{
		{"negative quantity", answers(str("Gizmo"), str("Globex"), str("-1")), ErrInvalidQuantity},
		{"not a number", answers(str("Gizmo"), str("Globex"), str("many")), ErrInvalidQuantity},
		{"blank name", answers(str(" "), str("Globex"), str("1")), ErrEmptyName},
		{"blank supplier", answers(str("Gizmo"), str(""), str("1")), ErrEmptySupplier},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			s, mem := newTestStore(t, existing...)
			before := raw(t, mem)
			_, err := s.Edit(ctx, "PROD-001", tc.ask)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, before, raw(t, mem))
		})
	}

	t.Run("unknown product", func(t *testing.T) {
		s, _ := newTestStore(t, existing...)
		_, err := s.Edit(ctx, "PROD-404", answers())
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	a, b, c := prod("PROD-001", "A", "Acme", 1), prod("PROD-002", "B", "Acme", 2), prod("PROD-003", "C", "Acme", 3)

	t.Run("confirmed", func(t *testing.T) {
		s, mem := newTestStore(t, a, b, c)
		p, err := s.Delete(ctx, "PROD-002", Always)
		require.NoError(t, err)
		assert.Equal(t, b, p)
		assert.JSONEq(t, mustJSON(t, []Product{a, c}), raw(t, mem))
	})

	t.Run("declined", func(t *testing.T) {
		s, mem := newTestStore(t, a, b, c)
		before := raw(t, mem)
		_, err := s.Delete(ctx, "PROD-002", Never)
		assert.ErrorIs(t, err, ErrDeclined)
		assert.Equal(t, before, raw(t, mem))
	})

	t.Run("unknown product", func(t *testing.T) {
		s, _ := newTestStore(t, a)
		_, err := s.Delete(ctx, "PROD-404", Always)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestSearch(t *testing.T) {
	products := []Product{
		prod("PROD-001", "Widget", "Acme", 1),
		prod("PROD-002", "Gadget", "Globex", 2),
		prod("PROD-003", "Gizmo", "Widgets Inc", 3),
	}
	ids := func(ps []Product) []string {
		var out []string
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}
	assert.Equal(t, []string{"PROD-001", "PROD-003"}, ids(Search(products, "WIDGET")))
	assert.Equal(t, []string{"PROD-002"}, ids(Search(products, "globex")))
	assert.Equal(t, []string{"PROD-003"}, ids(Search(products, "prod-003")))
	assert.Len(t, Search(products, "  "), 3)
	assert.Empty(t, Search(products, "nothing"))

	assert.Equal(t, []string{"PROD-002"}, ids(SearchByID(products, "002")))
	assert.Empty(t, SearchByID(products, "widget"), "stock search only looks at ids")
}

func TestParseQuantity(t *testing.T) {
	q, err := ParseQuantity(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, q)

	for _, s := range []string{"", "1.5", "12abc", "NaN", "Infinity"} {
		_, err := ParseQuantity(s)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "input %q", s)
	}
}

// TestWidgetScenario walks through adding, merging and selling a product.
func TestWidgetScenario(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	p, _, err := s.Add(ctx, "Widget", "Acme", 10, Never)
	require.NoError(t, err)
	assert.Equal(t, FirstID, p.ID)
	assert.Equal(t, 10, p.Quantity)

	p, merged, err := s.Add(ctx, "Widget", "Acme", 5, Always)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, FirstID, p.ID)
	assert.Equal(t, 15, p.Quantity)

	session := NewSession(s)
	_, err = session.Sell(ctx, p.ID, 20)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	products, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, products[0].Quantity)
	assert.True(t, session.Empty())

	_, err = session.Sell(ctx, p.ID, 15)
	require.NoError(t, err)
	products, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, products[0].Quantity)
	assert.Equal(t, []CartLine{{Product: "Widget (PROD-001)", Quantity: 15}}, session.Cart())
}
