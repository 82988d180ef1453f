package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issued = time.Date(2025, 3, 5, 9, 7, 45, 0, time.UTC)

func testInvoice() inventory.Invoice {
	return inventory.Invoice{
		Number: 42,
		Issued: issued,
		Lines: []inventory.CartLine{
			{Product: "Widget (PROD-001)", Quantity: 3},
			{Product: "Pipe | Fitting (PROD-002)", Quantity: 4},
		},
	}
}

func TestRenderInvoice(t *testing.T) {
	got := RenderInvoice(testInvoice())

	want := "# Sales Invoice FAC-000042\n\n" +
		"Date: 05/03/2025 09:07:45\n\n" +
		"| Product | Quantity |\n" +
		"|:---|---:|\n" +
		"| Widget (PROD-001) | 3 |\n" +
		"| Pipe \\| Fitting (PROD-002) | 4 |\n" +
		"\n" +
		"**Total items: 7**\n\n"
	assert.Equal(t, want, got)
}

func TestHTML(t *testing.T) {
	page, err := HTML("Invoice <FAC-000042>", RenderInvoice(testInvoice()))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>Invoice &lt;FAC-000042&gt;</title>")
	assert.Contains(t, page, "<h1>Sales Invoice FAC-000042</h1>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "Widget (PROD-001)</td>")
	assert.Contains(t, page, "Pipe | Fitting (PROD-002)</td>")
	assert.Contains(t, page, "<strong>Total items: 7</strong>")
	assert.Contains(t, page, "@media print")
}

func TestInventoryMarkdown(t *testing.T) {
	assert.Contains(t, InventoryMarkdown(nil), "No products found")

	got := InventoryMarkdown([]inventory.Product{
		{ID: "PROD-001", Name: "Widget", Supplier: "Acme", Quantity: 10, Registered: issued},
		{ID: "PROD-002", Name: "Gadget", Supplier: "Acme", Quantity: 40},
	})
	lines := strings.Split(got, "\n")
	var widget, gadget string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "PROD-001"):
			widget = l
		case strings.Contains(l, "PROD-002"):
			gadget = l
		}
	}
	assert.Contains(t, widget, "Critical stock")
	assert.NotContains(t, gadget, "Critical stock")
	assert.Contains(t, gadget, "N/A", "unknown registration date")
}

func TestStockMarkdown(t *testing.T) {
	assert.Contains(t, StockMarkdown(nil), "No products found")

	got := StockMarkdown([]inventory.Product{
		{ID: "PROD-001", Name: "Widget", Quantity: 29},
		{ID: "PROD-002", Name: "Gadget", Supplier: "Acme", Quantity: 0},
	})
	assert.Contains(t, got, "Stock high")
	assert.Contains(t, got, "Stock no stock")
	assert.Contains(t, got, "N/A")
}

func TestCartMarkdown(t *testing.T) {
	assert.Contains(t, CartMarkdown(nil), "The cart is empty")
	assert.Contains(t, CartMarkdown(testInvoice().Lines), "Widget (PROD-001)")
}

func TestReportMarkdown(t *testing.T) {
	r, err := inventory.NewStockReport([]inventory.Product{
		{ID: "PROD-001", Name: "Widget", Quantity: 10},
		{ID: "PROD-002", Name: "Gadget", Quantity: 0},
	}, issued)
	require.NoError(t, err)

	got := ReportMarkdown(r, r.Filename())
	assert.Contains(t, got, "Inventario_5-3-2025_09-07.xlsx")
	assert.Contains(t, got, "Out of stock")
	assert.Contains(t, got, "Critical products")
}
