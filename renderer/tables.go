package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/inventory"
	md "github.com/nao1215/markdown"
)

const (
	dateTimeLayout = "02/01/2006 15:04:05"
	criticalAlert  = " ⚠️ Critical stock"
	noProducts     = "No products found"
)

// quantity renders a quantity, flagged when critical.
func quantity(q int) string {
	s := md.Bold(strconv.Itoa(q))
	if inventory.IsCritical(q) {
		s += criticalAlert
	}
	return s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// InventoryMarkdown renders the inventory view: every product with its
// registration date, critical quantities flagged.
func InventoryMarkdown(products []inventory.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")
	if len(products) == 0 {
		doc.PlainText(noProducts)
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"ID", "Name", "Supplier", "Quantity", "Registered"},
	}
	for _, p := range products {
		registered := "N/A"
		if !p.Registered.IsZero() {
			registered = p.Registered.Local().Format(dateTimeLayout)
		}
		table.Rows = append(table.Rows, []string{
			md.Bold(cell(p.ID)),
			cell(p.Name),
			cell(p.Supplier),
			quantity(p.Quantity),
			registered,
		})
	}
	doc.Table(table)
	return doc.String()
}

// StockMarkdown renders the stock view: every product with its stock badge.
func StockMarkdown(products []inventory.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock")
	if len(products) == 0 {
		doc.PlainText(noProducts)
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"ID", "Name", "Supplier", "Quantity", "Status"},
	}
	for _, p := range products {
		table.Rows = append(table.Rows, []string{
			md.Bold(cell(p.ID)),
			cell(p.Name),
			cell(orNA(p.Supplier)),
			quantity(p.Quantity),
			"Stock " + inventory.BadgeLevel(p.Quantity).String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// CartMarkdown renders the pending lines of an invoicing session.
func CartMarkdown(lines []inventory.CartLine) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Cart")
	if len(lines) == 0 {
		doc.PlainText("The cart is empty")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Product", "Quantity"},
	}
	for _, l := range lines {
		table.Rows = append(table.Rows, []string{cell(l.Product), strconv.Itoa(l.Quantity)})
	}
	doc.Table(table)
	return doc.String()
}

// ReportMarkdown renders the summary of a stock report.
func ReportMarkdown(r *inventory.StockReport, filename string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Report")
	if filename != "" {
		doc.PlainText("File: " + md.Bold(filename))
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Summary", ""},
		Rows: [][]string{
			{"Total products", strconv.Itoa(r.Products)},
			{"Total units in stock", strconv.Itoa(r.Units)},
			{"Average per product", r.Average.String()},
			{"Critical products", strconv.Itoa(r.CriticalN)},
			{"Out of stock", strconv.Itoa(r.OutOfStock)},
		},
	})
	return doc.String()
}
