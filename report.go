package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow is one product line of the stock report.
type ReportRow struct {
	ID       string
	Name     string
	Supplier string
	Quantity int
	Level    Level
	Date     string // DD/MM/YYYY, N/A when unknown
	Time     string // HH:MM:SS, N/A when unknown
}

// StockReport is the exportable view of the inventory with its summary.
type StockReport struct {
	Generated  time.Time
	Rows       []ReportRow
	Products   int             // number of products
	Units      int             // total units in stock
	Average    decimal.Decimal // average units per product, rounded to the unit
	CriticalN  int             // products below the critical threshold
	OutOfStock int             // products with no unit left
}

// NewStockReport computes the report of products at time now.
// An empty inventory has nothing to report and returns ErrEmptyInventory.
func NewStockReport(products []Product, now time.Time) (*StockReport, error) {
	if len(products) == 0 {
		return nil, ErrEmptyInventory
	}
	r := &StockReport{Generated: now, Products: len(products)}
	for _, p := range products {
		supplier := p.Supplier
		if supplier == "" {
			supplier = "N/A"
		}
		row := ReportRow{
			ID:       p.ID,
			Name:     p.Name,
			Supplier: supplier,
			Quantity: p.Quantity,
			Level:    ReportLevel(p.Quantity),
			Date:     "N/A",
			Time:     "N/A",
		}
		if !p.Registered.IsZero() {
			local := p.Registered.In(now.Location())
			row.Date = local.Format("02/01/2006")
			row.Time = local.Format("15:04:05")
		}
		r.Rows = append(r.Rows, row)

		r.Units += p.Quantity
		if IsCritical(p.Quantity) {
			r.CriticalN++
		}
		if p.Quantity == 0 {
			r.OutOfStock++
		}
	}
	// Round rounds half away from zero, which matches half up for the
	// non-negative totals found here.
	r.Average = decimal.NewFromInt(int64(r.Units)).Div(decimal.NewFromInt(int64(r.Products))).Round(0)
	return r, nil
}

// Filename returns the spreadsheet file name, e.g. Inventario_5-3-2025_09-07.xlsx.
func (r *StockReport) Filename() string {
	t := r.Generated
	return fmt.Sprintf("Inventario_%d-%d-%d_%02d-%02d.xlsx", t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute())
}
