// Package export writes the stock report as a spreadsheet workbook.
package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/inventory"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the worksheet holding the report.
const SheetName = "Inventario"

// Columns of the report sheet, with their width in characters.
// Headers and labels are in Spanish, like the stored keys and fields.
var Columns = []struct {
	Header string
	Width  float64
}{
	{"Código ID", 12},
	{"Nombre del Producto", 30},
	{"Empresa Proveedora", 25},
	{"Cantidad en Stock", 18},
	{"Estado de Stock", 16},
	{"Fecha de Registro", 15},
	{"Hora de Registro", 15},
}

var statusLabels = map[inventory.Level]string{
	inventory.NoStock:  "SIN STOCK",
	inventory.Critical: "CRÍTICO",
	inventory.Low:      "BAJO",
	inventory.Medium:   "MEDIO",
	inventory.High:     "ALTO",
}

// StatusLabel returns the "Estado de Stock" cell of a report level.
func StatusLabel(l inventory.Level) string {
	if label, ok := statusLabels[l]; ok {
		return label
	}
	return l.String()
}

// Writer builds report workbooks, either from scratch or on top of a
// template workbook.
type Writer struct {
	template []byte
}

// NewWriter returns a Writer. template is the content of an XLSX file used as
// the starting point of every workbook, it may be nil.
func NewWriter(template []byte) *Writer { return &Writer{template: template} }

// LoadWriter returns a loader reading the template workbook at path, for use with Lazy.
// An empty path loads a Writer without template.
func LoadWriter(path string) Loader {
	return func() (*Writer, error) {
		if path == "" {
			return NewWriter(nil), nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read template workbook")
		}
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid template workbook %q", path)
		}
		f.Close()
		return NewWriter(data), nil
	}
}

func (w *Writer) open() (*excelize.File, error) {
	if w.template == nil {
		f := excelize.NewFile()
		if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
			return nil, errors.Wrap(err, "rename sheet")
		}
		return f, nil
	}
	f, err := excelize.OpenReader(bytes.NewReader(w.template))
	if err != nil {
		return nil, errors.Wrap(err, "open template workbook")
	}
	idx, err := f.GetSheetIndex(SheetName)
	if err != nil {
		return nil, errors.Wrap(err, "find sheet")
	}
	if idx < 0 {
		if idx, err = f.NewSheet(SheetName); err != nil {
			return nil, errors.Wrap(err, "create sheet")
		}
	}
	f.SetActiveSheet(idx)
	return f, nil
}

// Write encodes the report as an XLSX workbook into out.
//
// The sheet lists one product per row, then after an empty row the summary
// with labels in the first column and values in the second.
func (w *Writer) Write(out io.Writer, r *inventory.StockReport) error {
	f, err := w.open()
	if err != nil {
		return err
	}
	defer f.Close()

	rows := [][]any{}
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c.Header
	}
	rows = append(rows, header)
	for _, row := range r.Rows {
		rows = append(rows, []any{row.ID, row.Name, row.Supplier, row.Quantity, StatusLabel(row.Level), row.Date, row.Time})
	}
	rows = append(rows,
		[]any{},
		[]any{"RESUMEN DEL INVENTARIO"},
		[]any{"Total de Productos:", r.Products},
		[]any{"Total de Unidades en Stock:", r.Units},
		[]any{"Promedio de Stock por Producto:", r.Average.IntPart()},
		[]any{"Productos en Estado Crítico:", r.CriticalN},
		[]any{"Productos sin Stock:", r.OutOfStock},
	)

	for i, values := range rows {
		for j, v := range values {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return errors.Wrap(err, "cell name")
			}
			if err := f.SetCellValue(SheetName, name, v); err != nil {
				return errors.Wrapf(err, "set %s", name)
			}
		}
	}
	for i, c := range Columns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.Wrap(err, "column name")
		}
		if err := f.SetColWidth(SheetName, col, col, c.Width); err != nil {
			return errors.Wrapf(err, "set width of %s", col)
		}
	}
	return errors.Wrap(f.Write(out), "write workbook")
}

// Save writes the report into dir under its own file name and returns the path.
func (w *Writer) Save(dir string, r *inventory.StockReport) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create %q", dir)
	}
	path := filepath.Join(dir, r.Filename())
	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "create %q", path)
	}
	if err := w.Write(file, r); err != nil {
		file.Close()
		return "", err
	}
	return path, errors.Wrapf(file.Close(), "close %q", path)
}
