package cmd

import (
	"context"
	"flag"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/export"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	output   string
	template string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "export the inventory as a spreadsheet" }
func (*reportCmd) Usage() string {
	return `inv report [-o <dir>] [-template <file.xlsx>]

  Writes the inventory and its summary into Inventario_D-M-YYYY_HH-MM.xlsx,
  and displays the summary.
  With -template, the sheet is added to a copy of an existing workbook.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", config.OutputDir, "Directory receiving the spreadsheet")
	f.StringVar(&c.template, "template", "", "Workbook to start from")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, true, func(store *inventory.Store) subcommands.ExitStatus {
		products, err := store.Load(ctx)
		if err != nil {
			return fail("loading inventory", err)
		}
		report, err := inventory.NewStockReport(products, store.Now())
		if err != nil {
			return fail("building report", err)
		}
		path, err := export.NewLazy(export.LoadWriter(c.template)).Save(ctx, c.output, report)
		if err != nil {
			return fail("exporting report", err)
		}
		printMarkdown(ctx, store, renderer.ReportMarkdown(report, path))
		return subcommands.ExitSuccess
	})
}
