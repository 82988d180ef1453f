package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the inventory" }
func (*listCmd) Usage() string {
	return `inv list [<filter>...]

  Displays the products, in registration order. Products with less than 30
  units are flagged as critical. The optional filter keeps products whose id,
  name or supplier contains it, ignoring case.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := strings.Join(f.Args(), " ")
	return withStore(ctx, true, func(store *inventory.Store) subcommands.ExitStatus {
		products, err := store.Load(ctx)
		if err != nil {
			return fail("loading inventory", err)
		}
		printMarkdown(ctx, store, renderer.InventoryMarkdown(inventory.Search(products, filter)))
		return subcommands.ExitSuccess
	})
}

type stockCmd struct{}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "display the stock levels" }
func (*stockCmd) Usage() string {
	return `inv stock [<id filter>]

  Displays the quantity and stock level badge of each product. The optional
  filter keeps products whose id contains it, ignoring case.
`
}

func (*stockCmd) SetFlags(f *flag.FlagSet) {}

func (*stockCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, true, func(store *inventory.Store) subcommands.ExitStatus {
		products, err := store.Load(ctx)
		if err != nil {
			return fail("loading inventory", err)
		}
		printMarkdown(ctx, store, renderer.StockMarkdown(inventory.SearchByID(products, f.Arg(0))))
		return subcommands.ExitSuccess
	})
}
