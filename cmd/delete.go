package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a product from the inventory" }
func (*deleteCmd) Usage() string {
	return `inv delete <id>

  Removes a product after confirmation. Use -y to skip the confirmation.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one product id is expected")
		return subcommands.ExitUsageError
	}
	return withStore(ctx, true, func(store *inventory.Store) subcommands.ExitStatus {
		p, err := store.Delete(ctx, f.Arg(0), newTerminal())
		if err != nil {
			return fail("deleting product", err)
		}
		fmt.Fprintf(stdout, "Product %s deleted.\n", p.Label())
		return subcommands.ExitSuccess
	})
}
