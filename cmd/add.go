package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	supplier string
	quantity string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "register a product or add units to an existing one" }
func (*addCmd) Usage() string {
	return `inv add -n <name> -s <supplier> -q <quantity>

  Registers a new product with the next PROD-NNN identifier.
  If a product with the same name already exists (ignoring case), asks whether
  to add the quantity to it instead.

Usage Examples:
$ inv add -n Widget -s Acme -q 10
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
	f.StringVar(&c.supplier, "s", "", "Supplier name")
	f.StringVar(&c.quantity, "q", "", "Quantity, an integer greater than 0")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, err := inventory.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, true, func(store *inventory.Store) subcommands.ExitStatus {
		p, merged, err := store.Add(ctx, c.name, c.supplier, quantity, newTerminal())
		if err != nil {
			return fail("adding product", err)
		}
		if merged {
			fmt.Fprintf(stdout, "Quantity of %s increased to %d.\n", p.Label(), p.Quantity)
		} else {
			fmt.Fprintf(stdout, "Product %s registered with %d units.\n", p.Label(), p.Quantity)
		}
		return subcommands.ExitSuccess
	})
}
