package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/inventory"
	"github.com/google/subcommands"
	"github.com/pkg/errors"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the inventory with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `inv query <jsonpath>

  Evaluates a JSONPath expression against the stored inventory, a JSON array
  of {id, nombre, empresa, cantidad, fechaRegistro} objects, and prints the
  result as JSON.

Usage Examples:
$ inv query '$[?(@.cantidad < 30)].id'
$ inv query '$[*].nombre'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

// language parses JSONPath with filter expressions such as
// $[?(@.cantidad < 30)] and placeholders such as {#0: $[*].cantidad}.
var language = gval.Full(jsonpath.PlaceholderExtension())

// queryProducts evaluates path against the JSON form of products.
func queryProducts(ctx context.Context, products []inventory.Product, path string) (any, error) {
	eval, err := language.NewEvaluable(path)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %q", path)
	}
	data, err := json.Marshal(products)
	if err != nil {
		return nil, errors.Wrap(err, "encode inventory")
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode inventory")
	}
	v, err := eval(ctx, doc)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluate %q", path)
	}
	return v, nil
}

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one JSONPath expression is expected")
		return subcommands.ExitUsageError
	}
	return withStore(ctx, true, func(store *inventory.Store) subcommands.ExitStatus {
		products, err := store.Load(ctx)
		if err != nil {
			return fail("loading inventory", err)
		}
		v, err := queryProducts(ctx, products, f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fail("printing result", err)
		}
		return subcommands.ExitSuccess
	})
}
