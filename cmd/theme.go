package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or set the display theme" }
func (*themeCmd) Usage() string {
	return `inv theme [dark|light|toggle]

  Without argument, prints the current theme. The theme selects the style used
  to render tables in the terminal.
`
}

func (*themeCmd) SetFlags(f *flag.FlagSet) {}

func (*themeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one argument is expected")
		return subcommands.ExitUsageError
	}
	return withStore(ctx, true, func(store *inventory.Store) subcommands.ExitStatus {
		dark, err := store.DarkMode(ctx)
		if err != nil {
			return fail("reading theme", err)
		}
		switch f.Arg(0) {
		case "":
		case "dark":
			dark = true
		case "light":
			dark = false
		case "toggle":
			dark = !dark
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", f.Arg(0))
			return subcommands.ExitUsageError
		}
		if f.NArg() == 1 {
			if err := store.SetDarkMode(ctx, dark); err != nil {
				return fail("saving theme", err)
			}
		}
		name := "light"
		if dark {
			name = "dark"
		}
		fmt.Fprintln(stdout, name)
		return subcommands.ExitSuccess
	})
}
