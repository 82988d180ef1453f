package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "open a session" }
func (*loginCmd) Usage() string {
	return `inv login

  Opens a session. Every other command requires an active session.
  There is no credential check, the session is a single stored flag.
`
}

func (*loginCmd) SetFlags(f *flag.FlagSet) {}

func (*loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, false, func(store *inventory.Store) subcommands.ExitStatus {
		if err := store.SetSession(ctx, true); err != nil {
			return fail("opening session", err)
		}
		fmt.Fprintln(os.Stderr, "Session opened.")
		return subcommands.ExitSuccess
	})
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "close the session" }
func (*logoutCmd) Usage() string {
	return `inv logout

  Closes the session.
`
}

func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (*logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, true, func(store *inventory.Store) subcommands.ExitStatus {
		if err := store.SetSession(ctx, false); err != nil {
			return fail("closing session", err)
		}
		fmt.Fprintln(os.Stderr, "Session closed.")
		return subcommands.ExitSuccess
	})
}
