// Package cmd implements the CLI application to manage an inventory and
// issue invoices.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/kv"
	"github.com/etnz/inventory/kv/filekv"
	"github.com/etnz/inventory/kv/sqlkv"
	"github.com/google/subcommands"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")
	c.Register(&themeCmd{}, "session")

	c.Register(&addCmd{}, "inventory")
	c.Register(&editCmd{}, "inventory")
	c.Register(&deleteCmd{}, "inventory")
	c.Register(&listCmd{}, "inventory")
	c.Register(&stockCmd{}, "inventory")

	c.Register(&invoiceCmd{}, "sales")

	c.Register(&reportCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// Config holds the defaults read from the INV_* environment variables.
type Config struct {
	Driver    string `envconfig:"DRIVER" default:"file"`
	DSN       string `envconfig:"DSN"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warning"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"."`
	Verbose   bool   `envconfig:"VERBOSE"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("inv", &c); err != nil {
		return Config{}, errors.Wrap(err, "read configuration")
	}
	return c, nil
}

var config = mustLoadConfig()

func mustLoadConfig() Config {
	c, err := LoadConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	return c
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var driver = flag.String("driver", config.Driver, "Storage backend: file, sqlite, postgres or mysql")
var dsn = flag.String("dsn", config.DSN, "Storage location: a directory for file, a path for sqlite, a connection string otherwise")
var Verbose = flag.Bool("v", config.Verbose, "Log debug messages")
var assumeYes = flag.Bool("y", false, "Answer yes to every confirmation")
var raw = flag.Bool("raw", false, "Print raw markdown instead of rendering it")

// stdin and stdout are the streams used by commands. Tests replace them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// Drivers lists the accepted values of the -driver flag.
var Drivers = []string{"file", "sqlite", "postgres", "mysql"}

// Logger returns the application logger configured from the flags.
func Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	if *Verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	return log
}

// OpenBackend opens the key-value storage selected by the global flags.
func OpenBackend(ctx context.Context) (kv.Store, error) {
	return openBackend(ctx, *driver, *dsn)
}

func openBackend(ctx context.Context, driverName, location string) (kv.Store, error) {
	if driverName == "file" {
		return filekv.New(location)
	}
	if _, ok := sqlkv.Dialects[driverName]; !ok {
		return nil, errors.Errorf("unknown driver %q, want one of %v", driverName, Drivers)
	}
	return sqlkv.Open(ctx, driverName, location)
}

// withStore opens the inventory store, runs fn and closes the store.
// Unless session is false, fn runs only when a session is active.
func withStore(ctx context.Context, session bool, fn func(*inventory.Store) subcommands.ExitStatus) subcommands.ExitStatus {
	backend, err := OpenBackend(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}
	defer backend.Close()

	store := inventory.NewStore(backend, inventory.WithLogger(Logger()))
	if session {
		if err := store.RequireSession(ctx); err != nil {
			return fail("checking session", err)
		}
	}
	return fn(store)
}

// fail reports err on stderr and returns the matching exit status.
func fail(action string, err error) subcommands.ExitStatus {
	switch {
	case errors.Is(err, inventory.ErrDeclined):
		fmt.Fprintln(os.Stderr, "Cancelled, nothing was changed.")
		return subcommands.ExitSuccess
	case errors.Is(err, inventory.ErrNoSession):
		fmt.Fprintln(os.Stderr, "Error: no active session, run 'inv login' first.")
		return subcommands.ExitFailure
	case errors.Is(err, inventory.ErrMalformedInventory):
		fmt.Fprintf(os.Stderr, "Error %s: %v\nThe stored inventory cannot be read, fix or remove it before any change.\n", action, err)
		return subcommands.ExitFailure
	case inventory.IsUserError(err):
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", action, err)
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", action, err)
	return subcommands.ExitFailure
}
