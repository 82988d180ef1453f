package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// storageFlags returns the -driver and -dsn values typed before the
// subcommand on the completed line, the global flag values otherwise.
func storageFlags(line string) (driverName, location string) {
	fs := flag.NewFlagSet("inv", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	d := fs.String("driver", *driver, "")
	l := fs.String("dsn", *dsn, "")
	fs.Bool("v", false, "")
	fs.Bool("y", false, "")
	fs.Bool("raw", false, "")
	args := strings.Fields(line)
	if len(args) > 0 {
		args = args[1:]
	}
	// parsing stops at the subcommand, an incomplete flag keeps what was read
	_ = fs.Parse(args)
	return *d, *l
}

// predictProducts completes product ids from the storage named on the
// completed line, read from COMP_LINE, or the configured one.
// Nothing is proposed when the storage cannot be read.
var predictProducts = complete.PredictFunc(func(prefix string) []string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	driverName, location := storageFlags(os.Getenv("COMP_LINE"))
	backend, err := openBackend(ctx, driverName, location)
	if err != nil {
		return nil
	}
	defer backend.Close()
	products, err := inventory.NewStore(backend).Load(ctx)
	if err != nil {
		return nil
	}
	var ids []string
	for _, p := range products {
		if strings.HasPrefix(p.ID, prefix) {
			ids = append(ids, p.ID)
		}
	}
	return ids
})

// argPredictors lists the positional argument completion of the commands that have one.
var argPredictors = map[string]complete.Predictor{
	"edit":    predictProducts,
	"delete":  predictProducts,
	"stock":   predictProducts,
	"invoice": predictProducts,
	"theme":   predict.Set{"dark", "light", "toggle"},
}

// flagPredictor guesses a predictor from a flag default value.
func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "driver":
		return predict.Set(Drivers)
	case "o":
		return predict.Dirs("*")
	case "template":
		return predict.Files("*.xlsx")
	}
	return predict.Something
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) { m[f.Name] = flagPredictor(f) })
	return m
}

// Completion returns the shell completion tree of the commands registered in
// c, with the global flags of top.
func Completion(c *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(top),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		root.Sub[cmd.Name()] = &complete.Command{
			Flags: flagPredictors(fs),
			Args:  argPredictors[cmd.Name()],
		}
	})
	return root
}
