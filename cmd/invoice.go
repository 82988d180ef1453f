package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
	"github.com/pkg/errors"
)

// invoiceCmd holds the flags for the 'invoice' subcommand.
type invoiceCmd struct {
	output string
	print  bool
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "sell products and issue invoices" }
func (*invoiceCmd) Usage() string {
	return `inv invoice [-o <dir>] [-print] [<id>=<quantity>...]

  Opens an invoicing session. Each sale decrements the stock immediately and
  adds a line to the cart. Finalizing the cart writes the invoice document
  factura-NNNNNN.md and its printable factura-NNNNNN.html, and empties the cart.

  With arguments, sells each <id>=<quantity> then finalizes the cart, printing
  it when -print is set.

  Without arguments, reads commands from the standard input:
    sell <id> <quantity>   add a sale to the cart
    cart                   show the cart
    stock [<id filter>]    show the stock levels
    generate               finalize the cart into an invoice document
    print                  finalize the cart and print the invoice
    quit                   end the session

Usage Examples:
$ inv invoice PROD-001=3 PROD-002=1
`
}

func (c *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", config.OutputDir, "Directory receiving the invoice documents")
	f.BoolVar(&c.print, "print", false, "Print the invoice instead of only saving it")
}

// parseSale parses "<id>=<quantity>".
func parseSale(arg string) (id string, quantity int, err error) {
	id, q, ok := strings.Cut(arg, "=")
	if !ok {
		return "", 0, errors.Errorf("invalid sale %q, want <id>=<quantity>", arg)
	}
	quantity, err = inventory.ParseQuantity(q)
	return strings.TrimSpace(id), quantity, err
}

func (c *invoiceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	type sale struct {
		id       string
		quantity int
	}
	var sales []sale
	for _, arg := range f.Args() {
		id, q, err := parseSale(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		sales = append(sales, sale{id, q})
	}

	return withStore(ctx, true, func(store *inventory.Store) subcommands.ExitStatus {
		stop, err := inventory.WatchLowStock(ctx, store, Logger())
		if err != nil {
			return fail("loading inventory", err)
		}
		defer stop()

		session := inventory.NewSession(store)
		term := newTerminal()
		if len(sales) == 0 {
			return c.interactive(ctx, store, session, term)
		}

		for _, s := range sales {
			if _, err := session.Sell(ctx, s.id, s.quantity); err != nil {
				status := fail("selling "+s.id, err)
				if !session.Empty() {
					// what was sold is already out of stock, invoice it
					if err := c.finalize(ctx, store, session, term, false); err != nil {
						fmt.Fprintf(os.Stderr, "Error generating invoice: %v\n", err)
					}
				}
				if status == subcommands.ExitSuccess {
					status = subcommands.ExitFailure
				}
				return status
			}
		}
		if err := c.finalize(ctx, store, session, term, c.print); errors.Is(err, inventory.ErrDeclined) {
			fmt.Fprintln(os.Stderr, "Printing cancelled, the invoice is saved instead.")
			if err := c.finalize(ctx, store, session, term, false); err != nil {
				return fail("generating invoice", err)
			}
		} else if err != nil {
			return fail("generating invoice", err)
		}
		return subcommands.ExitSuccess
	})
}

// finalize writes the documents of the cart invoice, then commits it.
// When writing fails the cart is kept and no invoice number is used.
func (c *invoiceCmd) finalize(ctx context.Context, store *inventory.Store, session *inventory.Session, confirm inventory.Confirmer, printed bool) error {
	var doc string
	var paths []string
	write := func(inv inventory.Invoice) (err error) {
		doc = renderer.RenderInvoice(inv)
		paths, err = writeInvoice(c.output, inv, doc)
		return err
	}
	var inv inventory.Invoice
	var err error
	if printed {
		inv, err = session.Print(ctx, confirm, write)
	} else {
		inv, err = session.Generate(ctx, write)
	}
	if err != nil {
		return err
	}
	if printed {
		printMarkdown(ctx, store, doc)
	}
	for _, p := range paths {
		fmt.Fprintf(stdout, "Invoice %s saved to %s\n", inv.ID(), p)
	}
	return nil
}

// writeInvoice writes the markdown and html documents of inv into dir.
func writeInvoice(dir string, inv inventory.Invoice, doc string) ([]string, error) {
	page, err := renderer.HTML("Invoice "+inv.ID(), doc)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %q", dir)
	}
	var paths []string
	for ext, content := range map[string]string{"md": doc, "html": page} {
		path := filepath.Join(dir, inv.Filename(ext))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, errors.Wrapf(err, "write %q", path)
		}
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths, nil
}

func (c *invoiceCmd) interactive(ctx context.Context, store *inventory.Store, session *inventory.Session, term *terminal) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Invoicing session, type 'quit' to end.")
	for {
		fmt.Fprint(os.Stderr, "> ")
		line, ok := term.readLine()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "sell":
			if len(fields) != 3 {
				fmt.Fprintln(os.Stderr, "usage: sell <id> <quantity>")
				continue
			}
			q, err := inventory.ParseQuantity(fields[2])
			if err == nil {
				_, err = session.Sell(ctx, fields[1], q)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			printMarkdown(ctx, store, renderer.CartMarkdown(session.Cart()))
		case "cart":
			printMarkdown(ctx, store, renderer.CartMarkdown(session.Cart()))
		case "stock":
			products, err := store.Load(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			filter := ""
			if len(fields) > 1 {
				filter = fields[1]
			}
			printMarkdown(ctx, store, renderer.StockMarkdown(inventory.SearchByID(products, filter)))
		case "generate", "print":
			err := c.finalize(ctx, store, session, term, fields[0] == "print")
			switch {
			case errors.Is(err, inventory.ErrDeclined):
				fmt.Fprintln(os.Stderr, "Printing cancelled, the cart is kept.")
			case err != nil:
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "quit", "exit":
			return c.quit(session)
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n", fields[0])
		}
	}
	return c.quit(session)
}

func (c *invoiceCmd) quit(session *inventory.Session) subcommands.ExitStatus {
	if !session.Empty() {
		fmt.Fprintf(os.Stderr, "Warning: %d cart lines were not invoiced, their stock stays decremented.\n", len(session.Cart()))
	}
	return subcommands.ExitSuccess
}
