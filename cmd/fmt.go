package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/etnz/inventory"
)

// printMarkdown renders md on stdout, in the dark or light style following
// the stored preference. With -raw the markdown is printed as is.
func printMarkdown(ctx context.Context, store *inventory.Store, md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	style := styles.LightStyle
	if store != nil {
		if dark, err := store.DarkMode(ctx); err == nil && dark {
			style = styles.DarkStyle
		}
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot render markdown: %v\n", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot render markdown: %v\n", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
