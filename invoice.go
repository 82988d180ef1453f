package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// CartLine is one sale pending invoice finalization.
type CartLine struct {
	Product  string `json:"producto"` // display label, see Product.Label
	Quantity int    `json:"cantidad"`
}

// Invoice is a finalized cart.
type Invoice struct {
	Number int
	Issued time.Time
	Lines  []CartLine
}

// ID returns the invoice identifier, e.g. FAC-000042.
func (inv Invoice) ID() string { return fmt.Sprintf("FAC-%06d", inv.Number) }

// Filename returns the file name for the invoice document with the given extension.
func (inv Invoice) Filename(ext string) string { return fmt.Sprintf("factura-%06d.%s", inv.Number, ext) }

// TotalItems returns the sum of the quantities of all lines.
func (inv Invoice) TotalItems() int {
	total := 0
	for _, l := range inv.Lines {
		total += l.Quantity
	}
	return total
}

// Session is an invoicing session: a cart filled by sales and emptied by
// each finalized invoice. The cart lives in memory only.
//
// Stock is decremented when a line is added to the cart, not when the invoice
// is finalized.
type Session struct {
	store *Store
	cart  []CartLine
}

// NewSession starts a session with an empty cart.
func NewSession(store *Store) *Session { return &Session{store: store} }

// Cart returns a copy of the pending lines.
func (s *Session) Cart() []CartLine { return append([]CartLine(nil), s.cart...) }

// Empty reports whether the cart has no line.
func (s *Session) Empty() bool { return len(s.cart) == 0 }

// Sell decrements the stock of product id by quantity and appends the sale
// to the cart. It fails with ErrInsufficientStock, leaving the stock
// unchanged, when quantity exceeds the stock.
func (s *Session) Sell(ctx context.Context, id string, quantity int) (CartLine, error) {
	p, err := s.store.decrement(ctx, id, quantity)
	if err != nil {
		return CartLine{}, err
	}
	line := CartLine{Product: p.Label(), Quantity: quantity}
	s.cart = append(s.cart, line)
	s.store.log.WithFields(logrus.Fields{"id": p.ID, "quantity": quantity, "left": p.Quantity}).Debug("product sold")
	return line, nil
}

// Generate finalizes the cart into an invoice.
//
// The invoice is passed to write, typically saving its document, before
// anything is committed. If write fails the cart and the invoice counter are
// left unchanged. Otherwise the counter is incremented, the cart is cleared
// and subscribers are notified. write may be nil.
func (s *Session) Generate(ctx context.Context, write func(Invoice) error) (Invoice, error) {
	if s.Empty() {
		return Invoice{}, ErrEmptyCart
	}
	var inv Invoice
	err := s.store.issueInvoice(ctx, func(n int) error {
		inv = Invoice{Number: n, Issued: s.store.now(), Lines: s.Cart()}
		if write == nil {
			return nil
		}
		return write(inv)
	})
	if err != nil {
		return Invoice{}, err
	}
	s.cart = nil
	log := s.store.log.WithFields(logrus.Fields{"invoice": inv.ID(), "lines": len(inv.Lines)})
	log.Info("invoice generated")
	if err := s.store.Notify(ctx); err != nil {
		log.WithError(err).Warn("cannot notify the new stock levels")
	}
	return inv, nil
}

// Print is Generate for a printed invoice: confirm is asked first, and when
// declined the cart is kept and ErrDeclined returned.
func (s *Session) Print(ctx context.Context, confirm Confirmer, write func(Invoice) error) (Invoice, error) {
	if s.Empty() {
		return Invoice{}, ErrEmptyCart
	}
	if !confirm.Confirm(ctx, "Print the invoice? The cart will be cleared.") {
		return Invoice{}, ErrDeclined
	}
	return s.Generate(ctx, write)
}
