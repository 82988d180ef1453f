package inventory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, message string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, message string) bool { return f(ctx, message) }

// Always is a Confirmer that accepts everything.
var Always = ConfirmFunc(func(context.Context, string) bool { return true })

// Never is a Confirmer that declines everything.
var Never = ConfirmFunc(func(context.Context, string) bool { return false })

// Asker asks the user for a replacement value. current is the value proposed
// by default. ok is false when the user cancels.
type Asker interface {
	Ask(ctx context.Context, question, current string) (answer string, ok bool)
}

// AskFunc adapts a function to the Asker interface.
type AskFunc func(ctx context.Context, question, current string) (string, bool)

func (f AskFunc) Ask(ctx context.Context, question, current string) (string, bool) {
	return f(ctx, question, current)
}

// Add registers quantity units of a product.
//
// When a product with the same name already exists (ignoring case), confirm
// is asked whether to increase its quantity instead. Declining aborts with
// ErrDeclined and nothing is written. merged reports which path was taken.
func (s *Store) Add(ctx context.Context, name, supplier string, quantity int, confirm Confirmer) (p Product, merged bool, err error) {
	name, supplier = strings.TrimSpace(name), strings.TrimSpace(supplier)
	switch {
	case name == "":
		return Product{}, false, ErrEmptyName
	case supplier == "":
		return Product{}, false, ErrEmptySupplier
	case quantity <= 0:
		return Product{}, false, errors.Wrap(ErrInvalidQuantity, "must be greater than 0")
	}

	err = s.update(ctx, func(products []Product) ([]Product, error) {
		if i := findByName(products, name); i >= 0 {
			msg := fmt.Sprintf("The product %q already exists. Increase its quantity?", name)
			if !confirm.Confirm(ctx, msg) {
				return nil, ErrDeclined
			}
			products[i].Quantity += quantity
			products[i].Registered = s.now()
			p, merged = products[i], true
			return products, nil
		}

		id, err := s.issueID(ctx, products)
		if err != nil {
			return nil, err
		}
		p = Product{
			ID:         id,
			Name:       name,
			Supplier:   supplier,
			Quantity:   quantity,
			Registered: s.now(),
		}
		return append(products, p), nil
	})
	if err != nil {
		return Product{}, false, err
	}
	s.log.WithFields(logrus.Fields{"id": p.ID, "quantity": p.Quantity, "merged": merged}).Debug("product added")
	return p, merged, nil
}

// Edit replaces the name, supplier and quantity of the product id with the
// answers given to ask. Cancelling any question aborts the whole edit with
// ErrDeclined and no field is changed.
func (s *Store) Edit(ctx context.Context, id string, ask Asker) (p Product, err error) {
	err = s.update(ctx, func(products []Product) ([]Product, error) {
		i := find(products, id)
		if i < 0 {
			return nil, errors.Wrapf(ErrProductNotFound, "%q", id)
		}
		current := products[i]

		name, ok := ask.Ask(ctx, "New product name", current.Name)
		if !ok {
			return nil, ErrDeclined
		}
		supplier, ok := ask.Ask(ctx, "New supplier", current.Supplier)
		if !ok {
			return nil, ErrDeclined
		}
		rawQuantity, ok := ask.Ask(ctx, "New quantity", strconv.Itoa(current.Quantity))
		if !ok {
			return nil, ErrDeclined
		}

		name, supplier = strings.TrimSpace(name), strings.TrimSpace(supplier)
		if name == "" {
			return nil, ErrEmptyName
		}
		if supplier == "" {
			return nil, ErrEmptySupplier
		}
		quantity, err := ParseQuantity(rawQuantity)
		if err != nil {
			return nil, err
		}
		if quantity < 0 {
			return nil, errors.Wrap(ErrInvalidQuantity, "must not be negative")
		}

		p = Product{
			ID:         current.ID,
			Name:       name,
			Supplier:   supplier,
			Quantity:   quantity,
			Registered: s.now(),
		}
		products[i] = p
		return products, nil
	})
	if err != nil {
		return Product{}, err
	}
	s.log.WithFields(logrus.Fields{"id": p.ID, "quantity": p.Quantity}).Debug("product edited")
	return p, nil
}

// Delete removes the product id once confirm accepts it. The order of the
// remaining products is unchanged.
func (s *Store) Delete(ctx context.Context, id string, confirm Confirmer) (p Product, err error) {
	err = s.update(ctx, func(products []Product) ([]Product, error) {
		i := find(products, id)
		if i < 0 {
			return nil, errors.Wrapf(ErrProductNotFound, "%q", id)
		}
		p = products[i]
		msg := fmt.Sprintf("Delete %q? This cannot be undone.", p.Name)
		if !confirm.Confirm(ctx, msg) {
			return nil, ErrDeclined
		}
		return append(products[:i], products[i+1:]...), nil
	})
	if err != nil {
		return Product{}, err
	}
	s.log.WithField("id", p.ID).Debug("product deleted")
	return p, nil
}

// decrement removes quantity units from the product id.
func (s *Store) decrement(ctx context.Context, id string, quantity int) (p Product, err error) {
	if strings.TrimSpace(id) == "" {
		return Product{}, ErrNoProduct
	}
	if quantity <= 0 {
		return Product{}, errors.Wrap(ErrInvalidQuantity, "must be greater than 0")
	}
	err = s.update(ctx, func(products []Product) ([]Product, error) {
		i := find(products, id)
		if i < 0 {
			return nil, errors.Wrapf(ErrProductNotFound, "%q", id)
		}
		if products[i].Quantity < quantity {
			return nil, errors.Wrapf(ErrInsufficientStock, "%s has %d, requested %d", id, products[i].Quantity, quantity)
		}
		products[i].Quantity -= quantity
		p = products[i]
		return products, nil
	})
	return p, err
}
