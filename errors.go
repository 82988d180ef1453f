package inventory

import "github.com/pkg/errors"

// Validation errors, surfaced to the user before anything is loaded.
var (
	ErrEmptyName       = errors.New("product name is required")
	ErrEmptySupplier   = errors.New("supplier is required")
	ErrInvalidQuantity = errors.New("quantity must be a valid integer")
	ErrNoProduct       = errors.New("a product must be selected")
)

// Business rule errors.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrEmptyInventory    = errors.New("no products in the inventory")
	ErrNoSession         = errors.New("no active session")
)

// ErrDeclined is returned when the user cancels a confirmation or a prompt.
// Nothing has been written when it is returned.
var ErrDeclined = errors.New("operation cancelled")

// ErrMalformedInventory reports persisted inventory data that cannot be
// decoded. Mutations are refused while it is present so that the bad data is
// not silently replaced by an empty list.
var ErrMalformedInventory = errors.New("malformed inventory data")

// IsUserError reports whether err is a validation or business rule error,
// that is an error caused by the input rather than by the storage.
func IsUserError(err error) bool {
	for _, target := range []error{
		ErrEmptyName, ErrEmptySupplier, ErrInvalidQuantity, ErrNoProduct,
		ErrProductNotFound, ErrInsufficientStock, ErrEmptyCart, ErrEmptyInventory,
		ErrDeclined, ErrNoSession,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
