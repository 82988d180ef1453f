package inventory

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/etnz/inventory/kv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Keys of the values persisted in the key-value store.
const (
	KeyInventory       = "inventario"
	KeyDarkMode        = "dark"
	KeySession         = "sesionActiva"
	KeyInvoiceNumber   = "numeroFactura"
	KeyProductSequence = "secuenciaProducto"
)

// Store is the single source of truth for the inventory.
//
// It reads and writes the whole product list through a kv.Store and notifies
// subscribers after every write. There is no locking between processes: two
// processes mutating the same storage concurrently can overwrite each other's
// changes.
type Store struct {
	kv  kv.Store
	now func() time.Time
	log logrus.FieldLogger

	mu        sync.Mutex // serializes read-modify-write cycles
	listeners listeners
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the function used to timestamp products and invoices.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithLogger sets the logger. It defaults to the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option { return func(s *Store) { s.log = l } }

// NewStore returns a Store persisting into backend.
func NewStore(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:  backend,
		now: time.Now,
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the current time according to the store clock.
func (s *Store) Now() time.Time { return s.now() }

// Subscribe registers fn to be called after every change of the inventory.
// It returns a function that cancels the subscription.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) { return s.listeners.add(fn) }

// Notify broadcasts the current inventory to all subscribers without changing it.
func (s *Store) Notify(ctx context.Context) error {
	products, err := s.Load(ctx)
	if err != nil {
		return err
	}
	s.listeners.broadcast(ctx, products)
	return nil
}

// Load returns the persisted inventory in insertion order.
// A missing inventory is an empty one. Undecodable data is reported with
// ErrMalformedInventory.
func (s *Store) Load(ctx context.Context) ([]Product, error) {
	raw, err := s.kv.Get(ctx, KeyInventory)
	if errors.Is(err, kv.ErrNotFound) {
		return []Product{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load inventory")
	}
	var products []Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, errors.Wrapf(ErrMalformedInventory, "decode %q: %v", KeyInventory, err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// Save overwrites the persisted inventory with products and notifies subscribers.
func (s *Store) Save(ctx context.Context, products []Product) error {
	products, err := s.write(ctx, products)
	if err != nil {
		return err
	}
	s.listeners.broadcast(ctx, products)
	return nil
}

func (s *Store) write(ctx context.Context, products []Product) ([]Product, error) {
	if products == nil {
		products = []Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return nil, errors.Wrap(err, "encode inventory")
	}
	if err := s.kv.Set(ctx, KeyInventory, string(data)); err != nil {
		return nil, errors.Wrap(err, "save inventory")
	}
	s.log.WithField("products", len(products)).Debug("inventory saved")
	return products, nil
}

// update runs one load-modify-save cycle. If fn fails nothing is written.
// Subscribers are notified once the store is unlocked.
func (s *Store) update(ctx context.Context, fn func([]Product) ([]Product, error)) error {
	products, err := s.modify(ctx, fn)
	if err != nil {
		return err
	}
	s.listeners.broadcast(ctx, products)
	return nil
}

func (s *Store) modify(ctx context.Context, fn func([]Product) ([]Product, error)) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	products, err = fn(products)
	if err != nil {
		return nil, err
	}
	return s.write(ctx, products)
}

// readInt reads an integer counter, a missing counter is 0.
func (s *Store) readInt(ctx context.Context, key string) (int, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "read %q", key)
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(err, "decode %q", key)
	}
	return n, nil
}

func (s *Store) writeInt(ctx context.Context, key string, n int) error {
	return errors.Wrapf(s.kv.Set(ctx, key, strconv.Itoa(n)), "write %q", key)
}

// issueID reserves the next product identifier for an inventory.
// The counter is persisted before the product so an id is never issued twice,
// even if saving the product fails afterwards.
func (s *Store) issueID(ctx context.Context, products []Product) (string, error) {
	last, err := s.readInt(ctx, KeyProductSequence)
	if err != nil {
		return "", err
	}
	n := nextSequence(last, products)
	if err := s.writeInt(ctx, KeyProductSequence, n); err != nil {
		return "", err
	}
	return FormatID(n), nil
}

// InvoiceNumber returns the sequence number of the last finalized invoice, 0 if none.
func (s *Store) InvoiceNumber(ctx context.Context) (int, error) {
	return s.readInt(ctx, KeyInvoiceNumber)
}

// issueInvoice runs fn with the next invoice number and persists that
// number only if fn succeeds. The store is locked while fn runs, so fn must
// not call the store mutators.
func (s *Store) issueInvoice(ctx context.Context, fn func(n int) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.readInt(ctx, KeyInvoiceNumber)
	if err != nil {
		return err
	}
	n++
	if err := fn(n); err != nil {
		return err
	}
	return s.writeInt(ctx, KeyInvoiceNumber, n)
}

// SessionActive reports whether a session has been opened.
func (s *Store) SessionActive(ctx context.Context) (bool, error) {
	raw, err := s.kv.Get(ctx, KeySession)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "read session")
	}
	return raw == "true", nil
}

// SetSession opens or closes the session.
func (s *Store) SetSession(ctx context.Context, active bool) error {
	if !active {
		return errors.Wrap(s.kv.Delete(ctx, KeySession), "close session")
	}
	return errors.Wrap(s.kv.Set(ctx, KeySession, "true"), "open session")
}

// RequireSession returns ErrNoSession unless a session is active.
func (s *Store) RequireSession(ctx context.Context) error {
	ok, err := s.SessionActive(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSession
	}
	return nil
}

// DarkMode returns the dark mode preference.
func (s *Store) DarkMode(ctx context.Context) (bool, error) {
	raw, err := s.kv.Get(ctx, KeyDarkMode)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "read dark mode")
	}
	return raw == "1", nil
}

// SetDarkMode stores the dark mode preference.
func (s *Store) SetDarkMode(ctx context.Context, dark bool) error {
	v := "0"
	if dark {
		v = "1"
	}
	return errors.Wrap(s.kv.Set(ctx, KeyDarkMode, v), "write dark mode")
}
