package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/catalog/internal/catalog"
	"github.com/five82/catalog/internal/storage"
)

// ErrNotFound is returned when an id matches no product.
var ErrNotFound = errors.New("product not found")

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source used for new ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Store owns the product collection and mirrors it into a slot.
type Store struct {
	mu       sync.RWMutex
	products []catalog.Product
	lastID   int64

	slot storage.Slot
	log  *zap.Logger
	now  func() time.Time
}

// Load reads the slot once and returns a store seeded with its contents.
// Missing or unparsable content yields an empty store; only slot I/O errors
// are returned.
func Load(ctx context.Context, slot storage.Slot, opts ...Option) (*Store, error) {
	if slot == nil {
		return nil, fmt.Errorf("store requires a slot")
	}
	s := &Store{slot: slot, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	data, err := slot.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(data) == 0 {
		s.log.Info("catalog empty, starting fresh")
		return s, nil
	}

	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		s.log.Warn("catalog unreadable, starting empty", zap.Error(err), zap.Int("bytes", len(data)))
		return s, nil
	}
	s.products = products
	for _, p := range products {
		s.lastID = max(s.lastID, p.ID)
	}
	s.log.Info("catalog loaded", zap.Int("count", len(products)))
	return s, nil
}

// Products returns a copy of the collection in insertion order.
func (s *Store) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Clone(s.products)
}

// Len returns the number of stored products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Get returns the product with id.
func (s *Store) Get(id int64) (catalog.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.products[i], true
	}
	return catalog.Product{}, false
}

// Add appends a new product with a fresh id and persists the collection.
// When persisting fails the product stays in memory and the error is returned.
func (s *Store) Add(ctx context.Context, patch catalog.Patch) (catalog.Product, []catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := catalog.Product{ID: s.nextID()}.Apply(patch)
	s.products = append(s.products, p)
	s.log.Info("product added", zap.Int64("id", p.ID), zap.String("name", p.Name))

	err := s.persistLocked(ctx)
	return p, catalog.Clone(s.products), err
}

// Edit merges patch over the product with id. Unknown ids return ErrNotFound
// and leave both the collection and the slot untouched.
func (s *Store) Edit(ctx context.Context, id int64, patch catalog.Patch) ([]catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return catalog.Clone(s.products), fmt.Errorf("edit %d: %w", id, ErrNotFound)
	}
	s.products[i] = s.products[i].Apply(patch)
	s.log.Info("product edited", zap.Int64("id", id))

	err := s.persistLocked(ctx)
	return catalog.Clone(s.products), err
}

// Remove deletes the product with id. Unknown ids return ErrNotFound.
func (s *Store) Remove(ctx context.Context, id int64) ([]catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return catalog.Clone(s.products), fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	s.log.Info("product removed", zap.Int64("id", id))

	err := s.persistLocked(ctx)
	return catalog.Clone(s.products), err
}

// nextID is time based and strictly increasing even when the clock stalls or
// steps backwards.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) indexOf(id int64) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked(ctx context.Context) error {
	products := s.products
	if products == nil {
		products = []catalog.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := s.slot.Write(ctx, data); err != nil {
		s.log.Error("persist failed", zap.Error(err), zap.Int("count", len(products)))
		return fmt.Errorf("persist catalog: %w", err)
	}
	s.log.Debug("catalog persisted", zap.Int("count", len(products)), zap.Int("bytes", len(data)))
	return nil
}
