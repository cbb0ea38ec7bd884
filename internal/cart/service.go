package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kasir-id/backend-kasir/internal/events"
	"github.com/kasir-id/backend-kasir/internal/money"
	"github.com/kasir-id/backend-kasir/internal/obs"
)

// ErrNotFound indicates the requested cart could not be located.
var ErrNotFound = errors.New("cart not found")

// Service owns every live cart and provides the mutual exclusion the Cart
// type itself leaves to its caller. Carts exist only in process memory and
// expire lazily after the configured TTL.
type Service struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*entry

	TTL       time.Duration
	Now       func() time.Time
	Formatter money.Formatter
	Events    *events.Bus
}

type entry struct {
	cart      *Cart
	expiresAt time.Time
}

// NewService builds a cart service with an empty store.
func NewService() *Service {
	return &Service{carts: make(map[uuid.UUID]*entry)}
}

func (s *Service) ttl() time.Duration {
	if s == nil || s.TTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return s.TTL
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create opens a new empty cart and returns its identifier.
func (s *Service) Create(ctx context.Context) (uuid.UUID, error) {
	if s == nil {
		return uuid.Nil, errors.New("cart service not configured")
	}
	id := uuid.New()

	s.mu.Lock()
	if s.carts == nil {
		s.carts = make(map[uuid.UUID]*entry)
	}
	s.carts[id] = &entry{cart: New(), expiresAt: s.now().Add(s.ttl())}
	s.mu.Unlock()

	if obs.CartCreatedTotal != nil {
		obs.CartCreatedTotal.Inc()
	}
	s.emit(ctx, events.TopicCartCreated, id, map[string]any{"cartId": id.String()})
	return id, nil
}

// AddItem validates and adds the line item to the cart. Re-adding a product
// replaces the previous line entirely.
func (s *Service) AddItem(ctx context.Context, id uuid.UUID, item LineItem) error {
	err := s.with(id, func(c *Cart) error { return c.Add(item) })
	if err != nil {
		return err
	}
	if obs.CartItemsAddedTotal != nil {
		obs.CartItemsAddedTotal.Inc()
	}
	return nil
}

// RemoveItem removes the line matching the product; absent products are a
// no-op.
func (s *Service) RemoveItem(_ context.Context, id uuid.UUID, product Product) error {
	return s.with(id, func(c *Cart) error {
		c.Remove(product)
		return nil
	})
}

// Total returns the cart's current payable total.
func (s *Service) Total(_ context.Context, id uuid.UUID) (money.Money, error) {
	var total money.Money
	err := s.with(id, func(c *Cart) error {
		total = c.Total()
		return nil
	})
	return total, err
}

// Summary returns a read-only snapshot with the formatted total.
func (s *Service) Summary(_ context.Context, id uuid.UUID) (Summary, error) {
	var summary Summary
	err := s.with(id, func(c *Cart) error {
		summary = c.Summary(s.formatter())
		return nil
	})
	return summary, err
}

// Checkout atomically snapshots and clears the cart, then reports the
// outcome to metrics and the event bus.
func (s *Service) Checkout(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	var snap Snapshot
	err := s.with(id, func(c *Cart) error {
		snap = c.Checkout()
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}

	var full money.Money
	for _, item := range snap.Items {
		full = full.Add(item.FullPrice())
	}
	saved := full.Amount() - snap.Total.Amount()
	if obs.CartCheckoutTotal != nil {
		obs.CartCheckoutTotal.Inc()
	}
	if obs.CartCheckoutAmount != nil {
		obs.CartCheckoutAmount.Observe(float64(snap.Total.Amount()))
	}
	if obs.CartDiscountMinorUnits != nil && saved > 0 {
		obs.CartDiscountMinorUnits.Add(float64(saved))
	}
	s.emit(ctx, events.TopicCartCheckedOut, id, map[string]any{
		"cartId": id.String(),
		"total":  snap.Total.Amount(),
		"items":  len(snap.Items),
		"saved":  saved,
	})
	return snap, nil
}

// PingStore reports whether the store is usable; wired into readiness.
func (s *Service) PingStore(_ context.Context, _ time.Duration) error {
	if s == nil {
		return errors.New("cart store not configured")
	}
	return nil
}

// with runs fn against the cart under the service lock, evicting the cart
// first when its TTL has lapsed.
func (s *Service) with(id uuid.UUID, fn func(*Cart) error) error {
	if s == nil {
		return errors.New("cart service not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[id]
	if !ok {
		return fmt.Errorf("cart %s: %w", id, ErrNotFound)
	}
	if !e.expiresAt.IsZero() && e.expiresAt.Before(s.now()) {
		delete(s.carts, id)
		return fmt.Errorf("cart %s expired: %w", id, ErrNotFound)
	}
	e.expiresAt = s.now().Add(s.ttl())
	return fn(e.cart)
}

func (s *Service) formatter() money.Formatter {
	if s.Formatter.Symbol == "" {
		return money.DefaultFormatter
	}
	return s.Formatter
}

func (s *Service) emit(ctx context.Context, topic string, id uuid.UUID, payload any) {
	if s.Events == nil {
		return
	}
	_, _ = s.Events.Emit(ctx, topic, id, payload)
}
