package cart

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// Publisher emits cart domain events for downstream consumers. Implementations
// must be safe for concurrent use.
type Publisher interface {
	CartUpdated(ctx context.Context, sessionID string, c *Cart) error
	CartCleared(ctx context.Context, sessionID string) error
}

// Service coordinates per-session carts: it loads the session's cart from the
// store, applies exactly one mutation, and saves the result. The store is the
// single writer pathway; UI surfaces never mutate line items directly.
type Service struct {
	store  Store
	events Publisher
}

// NewService creates a cart service. events may be nil, in which case no
// events are published.
func NewService(store Store, events Publisher) *Service {
	return &Service{store: store, events: events}
}

// Get returns the session's cart, or an empty cart when none has been saved.
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNoCart) {
			return New(), nil
		}
		return nil, errors.Wrap(err, "get cart")
	}
	return c, nil
}

// AddItemInput holds the parameters for adding a product to a session cart.
type AddItemInput struct {
	ProductID string
	Name      string
	Image     string
	UnitPrice int64
	Quantity  int
}

// AddItem merges the product into the session's cart and saves it.
func (s *Service) AddItem(ctx context.Context, sessionID string, in AddItemInput) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := c.AddItem(in.ProductID, in.Name, in.Image, in.UnitPrice, in.Quantity); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	s.publishUpdated(ctx, sessionID, c)
	return c, nil
}

// UpdateQuantity sets a line's quantity (zero removes it) and saves the cart.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateQuantity(productID, quantity); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	s.publishUpdated(ctx, sessionID, c)
	return c, nil
}

// RemoveItem drops the product's line from the session's cart and saves it.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(productID)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	s.publishUpdated(ctx, sessionID, c)
	return c, nil
}

// Clear removes the session's cart entirely.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "delete cart")
	}

	if s.events != nil {
		if err := s.events.CartCleared(ctx, sessionID); err != nil {
			zctx.From(ctx).Warn("Publish cart.cleared failed",
				zap.String("session_id", sessionID), zap.Error(err))
		}
	}
	return nil
}

// publishUpdated emits cart.updated on a best-effort basis. A shopper's
// mutation never fails because the event pipeline is down.
func (s *Service) publishUpdated(ctx context.Context, sessionID string, c *Cart) {
	if s.events == nil {
		return
	}
	if err := s.events.CartUpdated(ctx, sessionID, c); err != nil {
		zctx.From(ctx).Warn("Publish cart.updated failed",
			zap.String("session_id", sessionID), zap.Error(err))
	}
}
