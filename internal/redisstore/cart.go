// Package redisstore persists session carts in Redis so carts survive
// process restarts and are shared across replicas.
package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"

	"github.com/compustore/backend/internal/cart"
)

const keyPrefix = "cart:"

// DefaultTTL is how long an idle cart survives before Redis expires it.
const DefaultTTL = 7 * 24 * time.Hour

var _ cart.Store = (*CartStore)(nil)

// CartStore implements cart.Store on top of Redis. Carts are stored as JSON
// line-item arrays under "cart:<sessionID>" with a sliding TTL.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore creates a CartStore. A non-positive ttl falls back to
// DefaultTTL.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CartStore{client: client, ttl: ttl}
}

// Get loads the session's cart, returning cart.ErrNoCart when none exists.
func (s *CartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cart.ErrNoCart
		}
		return nil, errors.Wrap(err, "redis get")
	}

	var items []cart.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "decode cart")
	}
	return cart.Restore(items), nil
}

// Save stores the cart and refreshes its TTL.
func (s *CartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	data, err := json.Marshal(c.Items())
	if err != nil {
		return errors.Wrap(err, "encode cart")
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

// Delete removes the session's cart. Deleting a missing cart is a no-op.
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}
	return nil
}
