package cart

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrNoCart is returned by Store.Get when the session has no saved cart.
var ErrNoCart = errors.New("no cart for session")

// Store persists carts per shopper session. Implementations must return a
// cart whose line items equal the last saved state, in the same order.
type Store interface {
	// Get retrieves the cart saved for the session, or ErrNoCart.
	Get(ctx context.Context, sessionID string) (*Cart, error)

	// Save persists the cart for the session, overwriting any previous state.
	Save(ctx context.Context, sessionID string, c *Cart) error

	// Delete removes the session's cart. Deleting an absent cart is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
