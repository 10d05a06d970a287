package cart

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	updated []string
	cleared []string
	err     error
}

func (p *recordingPublisher) CartUpdated(_ context.Context, sessionID string, _ *Cart) error {
	p.updated = append(p.updated, sessionID)
	return p.err
}

func (p *recordingPublisher) CartCleared(_ context.Context, sessionID string) error {
	p.cleared = append(p.cleared, sessionID)
	return p.err
}

type failingStore struct {
	Store
	saveErr error
}

func (s *failingStore) Save(_ context.Context, _ string, _ *Cart) error {
	return s.saveErr
}

func TestService_GetMissingReturnsEmptyCart(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)

	c, err := svc.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestService_AddItemPersists(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, nil)

	_, err := svc.AddItem(context.Background(), "sess-1", AddItemInput{
		ProductID: "p1", Name: "HP X", Image: "hp.jpg", UnitPrice: 50000, Quantity: 2,
	})
	require.NoError(t, err)

	saved, err := store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), saved.Subtotal())
}

func TestService_AddItemMergesAcrossRequests(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)
	ctx := context.Background()

	in := AddItemInput{ProductID: "p1", Name: "HP X", UnitPrice: 50000, Quantity: 1}
	for range 3 {
		_, err := svc.AddItem(ctx, "sess-1", in)
		require.NoError(t, err)
	}

	c, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 3, c.Items()[0].Quantity)
}

func TestService_SessionsAreIsolated(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-a", AddItemInput{ProductID: "p1", Name: "HP X", UnitPrice: 50000, Quantity: 1})
	require.NoError(t, err)

	other, err := svc.Get(ctx, "sess-b")
	require.NoError(t, err)
	assert.Zero(t, other.Len())
}

func TestService_AddItemInvalidInputNotSaved(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, nil)

	_, err := svc.AddItem(context.Background(), "sess-1", AddItemInput{
		ProductID: "p1", Name: "HP X", UnitPrice: 50000, Quantity: 0,
	})
	require.ErrorIs(t, err, ErrInvalidOperation)

	_, err = store.Get(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrNoCart)
}

func TestService_UpdateQuantityMissingProduct(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)

	_, err := svc.UpdateQuantity(context.Background(), "sess-1", "ghost", 2)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_ClearDeletesCart(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", AddItemInput{ProductID: "p1", Name: "HP X", UnitPrice: 50000, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "sess-1"))

	c, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestService_PublishesEvents(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewService(NewMemoryStore(), pub)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", AddItemInput{ProductID: "p1", Name: "HP X", UnitPrice: 50000, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(ctx, "sess-1", "p1", 2)
	require.NoError(t, err)
	_, err = svc.RemoveItem(ctx, "sess-1", "p1")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "sess-1"))

	assert.Equal(t, []string{"sess-1", "sess-1", "sess-1"}, pub.updated)
	assert.Equal(t, []string{"sess-1"}, pub.cleared)
}

func TestService_PublishFailureDoesNotFailMutation(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	store := NewMemoryStore()
	svc := NewService(store, pub)

	c, err := svc.AddItem(context.Background(), "sess-1", AddItemInput{
		ProductID: "p1", Name: "HP X", UnitPrice: 50000, Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	saved, err := store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Len())
}

func TestService_SaveErrorSurfaces(t *testing.T) {
	svc := NewService(&failingStore{Store: NewMemoryStore(), saveErr: errors.New("redis down")}, nil)

	_, err := svc.AddItem(context.Background(), "sess-1", AddItemInput{
		ProductID: "p1", Name: "HP X", UnitPrice: 50000, Quantity: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save cart")
}
