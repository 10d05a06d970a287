package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/compustore/backend/internal/cart"
)

// sessionHeader carries the shopper's session identifier. The server mints
// one when the client has none and echoes it on every cart response.
const sessionHeader = "X-Session-ID"

// sessionID returns the request's session, minting a new one if absent, and
// sets it on the response so the client can persist it.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(sessionHeader)
	if id == "" || len(id) > 128 {
		id = uuid.New().String()
	}
	w.Header().Set(sessionHeader, id)
	return id
}

// cartResponse is the JSON shape of a session cart.
type cartResponse struct {
	SessionID string         `json:"session_id"`
	Items     []cartLineItem `json:"items"`
	Subtotal  int64          `json:"subtotal"`
	ItemCount int            `json:"item_count"`
}

type cartLineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

func (h *Handler) toCartResponse(session string, c *cart.Cart) cartResponse {
	items := make([]cartLineItem, 0, c.Len())
	for _, li := range c.Items() {
		items = append(items, cartLineItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Image:     h.imageURL(li.Image),
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
			LineTotal: li.LineTotal(),
		})
	}
	return cartResponse{
		SessionID: session,
		Items:     items,
		Subtotal:  c.Subtotal(),
		ItemCount: c.ItemCount(),
	}
}

// getCart handles GET /api/v1/cart.
func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(w, r)

	c, err := h.carts.Get(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, h.toCartResponse(session, c))
}

// addCartItemRequest is the JSON body for POST /api/v1/cart/items. The
// product's name and price come from the catalog, never from the client.
type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// addCartItem handles POST /api/v1/cart/items.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(w, r)

	var req addCartItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.carts.AddItem(r.Context(), session, cart.AddItemInput{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		UnitPrice: p.Price,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, h.toCartResponse(session, c))
}

// updateCartItemRequest is the JSON body for PUT /api/v1/cart/items/{productID}.
// A quantity of zero removes the line.
type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// updateCartItem handles PUT /api/v1/cart/items/{productID}.
func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(w, r)
	productID := chi.URLParam(r, "productID")

	var req updateCartItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.carts.UpdateQuantity(r.Context(), session, productID, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, h.toCartResponse(session, c))
}

// removeCartItem handles DELETE /api/v1/cart/items/{productID}.
func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(w, r)
	productID := chi.URLParam(r, "productID")

	c, err := h.carts.RemoveItem(r.Context(), session, productID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, h.toCartResponse(session, c))
}

// clearCart handles DELETE /api/v1/cart.
func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(w, r)

	if err := h.carts.Clear(r.Context(), session); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, h.toCartResponse(session, cart.New()))
}
