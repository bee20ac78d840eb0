package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/floramajestyc/catalog-service/internal/cart"
	"github.com/floramajestyc/catalog-service/internal/catalog"
	"github.com/floramajestyc/catalog-service/internal/clientlist"
	kafkax "github.com/floramajestyc/catalog-service/internal/kafka"
	"github.com/floramajestyc/catalog-service/internal/whatsapp"
)

// SnapshotFetcher resolves a published client list by id.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, id string) (clientlist.Snapshot, error)
}

type CartHandler struct {
	Store    cart.Store
	Catalog  CatalogRepo
	Lists    SnapshotFetcher
	Producer EventPublisher // submitted orders
	Service  string
	Phone    string
}

type addItemReq struct {
	ProductID int64  `json:"product_id"`
	ListID    string `json:"list_id,omitempty"`
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

type cartResp struct {
	Cart      *cart.Cart `json:"cart"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Post("/carts", h.createCart)
		r.Get("/carts/{id}", h.getCart)
		r.Post("/carts/{id}/items", h.addItem)
		r.Put("/carts/{id}/items/{productID}", h.updateItem)
		r.Delete("/carts/{id}/items/{productID}", h.removeItem)
		r.Post("/carts/{id}/order", h.submitOrder)
	})
}

func (h *CartHandler) createCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	now := time.Now().UTC()
	c := &cart.Cart{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	if err := h.Store.Save(ctx, c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, cartResp{Cart: c})
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	c, err := h.load(ctx, w, r)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, cartResp{Cart: c, Total: c.Total(), ItemCount: c.ItemCount()})
}

// addItem copies the product into the cart. With a list_id the product comes
// from that published snapshot, which is what a client session sees; without
// one it comes from the live catalog.
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := h.load(ctx, w, r)
	if err != nil {
		return
	}

	p, err := h.findProduct(ctx, req)
	if errors.Is(err, catalog.ErrNotFound) || errors.Is(err, clientlist.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	c.AddProduct(p)
	if err := h.save(ctx, c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cartResp{Cart: c, Total: c.Total(), ItemCount: c.ItemCount()})
}

func (h *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req updateItemReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := h.load(ctx, w, r)
	if err != nil {
		return
	}

	c.UpdateQuantity(pid, req.Quantity)
	if err := h.save(ctx, c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cartResp{Cart: c, Total: c.Total(), ItemCount: c.ItemCount()})
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := h.load(ctx, w, r)
	if err != nil {
		return
	}

	c.Remove(pid)
	if err := h.save(ctx, c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cartResp{Cart: c, Total: c.Total(), ItemCount: c.ItemCount()})
}

// submitOrder formats the cart into one message, hands it to the messaging
// channel, and clears the cart. Delivery is fire-and-forget.
func (h *CartHandler) submitOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := h.load(ctx, w, r)
	if err != nil {
		return
	}
	if c.IsEmpty() {
		writeError(w, http.StatusConflict, "cart is empty")
		return
	}

	msg := whatsapp.OrderMessage(c)
	link := whatsapp.Link(h.Phone, msg)

	lines := make([]catalog.OrderLine, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, catalog.OrderLine{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			LineTotal:   cart.LineTotal(it),
		})
	}

	ev := catalog.Envelope{
		EventID:       uuid.NewString(),
		EventType:     catalog.EventOrderSubmitted,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: c.ID,
		Payload: kafkax.MustMarshal(catalog.OrderSubmittedPayload{
			CartID:  c.ID,
			Lines:   lines,
			Total:   c.Total(),
			Message: msg,
			Link:    link,
			Phone:   h.Phone,
		}),
	}
	h.Producer.Publish(catalog.PartitionKey(c.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(catalog.EventOrderSubmitted)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)

	c.Clear()
	if err := h.save(ctx, c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"link": link})
}

func (h *CartHandler) load(ctx context.Context, w http.ResponseWriter, r *http.Request) (*cart.Cart, error) {
	id := chi.URLParam(r, "id")
	c, err := h.Store.Get(ctx, id)
	if errors.Is(err, cart.ErrNotFound) {
		writeError(w, http.StatusNotFound, "cart not found")
		return nil, err
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, err
	}
	return c, nil
}

func (h *CartHandler) save(ctx context.Context, c *cart.Cart) error {
	c.UpdatedAt = time.Now().UTC()
	return h.Store.Save(ctx, c)
}

func (h *CartHandler) findProduct(ctx context.Context, req addItemReq) (catalog.Product, error) {
	if req.ListID != "" {
		snap, err := h.Lists.Fetch(ctx, req.ListID)
		if err != nil {
			return catalog.Product{}, err
		}
		for _, p := range snap.Products {
			if p.ID == req.ProductID {
				return p, nil
			}
		}
		return catalog.Product{}, catalog.ErrNotFound
	}

	ps, err := h.Catalog.List(ctx)
	if err != nil {
		return catalog.Product{}, err
	}
	for _, p := range ps {
		if p.ID == req.ProductID {
			return p, nil
		}
	}
	return catalog.Product{}, catalog.ErrNotFound
}
