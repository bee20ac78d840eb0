package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/floramajestyc/catalog-service/internal/catalog"
	"github.com/floramajestyc/catalog-service/internal/clientlist"
	"github.com/floramajestyc/catalog-service/internal/countdown"
	"github.com/floramajestyc/catalog-service/internal/i18n"
	kafkax "github.com/floramajestyc/catalog-service/internal/kafka"
)

// ListPublisher creates and resolves published client lists.
type ListPublisher interface {
	Publish(ctx context.Context, products []catalog.Product, s clientlist.Settings) (clientlist.Snapshot, string, error)
	Fetch(ctx context.Context, id string) (clientlist.Snapshot, error)
}

type ClientListHandler struct {
	Catalog   CatalogRepo
	Publisher ListPublisher
	Producer  EventPublisher // publish announcements
	Service   string
	Language  string
}

func (h *ClientListHandler) Register(r *chi.Mux) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Get("/", h.home)
		r.Post("/client-lists", h.create)
		r.Get("/client-lists/{id}", h.get)
		r.Get("/client-lists/{id}/countdown", h.getCountdown)
	})
	// the stream stays open for the life of the promo window; a request
	// timeout here would cut every countdown off mid-flight
	r.Get("/client-lists/{id}/countdown/stream", h.streamCountdown)
}

// home resolves the view mode from the entry URL: an `id` query parameter
// selects the snapshot-driven client view, its absence the admin view over
// the live catalog.
func (h *ClientListHandler) home(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if id := r.URL.Query().Get("id"); id != "" {
		snap, err := h.Publisher.Fetch(ctx, id)
		if errors.Is(err, clientlist.ErrNotFound) {
			writeError(w, http.StatusNotFound, "client list not found or expired")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"mode": "client",
			"list": snap,
			"text": i18n.Resolve(snap.Language, snap.UIText),
		})
		return
	}

	ps, err := h.Catalog.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if ps == nil {
		ps = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"mode":     "admin",
		"products": ps,
		"text":     i18n.Resolve(h.Language, nil),
	})
}

// create snapshots the current catalog under a fresh id and returns the
// shareable link.
func (h *ClientListHandler) create(w http.ResponseWriter, r *http.Request) {
	// an empty body means default settings; chunked requests carry no
	// Content-Length, so decode and let EOF stand for "no body"
	var settings clientlist.Settings
	if err := decodeJSON(r, &settings); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	ps, err := h.Catalog.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	snap, link, err := h.Publisher.Publish(ctx, ps, settings)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ev := catalog.Envelope{
		EventID:       uuid.NewString(),
		EventType:     catalog.EventClientListPublished,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: snap.ID,
		Payload: kafkax.MustMarshal(catalog.ClientListPublishedPayload{
			ListID:       snap.ID,
			URL:          link,
			ProductCount: len(snap.Products),
			Language:     snap.Language,
		}),
	}
	h.Producer.Publish(catalog.PartitionKey(snap.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(catalog.EventClientListPublished)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)

	writeJSON(w, http.StatusCreated, map[string]string{"id": snap.ID, "url": link})
}

func (h *ClientListHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	snap, err := h.fetch(ctx, w, r)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// getCountdown returns the current promo breakdown, 204 when the list has no
// promo window.
func (h *ClientListHandler) getCountdown(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	snap, err := h.fetch(ctx, w, r)
	if err != nil {
		return
	}
	if snap.PromoEndDate == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, countdown.Until(*snap.PromoEndDate, time.Now()))
}

// streamCountdown pushes one SSE frame per second until the promo expires or
// the client goes away; either way the ticker goroutine is released.
func (h *ClientListHandler) streamCountdown(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	snap, err := h.fetch(ctx, w, r)
	cancel()
	if err != nil {
		return
	}
	if snap.PromoEndDate == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	t := &countdown.Ticker{End: *snap.PromoEndDate}
	for rem := range t.Start(r.Context().Done()) {
		fmt.Fprintf(w, "data: %s\n\n", kafkax.MustMarshal(rem))
		flusher.Flush()
	}
}

func (h *ClientListHandler) fetch(ctx context.Context, w http.ResponseWriter, r *http.Request) (clientlist.Snapshot, error) {
	id := chi.URLParam(r, "id")
	snap, err := h.Publisher.Fetch(ctx, id)
	if errors.Is(err, clientlist.ErrNotFound) {
		writeError(w, http.StatusNotFound, "client list not found or expired")
		return clientlist.Snapshot{}, err
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return clientlist.Snapshot{}, err
	}
	return snap, nil
}
