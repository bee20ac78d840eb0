package clientlist

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/floramajestyc/catalog-service/internal/catalog"
	"github.com/floramajestyc/catalog-service/internal/i18n"
)

var ErrNotFound = errors.New("client list not found")

type Store interface {
	Put(ctx context.Context, snap Snapshot) error
	Get(ctx context.Context, id string) (Snapshot, error)
}

// Publisher snapshots the catalog under a fresh id and builds the shareable
// link a client uses to open the list.
type Publisher struct {
	Store   Store
	BaseURL string
	Now     func() time.Time
}

func (p *Publisher) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now().UTC()
}

// Publish copies the catalog into a new immutable snapshot. Later mutations
// to the live catalog never reach a published list.
func (p *Publisher) Publish(ctx context.Context, products []catalog.Product, s Settings) (Snapshot, string, error) {
	lang := s.Language
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	snap := Snapshot{
		ID:           uuid.NewString(),
		Products:     append([]catalog.Product(nil), products...),
		Language:     lang,
		PromoEndDate: s.PromoEndDate,
		UIText:       s.UIText,
		CreatedAt:    p.now(),
	}
	if err := p.Store.Put(ctx, snap); err != nil {
		return Snapshot{}, "", fmt.Errorf("store snapshot: %w", err)
	}
	return snap, p.Link(snap.ID), nil
}

// Link builds the client-facing URL carrying the snapshot id as the `id`
// query parameter.
func (p *Publisher) Link(id string) string {
	return fmt.Sprintf("%s/?id=%s", p.BaseURL, url.QueryEscape(id))
}

// Fetch returns the snapshot exactly as stored, or ErrNotFound for an unknown
// or expired id.
func (p *Publisher) Fetch(ctx context.Context, id string) (Snapshot, error) {
	return p.Store.Get(ctx, id)
}
