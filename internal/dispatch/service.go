// Package dispatch delivers submitted orders and shared price lists to the
// external messaging channel. Delivery is fire-and-forget: once the deep link
// is handed over, the event is done.
package dispatch

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/floramajestyc/catalog-service/internal/catalog"
	kafkax "github.com/floramajestyc/catalog-service/internal/kafka"
)

// LinkOpener is the external messaging collaborator: it opens a pre-built
// deep link and returns nothing.
type LinkOpener interface {
	OpenExternalLink(url string)
}

// DedupStore remembers which event ids have already been handled, so a
// redelivery after a rebalance does not reopen the link.
type DedupStore interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	MarkSeen(ctx context.Context, eventID string) error
}

type Service struct {
	Dedup  DedupStore
	Opener LinkOpener
}

// HandleOrderSubmitted is mounted as the consumer handler for the
// order-submitted topic.
func (s *Service) HandleOrderSubmitted(ctx context.Context, m kafkago.Message) error {
	var env catalog.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != catalog.EventOrderSubmitted {
		return nil
	}
	seen, err := s.Dedup.Seen(ctx, env.EventID)
	if err != nil || seen {
		return err
	}

	p, err := kafkax.UnwrapPayload[catalog.OrderSubmittedPayload](env.Payload)
	if err != nil {
		return err
	}
	// open first, mark after: a failure between the two means a redelivery,
	// never a dropped order
	s.Opener.OpenExternalLink(p.Link)
	return s.Dedup.MarkSeen(ctx, env.EventID)
}

// HandlePriceListShared is mounted as the consumer handler for the
// price-list topic.
func (s *Service) HandlePriceListShared(ctx context.Context, m kafkago.Message) error {
	var env catalog.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != catalog.EventPriceListShared {
		return nil
	}
	seen, err := s.Dedup.Seen(ctx, env.EventID)
	if err != nil || seen {
		return err
	}

	p, err := kafkax.UnwrapPayload[catalog.PriceListSharedPayload](env.Payload)
	if err != nil {
		return err
	}
	s.Opener.OpenExternalLink(p.Link)
	return s.Dedup.MarkSeen(ctx, env.EventID)
}
