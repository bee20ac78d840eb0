package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floramajestyc/catalog-service/internal/catalog"
	kafkax "github.com/floramajestyc/catalog-service/internal/kafka"
)

type memDedup struct {
	seen    map[string]bool
	seenErr error
	markErr error
}

func newMemDedup() *memDedup { return &memDedup{seen: map[string]bool{}} }

func (d *memDedup) Seen(_ context.Context, id string) (bool, error) {
	if d.seenErr != nil {
		return false, d.seenErr
	}
	return d.seen[id], nil
}

func (d *memDedup) MarkSeen(_ context.Context, id string) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.seen[id] = true
	return nil
}

type captureOpener struct {
	links []string
}

func (o *captureOpener) OpenExternalLink(url string) { o.links = append(o.links, url) }

func orderMessage(t *testing.T, link string) (kafkago.Message, string) {
	t.Helper()
	env := catalog.Envelope{
		EventID:      uuid.NewString(),
		EventType:    catalog.EventOrderSubmitted,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "catalog-api-test",
		Payload:      kafkax.MustMarshal(catalog.OrderSubmittedPayload{Link: link}),
	}
	return kafkago.Message{Value: kafkax.MustMarshal(env)}, env.EventID
}

func TestService_HandleOrderSubmitted(t *testing.T) {
	t.Run("opens the link and marks the event", func(t *testing.T) {
		dedup := newMemDedup()
		opener := &captureOpener{}
		svc := &Service{Dedup: dedup, Opener: opener}

		m, id := orderMessage(t, "https://wa.me/19297456499?text=pedido")
		require.NoError(t, svc.HandleOrderSubmitted(context.Background(), m))

		require.Len(t, opener.links, 1)
		assert.Equal(t, "https://wa.me/19297456499?text=pedido", opener.links[0])
		assert.True(t, dedup.seen[id])
	})

	t.Run("redelivery of a handled event is skipped", func(t *testing.T) {
		dedup := newMemDedup()
		opener := &captureOpener{}
		svc := &Service{Dedup: dedup, Opener: opener}

		m, _ := orderMessage(t, "https://wa.me/19297456499?text=pedido")
		require.NoError(t, svc.HandleOrderSubmitted(context.Background(), m))
		require.NoError(t, svc.HandleOrderSubmitted(context.Background(), m))
		assert.Len(t, opener.links, 1)
	})

	t.Run("dedup lookup failure surfaces and keeps the link closed", func(t *testing.T) {
		dedup := newMemDedup()
		dedup.seenErr = errors.New("redis down")
		opener := &captureOpener{}
		svc := &Service{Dedup: dedup, Opener: opener}

		m, _ := orderMessage(t, "https://wa.me/19297456499?text=pedido")
		err := svc.HandleOrderSubmitted(context.Background(), m)
		require.Error(t, err)
		assert.Empty(t, opener.links)
	})

	t.Run("mark failure surfaces after the link opened", func(t *testing.T) {
		dedup := newMemDedup()
		dedup.markErr = errors.New("redis down")
		opener := &captureOpener{}
		svc := &Service{Dedup: dedup, Opener: opener}

		m, _ := orderMessage(t, "https://wa.me/19297456499?text=pedido")
		err := svc.HandleOrderSubmitted(context.Background(), m)
		require.Error(t, err)
		// the hand-off happened; the error only forces a redelivery
		assert.Len(t, opener.links, 1)
	})

	t.Run("foreign event types are ignored", func(t *testing.T) {
		dedup := newMemDedup()
		opener := &captureOpener{}
		svc := &Service{Dedup: dedup, Opener: opener}

		env := catalog.Envelope{
			EventID:   uuid.NewString(),
			EventType: catalog.EventClientListPublished,
			Payload:   kafkax.MustMarshal(catalog.ClientListPublishedPayload{}),
		}
		m := kafkago.Message{Value: kafkax.MustMarshal(env)}
		require.NoError(t, svc.HandleOrderSubmitted(context.Background(), m))
		assert.Empty(t, opener.links)
		assert.Empty(t, dedup.seen)
	})
}

func TestService_HandlePriceListShared(t *testing.T) {
	dedup := newMemDedup()
	opener := &captureOpener{}
	svc := &Service{Dedup: dedup, Opener: opener}

	env := catalog.Envelope{
		EventID:      uuid.NewString(),
		EventType:    catalog.EventPriceListShared,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "catalog-api-test",
		Payload:      kafkax.MustMarshal(catalog.PriceListSharedPayload{Link: "https://wa.me/19297456499?text=lista"}),
	}
	m := kafkago.Message{Value: kafkax.MustMarshal(env)}

	require.NoError(t, svc.HandlePriceListShared(context.Background(), m))
	require.Len(t, opener.links, 1)
	assert.Equal(t, "https://wa.me/19297456499?text=lista", opener.links[0])
	assert.True(t, dedup.seen[env.EventID])

	// second delivery is a no-op
	require.NoError(t, svc.HandlePriceListShared(context.Background(), m))
	assert.Len(t, opener.links, 1)
}
