package httpx

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/floramajestyc/catalog-service/internal/cart"
	"github.com/floramajestyc/catalog-service/internal/catalog"
	"github.com/floramajestyc/catalog-service/internal/clientlist"
)

type mockCatalog struct {
	mu       sync.Mutex
	products []catalog.Product
	nextID   int64
	listErr  error
}

func (m *mockCatalog) List(context.Context) ([]catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]catalog.Product(nil), m.products...), nil
}

func (m *mockCatalog) Create(_ context.Context, in catalog.ProductInput) (catalog.Product, error) {
	if err := in.Validate(); err != nil {
		return catalog.Product{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p := catalog.Product{
		ID:          m.nextID,
		Category:    in.Category,
		Description: in.Description,
		BoxType:     in.BoxType,
		UnitType:    in.UnitType,
		StBun:       in.StBun,
		Price:       in.Price,
	}
	m.products = append(m.products, p)
	return p, nil
}

func (m *mockCatalog) Update(_ context.Context, id int64, in catalog.ProductInput) (catalog.Product, error) {
	if err := in.Validate(); err != nil {
		return catalog.Product{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i].Category = in.Category
			m.products[i].Description = in.Description
			m.products[i].BoxType = in.BoxType
			m.products[i].UnitType = in.UnitType
			m.products[i].StBun = in.StBun
			m.products[i].Price = in.Price
			return m.products[i], nil
		}
	}
	return catalog.Product{}, catalog.ErrNotFound
}

func (m *mockCatalog) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return catalog.ErrNotFound
}

type memCartStore struct {
	mu    sync.Mutex
	carts map[string]cart.Cart
}

func newMemCartStore() *memCartStore { return &memCartStore{carts: map[string]cart.Cart{}} }

func (s *memCartStore) Get(_ context.Context, id string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return nil, cart.ErrNotFound
	}
	c.Items = append([]cart.Item(nil), c.Items...)
	return &c, nil
}

func (s *memCartStore) Save(_ context.Context, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	cp.Items = append([]cart.Item(nil), c.Items...)
	s.carts[c.ID] = cp
	return nil
}

func (s *memCartStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}

type memListStore struct {
	mu    sync.Mutex
	snaps map[string]clientlist.Snapshot
}

func newMemListStore() *memListStore { return &memListStore{snaps: map[string]clientlist.Snapshot{}} }

func (s *memListStore) Put(_ context.Context, snap clientlist.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[snap.ID] = snap
	return nil
}

func (s *memListStore) Get(_ context.Context, id string) (clientlist.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snaps[id]
	if !ok {
		return clientlist.Snapshot{}, clientlist.ErrNotFound
	}
	return snap, nil
}

type capturePublisher struct {
	mu        sync.Mutex
	envelopes []catalog.Envelope
}

func (p *capturePublisher) Publish(_, value []byte, _ ...kafkago.Header) {
	var env catalog.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		panic(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.envelopes = append(p.envelopes, env)
}

func (p *capturePublisher) last(t *testing.T) catalog.Envelope {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.envelopes)
	return p.envelopes[len(p.envelopes)-1]
}

func (p *capturePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.envelopes)
}
