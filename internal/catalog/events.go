package catalog

import (
	"encoding/json"
	"time"
)

const (
	EventOrderSubmitted      = "OrderSubmitted"
	EventPriceListShared     = "PriceListShared"
	EventClientListPublished = "ClientListPublished"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// ---- Payload types per event ----

type OrderLine struct {
	ProductID   int64   `json:"product_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}

type OrderSubmittedPayload struct {
	CartID  string      `json:"cart_id"`
	Lines   []OrderLine `json:"lines"`
	Total   float64     `json:"total"`
	Message string      `json:"message"`
	Link    string      `json:"link"`
	Phone   string      `json:"phone"`
}

type PriceListSharedPayload struct {
	ProductCount int    `json:"product_count"`
	Message      string `json:"message"`
	Link         string `json:"link"`
	Phone        string `json:"phone"`
}

type ClientListPublishedPayload struct {
	ListID       string `json:"list_id"`
	URL          string `json:"url"`
	ProductCount int    `json:"product_count"`
	Language     string `json:"language"`
}
