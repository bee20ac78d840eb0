package clientlist

import (
	"time"

	"github.com/floramajestyc/catalog-service/internal/catalog"
	"github.com/floramajestyc/catalog-service/internal/i18n"
)

// Snapshot is a point-in-time copy of the catalog plus presentation settings.
// It is written once and never mutated; clients render from it instead of the
// live catalog.
type Snapshot struct {
	ID           string            `json:"id"`
	Products     []catalog.Product `json:"products"`
	Language     string            `json:"language"`
	PromoEndDate *time.Time        `json:"promoEndDate,omitempty"`
	UIText       *i18n.Bundle      `json:"uiText,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Settings are the presentation knobs the administrator picked when sharing.
type Settings struct {
	Language     string       `json:"language"`
	PromoEndDate *time.Time   `json:"promoEndDate,omitempty"`
	UIText       *i18n.Bundle `json:"uiText,omitempty"`
}
