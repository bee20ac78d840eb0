package redisx

import "time"

const (
	// Client-list snapshot: clientlist:{list_id} -> snapshot JSON
	KeyClientList = "clientlist:%s"

	// Cart state: cart:{cart_id} -> cart JSON
	KeyCart = "cart:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	// Snapshots carry no expiry: a shared link stays valid until removed by
	// hand. The promo countdown is presentation only.
	TTLClientList time.Duration = 0

	TTLCart  = 24 * time.Hour
	TTLDedup = 48 * time.Hour
)
