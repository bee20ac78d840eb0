package countdown

import "time"

// Remaining is the days/hours/minutes/seconds breakdown of the time left in a
// promo window. Expired means the window has closed; the numeric fields are
// frozen at zero from then on.
type Remaining struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// Until decomposes end-now by floor division. A negative distance yields the
// expired all-zero value.
func Until(end, now time.Time) Remaining {
	d := end.Sub(now)
	if d < 0 {
		return Remaining{Expired: true}
	}
	return Remaining{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d % (24 * time.Hour) / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
		Seconds: int(d % time.Minute / time.Second),
	}
}
