package types

// Country is the stable identifier for a country / currency area.
// Canonical values are the Korean display names consumed by the
// downstream dashboard, so they travel through the artifacts as-is.
type Country string

func (c Country) String() string {
	return string(c)
}

// Source is the provenance label for a live-acquired rate.
// Fallback and placeholder records carry no source.
type Source string

func (s Source) String() string {
	return string(s)
}

// Observation is a single acquired policy rate data point.
// Date is passed through verbatim from the upstream source (ISO 8601
// for API sources, raw for CSV feeds). Change is the signed delta from
// the previous announcement; live sources report 0.0 and fallback
// values are curated by hand, neither is computed from stored history.
type Observation struct {
	Rate   float64 `json:"rate"`
	Date   string  `json:"date"`
	Change float64 `json:"change"`
	Source Source  `json:"source,omitempty"`
}

// Record is one reconciled dataset row.
// The struct field order defines the field order of the published artifacts.
type Record struct {
	Country  Country `json:"country"`
	Flag     string  `json:"flag"`
	Rate     float64 `json:"rate"`
	Date     string  `json:"date"`
	Change   float64 `json:"change"`
	Currency string  `json:"currency"`
	Source   Source  `json:"source,omitempty"`
}
