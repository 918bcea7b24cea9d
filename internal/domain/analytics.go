package domain

// SummaryReport is the global aggregate returned by GET /summary. Earnings
// come from the materialized provider balances, not a re-scan of events.
type SummaryReport struct {
	Views     int64   `json:"views"`
	Streams   int64   `json:"streams"`
	Downloads int64   `json:"downloads"`
	Earnings  float64 `json:"earnings"`
}

// ProviderReport is one provider's slice of GET /analytics.
type ProviderReport struct {
	Users     int64   `json:"users"`
	Hours     float64 `json:"hours"`
	DataMB    float64 `json:"data"`
	Downloads int64   `json:"downloads"`
	Earnings  float64 `json:"earnings"`
}

// StreamStats is the raw per-provider aggregate over stream events.
type StreamStats struct {
	Users      int64   `json:"users"`
	Seconds    float64 `json:"seconds"`
	DataUsedMB float64 `json:"dataUsedMB"`
	Earnings   float64 `json:"earnings"`
}

// DownloadStats is the raw per-provider aggregate over download events.
type DownloadStats struct {
	Count    int64   `json:"count"`
	Earnings float64 `json:"earnings"`
}
