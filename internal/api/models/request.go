package models

// SimulateRequest asks for one what-if scenario against a stored dataset.
type SimulateRequest struct {
	DatasetID        string  `json:"dataset_id" binding:"required"`
	PercentageChange float64 `json:"percentage_change"`
}

// CompareRequest asks for several scenarios against the same dataset.
type CompareRequest struct {
	DatasetID string    `json:"dataset_id" binding:"required"`
	Changes   []float64 `json:"changes" binding:"required"`
}

// OptimizeRequest asks for the revenue-maximizing change within a domain.
// Domain is optional; the configured default domain applies when omitted.
type OptimizeRequest struct {
	DatasetID string        `json:"dataset_id" binding:"required"`
	Domain    *DomainConfig `json:"domain,omitempty"`
}

// DomainConfig bounds the percentage changes an optimization may consider.
type DomainConfig struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}
