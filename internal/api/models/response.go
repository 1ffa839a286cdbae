package models

import "time"

// DatasetInfo summarizes a stored dataset.
type DatasetInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Records    int       `json:"records"`
	Categories []string  `json:"categories"`
	MeanPrice  float64   `json:"mean_price"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ElasticityResponse is the estimate for one dataset.
type ElasticityResponse struct {
	DatasetID      string  `json:"dataset_id"`
	BaselinePrice  float64 `json:"baseline_price"`
	BaselineVolume float64 `json:"baseline_volume"`
	Coefficient    float64 `json:"coefficient"`
	Source         string  `json:"source"` // "regression" or "default"
}

// Simulation is one projected scenario.
type Simulation struct {
	PercentageChange float64 `json:"percentage_change"`
	NewPrice         float64 `json:"new_price"`
	VolumeMultiplier float64 `json:"volume_multiplier"`
	ProjectedVolume  float64 `json:"projected_volume"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	BaselineRevenue  float64 `json:"baseline_revenue"`
	RevenueDelta     float64 `json:"revenue_delta"`
	RevenueDeltaPct  float64 `json:"revenue_delta_pct"`
	VolumeDelta      float64 `json:"volume_delta"`
	VolumeDeltaPct   float64 `json:"volume_delta_pct"`
	Outcome          string  `json:"outcome"`
	Summary          string  `json:"summary"`
}

// SimulateResponse wraps one simulation with its model.
type SimulateResponse struct {
	DatasetID  string             `json:"dataset_id"`
	Elasticity ElasticityResponse `json:"elasticity"`
	Simulation Simulation         `json:"simulation"`
}

// CompareResponse holds simulations for several scenarios, in request order.
type CompareResponse struct {
	DatasetID   string       `json:"dataset_id"`
	Simulations []Simulation `json:"simulations"`
}

// OptimizeResponse is the revenue-maximizing scenario within the domain.
type OptimizeResponse struct {
	DatasetID        string       `json:"dataset_id"`
	PercentageChange float64      `json:"percentage_change"`
	Evaluated        int          `json:"evaluated"`
	Domain           DomainConfig `json:"domain"`
	Simulation       Simulation   `json:"simulation"`
}

// BucketRate is the return rate of one markdown-depth bucket.
type BucketRate struct {
	LowPct     float64 `json:"low_pct"`
	HighPct    float64 `json:"high_pct"`
	Records    int     `json:"records"`
	Returns    int     `json:"returns"`
	ReturnRate float64 `json:"return_rate"`
}

// CategoryRisk is the markdown/return relationship for one category.
type CategoryRisk struct {
	Category      string       `json:"category"`
	Records       int          `json:"records"`
	Returns       int          `json:"returns"`
	ReturnRate    float64      `json:"return_rate"`
	MarkdownSlope float64      `json:"markdown_slope"`
	Sufficient    bool         `json:"sufficient"`
	Buckets       []BucketRate `json:"buckets,omitempty"`
}

// ReturnsResponse is the return-risk profile of a dataset.
type ReturnsResponse struct {
	DatasetID  string         `json:"dataset_id"`
	Overall    CategoryRisk   `json:"overall"`
	Categories []CategoryRisk `json:"categories"`
	Advisory   string         `json:"advisory"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
