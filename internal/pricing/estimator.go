package pricing

import (
	"math"
	"sort"

	"price-optimizer/internal/model"
)

// CoefficientSource records where a model's elasticity came from.
type CoefficientSource string

const (
	// SourceRegression: coefficient fitted from price variation in the data.
	SourceRegression CoefficientSource = "regression"
	// SourceDefault: no price variation; the configured default was used.
	SourceDefault CoefficientSource = "default"
)

// ElasticityModel is the immutable summary an estimate produces.
// Volume is a transaction-count proxy (the input schema has no units
// column), so revenue figures are currency x sale lines.
type ElasticityModel struct {
	BaselinePrice  float64
	BaselineVolume float64
	Coefficient    float64
	Source         CoefficientSource
}

// EstimatorParams configures estimation.
// DefaultCoefficient is only consulted when the dataset has zero price
// variance; zero means "no default configured" and such datasets are
// rejected instead.
type EstimatorParams struct {
	MinRecords         int
	DefaultCoefficient float64
}

// Estimator computes price elasticity of demand from historical
// transactions.
type Estimator struct {
	Params EstimatorParams
}

func NewEstimator(params EstimatorParams) *Estimator {
	if params.MinRecords < 2 {
		params.MinRecords = 2
	}
	return &Estimator{Params: params}
}

// Estimate derives an ElasticityModel from a dataset.
//
// Baseline price is the mean of current_price; baseline volume is the
// record count. The coefficient is the OLS slope of log(count) on
// log(price) across distinct price points (constant-elasticity form).
// Deterministic: the same dataset always yields the same model.
func (e *Estimator) Estimate(ds *model.Dataset) (*ElasticityModel, error) {
	n := ds.Len()
	if n < e.Params.MinRecords {
		return nil, &InsufficientDataError{
			Records: n,
			Reason:  "elasticity needs price variation across at least two records",
		}
	}

	stats := ds.PriceStats()
	m := &ElasticityModel{
		BaselinePrice:  stats.Mean,
		BaselineVolume: float64(n),
	}

	if stats.Distinct < 2 {
		// Zero price variance: percent-change denominators would be zero.
		if e.Params.DefaultCoefficient == 0 {
			return nil, &InsufficientDataError{
				Records: n,
				Reason:  "current_price has zero variance and no default coefficient is configured",
			}
		}
		m.Coefficient = e.Params.DefaultCoefficient
		m.Source = SourceDefault
		return m, nil
	}

	coeff := logLogSlope(ds.Records)
	if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
		return nil, &DegenerateElasticityError{Coefficient: coeff}
	}
	m.Coefficient = coeff
	m.Source = SourceRegression
	return m, nil
}

// logLogSlope fits log(quantity) = a + b*log(price) over the distinct
// price points, with quantity = transaction count at each price.
// The slope b is the elasticity coefficient. Prices are visited in sorted
// order so repeated estimates are bit-identical.
func logLogSlope(records []model.TransactionRecord) float64 {
	counts := make(map[float64]int)
	for _, r := range records {
		counts[r.CurrentPrice]++
	}
	prices := make([]float64, 0, len(counts))
	for price := range counts {
		prices = append(prices, price)
	}
	sort.Float64s(prices)

	var sumX, sumY, sumXY, sumXX float64
	n := float64(len(prices))
	for _, price := range prices {
		x := math.Log(price)
		y := math.Log(float64(counts[price]))
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return math.NaN()
	}
	return (n*sumXY - sumX*sumY) / denom
}
