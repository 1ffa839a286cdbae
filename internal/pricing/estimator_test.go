package pricing

import (
	"errors"
	"math"
	"testing"

	"price-optimizer/internal/model"
)

func datasetWithPrices(t *testing.T, priceCounts map[float64]int) *model.Dataset {
	t.Helper()
	var records []model.TransactionRecord
	for price, count := range priceCounts {
		for i := 0; i < count; i++ {
			records = append(records, model.TransactionRecord{
				CurrentPrice: price,
				Category:     "Outerwear",
			})
		}
	}
	ds, err := model.NewDataset("test", records)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestEstimate_KnownSlope(t *testing.T) {
	// Doubling the price halves the count: elasticity exactly -1.
	ds := datasetWithPrices(t, map[float64]int{10: 100, 20: 50})

	est := NewEstimator(EstimatorParams{})
	m, err := est.Estimate(ds)
	if err != nil {
		t.Fatalf("Estimate() error: %v", err)
	}
	if math.Abs(m.Coefficient-(-1)) > 1e-9 {
		t.Errorf("coefficient = %v, want -1", m.Coefficient)
	}
	if m.Source != SourceRegression {
		t.Errorf("source = %q, want %q", m.Source, SourceRegression)
	}
	if m.BaselineVolume != 150 {
		t.Errorf("baseline volume = %v, want 150", m.BaselineVolume)
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	ds := datasetWithPrices(t, map[float64]int{10: 40, 15: 25, 20: 12})
	est := NewEstimator(EstimatorParams{})

	first, err := est.Estimate(ds)
	if err != nil {
		t.Fatal(err)
	}
	second, err := est.Estimate(ds)
	if err != nil {
		t.Fatal(err)
	}
	if *first != *second {
		t.Errorf("repeated estimates differ: %+v vs %+v", first, second)
	}
}

func TestEstimate_TooFewRecords(t *testing.T) {
	ds := datasetWithPrices(t, map[float64]int{10: 1})

	_, err := NewEstimator(EstimatorParams{}).Estimate(ds)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("want InsufficientDataError, got %v", err)
	}
	if insufficient.Records != 1 {
		t.Errorf("Records = %d, want 1", insufficient.Records)
	}
}

func TestEstimate_ZeroVarianceUsesDefault(t *testing.T) {
	ds := datasetWithPrices(t, map[float64]int{25: 10})

	m, err := NewEstimator(EstimatorParams{DefaultCoefficient: -1.5}).Estimate(ds)
	if err != nil {
		t.Fatalf("Estimate() error: %v", err)
	}
	if m.Coefficient != -1.5 {
		t.Errorf("coefficient = %v, want -1.5", m.Coefficient)
	}
	if m.Source != SourceDefault {
		t.Errorf("source = %q, want %q", m.Source, SourceDefault)
	}
}

func TestEstimate_ZeroVarianceWithoutDefault(t *testing.T) {
	ds := datasetWithPrices(t, map[float64]int{25: 10})

	_, err := NewEstimator(EstimatorParams{}).Estimate(ds)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("want InsufficientDataError, got %v", err)
	}
}
