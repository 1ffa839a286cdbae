package model

import (
	"fmt"
	"math"
	"sort"
)

// Dataset is an ordered, schema-valid collection of TransactionRecords.
// It is read-only for the remainder of the pipeline: every derived object
// (elasticity model, risk profile) is recomputed from scratch when the
// caller swaps in a new dataset.
type Dataset struct {
	Name    string
	Records []TransactionRecord
}

func NewDataset(name string, records []TransactionRecord) (*Dataset, error) {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return &Dataset{Name: name, Records: records}, nil
}

func (d *Dataset) Len() int {
	return len(d.Records)
}

// Categories returns the distinct category labels in first-seen order.
func (d *Dataset) Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range d.Records {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}

// PriceStats summarizes the current_price column.
type PriceStats struct {
	Min      float64
	Max      float64
	Mean     float64
	Distinct int
}

func (d *Dataset) PriceStats() PriceStats {
	s := PriceStats{}
	if len(d.Records) == 0 {
		return s
	}
	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(d.Records))
	for _, r := range d.Records {
		v := r.CurrentPrice
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(vals)
	distinct := 1
	for i := 1; i < len(vals); i++ {
		if vals[i] != vals[i-1] {
			distinct++
		}
	}
	s.Min = minv
	s.Max = maxv
	s.Mean = sum / float64(len(vals))
	s.Distinct = distinct
	return s
}
