package data

import (
	"math"

	"price-optimizer/internal/model"
)

// SampleDataset builds a deterministic built-in dataset resembling a
// markdown-heavy apparel export. Sale-line counts follow count ~ price^-1.8
// across all price points (elastic demand), return rates climb with
// markdown depth for Outerwear and stay flat for Accessories.
//
// It gives the API, CLI and demo something to run against before a user
// uploads real data.
func SampleDataset() *model.Dataset {
	var records []model.TransactionRecord

	blocks := []struct {
		price    float64
		category string
		markdown float64
		rate     float64 // target return rate
	}{
		{15, "Accessories", 0, 0.04},
		{20, "Accessories", 25, 0.04},
		{25, "Accessories", 50, 0.04},
		{60, "Outerwear", 0, 0.05},
		{75, "Outerwear", 10, 0.10},
		{90, "Outerwear", 20, 0.15},
		{105, "Outerwear", 30, 0.20},
		{120, "Outerwear", 40, 0.25},
	}

	for _, b := range blocks {
		count := int(math.Round(40000 * math.Pow(b.price, -1.8)))
		returns := int(math.Round(b.rate * float64(count)))
		for j := 0; j < count; j++ {
			records = append(records, model.TransactionRecord{
				CurrentPrice:       b.price,
				Category:           b.category,
				IsReturned:         j < returns,
				MarkdownPercentage: b.markdown,
			})
		}
	}

	ds, err := model.NewDataset("sample", records)
	if err != nil {
		// The generator only emits valid records.
		panic(err)
	}
	return ds
}
