package analysis

import (
	"math"
	"testing"

	"price-optimizer/internal/model"
)

// block builds n records for a category at one markdown depth, the first
// `returned` of which came back.
func block(category string, markdown float64, n, returned int) []model.TransactionRecord {
	out := make([]model.TransactionRecord, n)
	for i := range out {
		out[i] = model.TransactionRecord{
			CurrentPrice:       50,
			Category:           category,
			IsReturned:         i < returned,
			MarkdownPercentage: markdown,
		}
	}
	return out
}

func buildDataset(t *testing.T, blocks ...[]model.TransactionRecord) *model.Dataset {
	t.Helper()
	var records []model.TransactionRecord
	for _, b := range blocks {
		records = append(records, b...)
	}
	ds, err := model.NewDataset("test", records)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestAnalyze_ReturnRates(t *testing.T) {
	ds := buildDataset(t,
		block("Outerwear", 5, 10, 1),  // 10% returned at shallow markdown
		block("Outerwear", 85, 10, 5), // 50% returned at deep markdown
	)

	profile := Analyze(ds)

	if profile.Overall.Records != 20 || profile.Overall.Returns != 6 {
		t.Fatalf("overall = %d/%d, want 6/20", profile.Overall.Returns, profile.Overall.Records)
	}
	if math.Abs(profile.Overall.ReturnRate-0.3) > 1e-9 {
		t.Errorf("overall rate = %v, want 0.3", profile.Overall.ReturnRate)
	}
}

func TestAnalyze_SlopeRisesWithMarkdown(t *testing.T) {
	// Rate climbs from 0.1 at midpoint 5 to 0.5 at midpoint 85:
	// slope = 0.4 / 80 = 0.005 per markdown point.
	ds := buildDataset(t,
		block("Outerwear", 5, 10, 1),
		block("Outerwear", 85, 10, 5),
	)

	risk := RiskForCategory(ds, "Outerwear")
	if !risk.Sufficient {
		t.Fatal("risk should be sufficient with two populated buckets")
	}
	if math.Abs(risk.MarkdownSlope-0.005) > 1e-9 {
		t.Errorf("slope = %v, want 0.005", risk.MarkdownSlope)
	}
}

func TestAnalyze_EmptyCategoryIsMarkedInsufficient(t *testing.T) {
	ds := buildDataset(t, block("Outerwear", 10, 5, 1))

	risk := RiskForCategory(ds, "Footwear")
	if risk.Sufficient {
		t.Error("empty category should not be sufficient")
	}
	if risk.Records != 0 || risk.ReturnRate != 0 {
		t.Errorf("empty category = %+v, want zero records and rate", risk)
	}
}

func TestAnalyze_SingleBucketHasNoTrend(t *testing.T) {
	ds := buildDataset(t, block("Accessories", 12, 30, 3))

	risk := RiskForCategory(ds, "Accessories")
	if risk.Sufficient {
		t.Error("one populated bucket cannot support a trend fit")
	}
	if math.Abs(risk.ReturnRate-0.1) > 1e-9 {
		t.Errorf("rate = %v, want 0.1", risk.ReturnRate)
	}
}

func TestAnalyze_FullMarkdownLandsInLastBucket(t *testing.T) {
	ds := buildDataset(t,
		block("Outerwear", 100, 4, 2),
		block("Outerwear", 0, 4, 0),
	)

	risk := RiskForCategory(ds, "Outerwear")
	if len(risk.Buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(risk.Buckets))
	}
	last := risk.Buckets[len(risk.Buckets)-1]
	if last.Records != 4 || last.HighPct != 100 {
		t.Errorf("last bucket = %+v, want 4 records bounded at 100", last)
	}
}

func TestAnalyze_SortsRiskiestFirst(t *testing.T) {
	ds := buildDataset(t,
		block("Flat", 5, 10, 2),
		block("Flat", 85, 10, 2), // no trend
		block("Risky", 5, 10, 0),
		block("Risky", 85, 10, 8), // steep trend
	)

	profile := Analyze(ds)
	if len(profile.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(profile.Categories))
	}
	if profile.Categories[0].Category != "Risky" {
		t.Errorf("first category = %q, want Risky", profile.Categories[0].Category)
	}
}
