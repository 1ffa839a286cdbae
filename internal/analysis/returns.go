package analysis

import (
	"sort"

	"price-optimizer/internal/model"
)

// DefaultBuckets is the number of markdown buckets (deciles).
const DefaultBuckets = 10

// minTrendBuckets is how many populated buckets a slope fit needs.
const minTrendBuckets = 2

// BucketRate is the return rate of one markdown-depth bucket.
type BucketRate struct {
	// LowPct/HighPct bound the bucket: [LowPct, HighPct), except the last
	// bucket which includes HighPct so markdown_percentage=100 lands in it.
	LowPct  float64
	HighPct float64
	MidPct  float64

	Records    int
	Returns    int
	ReturnRate float64
}

// CategoryRisk quantifies how return rate responds to markdown depth for
// one category (or the whole dataset for the overall aggregate).
//
// MarkdownSlope is the fitted change in return rate per markdown
// percentage point: positive means deeper discounts come back more often.
// Sufficient is false when there is too little data to fit a trend; the
// rate and slope fields are zero in that case rather than an error.
type CategoryRisk struct {
	Category string

	Records    int
	Returns    int
	ReturnRate float64

	Buckets       []BucketRate
	MarkdownSlope float64
	Sufficient    bool
}

// ReturnRiskProfile is the per-category and overall markdown/return
// relationship derived from one dataset.
type ReturnRiskProfile struct {
	Overall    CategoryRisk
	Categories []CategoryRisk
}

// Analyze computes the return-risk profile of a dataset. Categories are
// sorted by descending markdown slope so the riskiest categories rank
// first; categories without enough data sort last.
func Analyze(ds *model.Dataset) ReturnRiskProfile {
	return AnalyzeBuckets(ds, DefaultBuckets)
}

// AnalyzeBuckets is Analyze with an explicit markdown bucket count.
func AnalyzeBuckets(ds *model.Dataset, buckets int) ReturnRiskProfile {
	if buckets < 1 {
		buckets = DefaultBuckets
	}

	profile := ReturnRiskProfile{
		Overall: riskFor("", ds.Records, buckets),
	}

	byCategory := make(map[string][]model.TransactionRecord)
	for _, r := range ds.Records {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	for category, records := range byCategory {
		profile.Categories = append(profile.Categories, riskFor(category, records, buckets))
	}

	sort.Slice(profile.Categories, func(i, j int) bool {
		a, b := profile.Categories[i], profile.Categories[j]
		if a.Sufficient != b.Sufficient {
			return a.Sufficient
		}
		if a.MarkdownSlope != b.MarkdownSlope {
			return a.MarkdownSlope > b.MarkdownSlope
		}
		return a.Category < b.Category
	})
	return profile
}

// RiskForCategory computes CategoryRisk for a single category label.
// A label with zero matching records yields the insufficient-data marker,
// never an error.
func RiskForCategory(ds *model.Dataset, category string) CategoryRisk {
	var records []model.TransactionRecord
	for _, r := range ds.Records {
		if r.Category == category {
			records = append(records, r)
		}
	}
	return riskFor(category, records, DefaultBuckets)
}

func riskFor(category string, records []model.TransactionRecord, buckets int) CategoryRisk {
	risk := CategoryRisk{Category: category, Records: len(records)}
	if len(records) == 0 {
		return risk
	}

	for _, r := range records {
		if r.IsReturned {
			risk.Returns++
		}
	}
	risk.ReturnRate = float64(risk.Returns) / float64(risk.Records)

	width := 100.0 / float64(buckets)
	counts := make([]int, buckets)
	returns := make([]int, buckets)
	for _, r := range records {
		idx := int(r.MarkdownPercentage / width)
		if idx >= buckets {
			idx = buckets - 1
		}
		counts[idx]++
		if r.IsReturned {
			returns[idx]++
		}
	}

	for i := 0; i < buckets; i++ {
		if counts[i] == 0 {
			continue
		}
		low := float64(i) * width
		risk.Buckets = append(risk.Buckets, BucketRate{
			LowPct:     low,
			HighPct:    low + width,
			MidPct:     low + width/2,
			Records:    counts[i],
			Returns:    returns[i],
			ReturnRate: float64(returns[i]) / float64(counts[i]),
		})
	}

	if len(risk.Buckets) < minTrendBuckets {
		return risk
	}

	risk.MarkdownSlope = trendSlope(risk.Buckets)
	risk.Sufficient = true
	return risk
}

// trendSlope fits return rate against bucket midpoint by least squares.
func trendSlope(buckets []BucketRate) float64 {
	var sumX, sumY, sumXY, sumXX float64
	n := float64(len(buckets))
	for _, b := range buckets {
		sumX += b.MidPct
		sumY += b.ReturnRate
		sumXY += b.MidPct * b.ReturnRate
		sumXX += b.MidPct * b.MidPct
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
