package pricing

import "fmt"

// InsufficientDataError means the dataset cannot support an elasticity
// estimate: too few records, or no price variation and no configured
// fallback coefficient. These are data-quality problems the caller must
// surface; the estimator never papers over them with a silent default.
type InsufficientDataError struct {
	Records int
	Reason  string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data (%d records): %s", e.Records, e.Reason)
}

// OutOfRangeError means a requested percentage change falls outside the
// supported simulation domain.
type OutOfRangeError struct {
	Value float64
	Low   float64
	High  float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("percentage change %.2f outside supported range [%.0f, %.0f]", e.Value, e.Low, e.High)
}

// DegenerateElasticityError means the regression produced a non-finite
// coefficient. Surfaced rather than silently defaulted: a NaN elasticity
// would corrupt every revenue number downstream.
type DegenerateElasticityError struct {
	Coefficient float64
}

func (e *DegenerateElasticityError) Error() string {
	return fmt.Sprintf("elasticity estimate is not finite (%v)", e.Coefficient)
}
