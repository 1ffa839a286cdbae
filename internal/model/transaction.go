package model

import (
	"errors"
	"fmt"
	"strings"
)

// TransactionRecord is one historical sale line.
// Units:
// - CurrentPrice: currency per unit, must be > 0
// - MarkdownPercentage: percent off original price, 0..100
//
// Records are immutable once loaded; the pipeline never writes them back.
type TransactionRecord struct {
	CurrentPrice       float64
	Category           string
	IsReturned         bool
	MarkdownPercentage float64
}

func (r TransactionRecord) Validate() error {
	if r.CurrentPrice <= 0 {
		return errors.New("current_price must be > 0")
	}
	if r.MarkdownPercentage < 0 || r.MarkdownPercentage > 100 {
		return errors.New("markdown_percentage must be in [0, 100]")
	}
	return nil
}

// ParseBoolLike accepts the boolean spellings seen in retail exports:
// "True"/"False" (any case), "1"/"0", "yes"/"no", "t"/"f".
// An empty value means not returned (missing flags default to false).
func ParseBoolLike(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes", "y":
		return true, nil
	case "false", "f", "0", "no", "n", "":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean value: %q", s)
}
