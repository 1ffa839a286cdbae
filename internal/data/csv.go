package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"price-optimizer/internal/model"
)

// Required input columns. Extra columns are ignored.
var requiredColumns = []string{
	"current_price",
	"category",
	"is_returned",
	"markdown_percentage",
}

// SchemaError means the uploaded file does not match the required schema.
// It is a load-time error: the core never sees a malformed dataset.
type SchemaError struct {
	Missing []string
	Line    int
	Field   string
	Reason  string
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("line %d, column %q: %s", e.Line, e.Field, e.Reason)
}

// LoadCSV reads a transaction dataset from a CSV file on disk.
func LoadCSV(path, name string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, name)
}

// ReadCSV parses a transaction dataset from CSV content.
//
// The header must contain current_price, category, is_returned and
// markdown_percentage; column order does not matter and extra columns are
// ignored. is_returned accepts True/False, 1/0 and blank (blank means not
// returned). Any malformed row aborts the load with a SchemaError carrying
// its line number.
func ReadCSV(r io.Reader, name string) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: requiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	var records []model.TransactionRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line+1, err)
		}
		line++

		price, err := strconv.ParseFloat(strings.TrimSpace(row[idx["current_price"]]), 64)
		if err != nil {
			return nil, &SchemaError{Line: line, Field: "current_price", Reason: "not a number"}
		}
		if price <= 0 {
			return nil, &SchemaError{Line: line, Field: "current_price", Reason: "must be > 0"}
		}

		returned, err := model.ParseBoolLike(row[idx["is_returned"]])
		if err != nil {
			return nil, &SchemaError{Line: line, Field: "is_returned", Reason: err.Error()}
		}

		markdown, err := strconv.ParseFloat(strings.TrimSpace(row[idx["markdown_percentage"]]), 64)
		if err != nil {
			return nil, &SchemaError{Line: line, Field: "markdown_percentage", Reason: "not a number"}
		}
		if markdown < 0 || markdown > 100 {
			return nil, &SchemaError{Line: line, Field: "markdown_percentage", Reason: "must be in [0, 100]"}
		}

		records = append(records, model.TransactionRecord{
			CurrentPrice:       price,
			Category:           strings.TrimSpace(row[idx["category"]]),
			IsReturned:         returned,
			MarkdownPercentage: markdown,
		})
	}

	return model.NewDataset(name, records)
}
