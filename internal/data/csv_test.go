package data

import (
	"errors"
	"strings"
	"testing"
)

const goodCSV = `order_id,current_price,category,is_returned,markdown_percentage,brand
1,49.99,Outerwear,True,20,Northway
2,49.99,Outerwear,False,20,Northway
3,19.99,Accessories,0,0,Trimco
4,19.99,Accessories,1,0,Trimco
5,29.99,Accessories,,50,Trimco
`

func TestReadCSV_HappyPath(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(goodCSV), "upload")
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if ds.Len() != 5 {
		t.Fatalf("records = %d, want 5", ds.Len())
	}

	// Bool-like spellings: "True", "False", 1, 0 and blank (not returned).
	wantReturned := []bool{true, false, false, true, false}
	for i, want := range wantReturned {
		if ds.Records[i].IsReturned != want {
			t.Errorf("record %d IsReturned = %v, want %v", i, ds.Records[i].IsReturned, want)
		}
	}

	cats := ds.Categories()
	if len(cats) != 2 || cats[0] != "Outerwear" || cats[1] != "Accessories" {
		t.Errorf("categories = %v", cats)
	}
}

func TestReadCSV_ColumnOrderIrrelevant(t *testing.T) {
	shuffled := "markdown_percentage,is_returned,category,current_price\n10,False,Shoes,80\n"
	ds, err := ReadCSV(strings.NewReader(shuffled), "upload")
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	r := ds.Records[0]
	if r.CurrentPrice != 80 || r.MarkdownPercentage != 10 || r.Category != "Shoes" {
		t.Errorf("record = %+v", r)
	}
}

func TestReadCSV_MissingColumns(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("current_price,category\n10,Shoes\n"), "upload")
	var schema *SchemaError
	if !errors.As(err, &schema) {
		t.Fatalf("want SchemaError, got %v", err)
	}
	if len(schema.Missing) != 2 {
		t.Errorf("missing = %v, want is_returned and markdown_percentage", schema.Missing)
	}
}

func TestReadCSV_BadValues(t *testing.T) {
	header := "current_price,category,is_returned,markdown_percentage\n"
	cases := []struct {
		name  string
		row   string
		field string
	}{
		{"non-numeric price", "abc,Shoes,False,10", "current_price"},
		{"zero price", "0,Shoes,False,10", "current_price"},
		{"negative price", "-5,Shoes,False,10", "current_price"},
		{"bad bool", "10,Shoes,maybe,10", "is_returned"},
		{"markdown above 100", "10,Shoes,False,101", "markdown_percentage"},
		{"negative markdown", "10,Shoes,False,-1", "markdown_percentage"},
	}
	for _, tc := range cases {
		_, err := ReadCSV(strings.NewReader(header+tc.row+"\n"), "upload")
		var schema *SchemaError
		if !errors.As(err, &schema) {
			t.Errorf("%s: want SchemaError, got %v", tc.name, err)
			continue
		}
		if schema.Field != tc.field {
			t.Errorf("%s: field = %q, want %q", tc.name, schema.Field, tc.field)
		}
		if schema.Line != 2 {
			t.Errorf("%s: line = %d, want 2", tc.name, schema.Line)
		}
	}
}

func TestReadCSV_EmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), "upload")
	var schema *SchemaError
	if !errors.As(err, &schema) {
		t.Fatalf("want SchemaError for empty input, got %v", err)
	}
}

func TestSampleDataset(t *testing.T) {
	ds := SampleDataset()
	if ds.Len() == 0 {
		t.Fatal("sample dataset is empty")
	}
	stats := ds.PriceStats()
	if stats.Distinct < 2 {
		t.Errorf("sample dataset needs price variation, got %d distinct prices", stats.Distinct)
	}
	cats := ds.Categories()
	if len(cats) != 2 {
		t.Errorf("sample categories = %v, want 2", cats)
	}
}
