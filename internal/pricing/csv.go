package pricing

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteScanCSV writes an optimization scan to disk, one row per evaluated
// scenario. This is the primary artifact for inspecting the revenue curve.
func WriteScanCSV(path string, samples []ScanSample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"percentage_change",
		"new_price",
		"volume_multiplier",
		"projected_volume",
		"projected_revenue",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range samples {
		row := []string{
			fmtFloat(s.PercentageChange),
			fmtFloat(s.NewPrice),
			fmtFloat(s.VolumeMultiplier),
			fmtFloat(s.ProjectedVolume),
			fmtFloat(s.ProjectedRevenue),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
