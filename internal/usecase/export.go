package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"StationPulse/internal/domain/models"
)

// exportColumns is the CSV column order of the exported statistics table.
// stability_index and circulation_rate both appear, carrying the same value.
var exportColumns = []string{
	"station_id", "station_name", "short_name", "total_capacity",
	"avg_rent", "std_rent", "min_rent", "max_rent",
	"avg_return", "std_return", "min_return", "max_return",
	"latitude", "longitude",
	"usage_rate", "rent_ease", "return_ease",
	"rent_cv", "return_cv", "stability_index", "circulation_rate", "efficiency",
}

// WriteCSV writes the statistics table to w. Aggregate columns carry two
// decimals, ratio columns three, matching the stored values.
func WriteCSV(w io.Writer, stats []models.StationStats) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range stats {
		if err := cw.Write(exportRow(&stats[i])); err != nil {
			return fmt.Errorf("write station %s: %w", stats[i].StationID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV renders the statistics table into a byte slice.
func ExportCSV(stats []models.StationStats) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, stats); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(s *models.StationStats) []string {
	return []string{
		s.StationID,
		s.StationName,
		s.ShortName,
		strconv.Itoa(s.Capacity),
		dec2(s.AvgRent),
		dec2(s.StdRent),
		strconv.Itoa(s.MinRent),
		strconv.Itoa(s.MaxRent),
		dec2(s.AvgReturn),
		dec2(s.StdReturn),
		strconv.Itoa(s.MinReturn),
		strconv.Itoa(s.MaxReturn),
		coord(s.Latitude),
		coord(s.Longitude),
		dec3(s.UsageRate),
		dec3(s.RentEase),
		dec3(s.ReturnEase),
		dec3(s.RentCV),
		dec3(s.ReturnCV),
		dec3(s.StabilityIndex),
		dec3(s.CirculationRate()),
		dec3(s.Efficiency),
	}
}

func dec2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func dec3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseStatsCSV reads a table previously written by WriteCSV. Used to
// re-import an exported snapshot of the statistics table.
func ParseStatsCSV(r io.Reader) ([]models.StationStats, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, col := range exportColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var out []models.StationStats
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		s, err := parseStatsRow(record, idx)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func parseStatsRow(record []string, idx map[string]int) (models.StationStats, error) {
	var s models.StationStats
	var err error

	get := func(col string) string { return record[idx[col]] }
	num := func(col string) float64 {
		v, convErr := strconv.ParseFloat(get(col), 64)
		if convErr != nil && err == nil {
			err = fmt.Errorf("column %q: %w", col, convErr)
		}
		return v
	}
	integer := func(col string) int {
		v, convErr := strconv.Atoi(get(col))
		if convErr != nil && err == nil {
			err = fmt.Errorf("column %q: %w", col, convErr)
		}
		return v
	}

	s.StationID = get("station_id")
	s.StationName = get("station_name")
	s.ShortName = get("short_name")
	s.Capacity = integer("total_capacity")
	s.AvgRent = num("avg_rent")
	s.StdRent = num("std_rent")
	s.MinRent = integer("min_rent")
	s.MaxRent = integer("max_rent")
	s.AvgReturn = num("avg_return")
	s.StdReturn = num("std_return")
	s.MinReturn = integer("min_return")
	s.MaxReturn = integer("max_return")
	s.Latitude = num("latitude")
	s.Longitude = num("longitude")
	s.UsageRate = num("usage_rate")
	s.RentEase = num("rent_ease")
	s.ReturnEase = num("return_ease")
	s.RentCV = num("rent_cv")
	s.ReturnCV = num("return_cv")
	s.StabilityIndex = num("stability_index")
	s.Efficiency = num("efficiency")

	return s, err
}
