package models

import "encoding/json"

// StationStats is the derived per-station statistics row. Aggregate columns
// carry 2-decimal rounding, ratio columns 3-decimal, matching the exported
// CSV format.
type StationStats struct {
	StationID   string `json:"station_id"`
	StationName string `json:"station_name"`
	ShortName   string `json:"short_name"`
	Capacity    int    `json:"total_capacity"`

	AvgRent float64 `json:"avg_rent"`
	StdRent float64 `json:"std_rent"`
	MinRent int     `json:"min_rent"`
	MaxRent int     `json:"max_rent"`

	AvgReturn float64 `json:"avg_return"`
	StdReturn float64 `json:"std_return"`
	MinReturn int     `json:"min_return"`
	MaxReturn int     `json:"max_return"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	UsageRate  float64 `json:"usage_rate"`
	RentEase   float64 `json:"rent_ease"`
	ReturnEase float64 `json:"return_ease"`
	RentCV     float64 `json:"rent_cv"`
	ReturnCV   float64 `json:"return_cv"`

	// StabilityIndex is stored once; the wire format also carries it under
	// the legacy column name circulation_rate (see MarshalJSON).
	StabilityIndex float64 `json:"stability_index"`
	Efficiency     float64 `json:"efficiency"`

	// ZeroCapacity marks stations whose capacity column is 0; their ratio
	// columns hold 0 instead of a division result.
	ZeroCapacity bool `json:"zero_capacity,omitempty"`
}

// CirculationRate is an alias of StabilityIndex kept for dashboard
// consumers that address the column by its legacy name.
func (s StationStats) CirculationRate() float64 {
	return s.StabilityIndex
}

func (s StationStats) MarshalJSON() ([]byte, error) {
	type alias StationStats
	return json.Marshal(struct {
		alias
		CirculationRate float64 `json:"circulation_rate"`
	}{alias(s), s.StabilityIndex})
}

// HourlyAggregate is the dataset-wide mean availability for one hour of day.
// Hours with no observations are absent rather than zero-filled.
type HourlyAggregate struct {
	Hour      int     `json:"hour"`
	AvgRent   float64 `json:"avg_rent"`
	AvgReturn float64 `json:"avg_return"`
}
