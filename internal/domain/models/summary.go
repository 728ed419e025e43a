package models

// RankedStation is one entry of the top-stations panel.
type RankedStation struct {
	StationID   string  `json:"station_id"`
	StationName string  `json:"station_name"`
	ShortName   string  `json:"short_name"`
	Value       float64 `json:"value"`
}

// OverallStats is the dataset-wide headline numbers panel.
type OverallStats struct {
	Stations     int     `json:"stations"`
	AvgCapacity  float64 `json:"avg_capacity"`
	AvgRent      float64 `json:"avg_rent"`
	AvgUsageRate float64 `json:"avg_usage_rate"`
}

// Summary bundles the dashboard side panels: top-5 stations by the selected
// metric, overall statistics, and detected peak/off-peak hour ranges.
type Summary struct {
	Metric       string          `json:"metric"`
	TopStations  []RankedStation `json:"top_stations"`
	Overall      OverallStats    `json:"overall"`
	PeakHours    []string        `json:"peak_hours"`     // "HH:00-HH:00", busiest first
	OffPeakHours []string        `json:"off_peak_hours"` // quietest first
}
