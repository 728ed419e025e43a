package models

// Marker colors used by the station map.
const (
	ColorGreen  = "green"
	ColorOrange = "orange"
	ColorRed    = "red"
)

// Marker is one station on the map, colored by a fixed threshold over the
// selected metric.
type Marker struct {
	StationID   string  `json:"station_id"`
	StationName string  `json:"station_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Capacity    int     `json:"total_capacity"`
	AvgRent     float64 `json:"avg_rent"`
	AvgReturn   float64 `json:"avg_return"`
	UsagePct    float64 `json:"usage_pct"`  // avg rent bikes / capacity * 100
	ReturnPct   float64 `json:"return_pct"` // avg return docks / capacity * 100
	Value       float64 `json:"value"`      // the selected metric's value
	Color       string  `json:"color"`
}

// MapView is the marker set for one metric/threshold selection.
type MapView struct {
	Metric   string   `json:"metric"`
	MinValue float64  `json:"min_value"`
	Markers  []Marker `json:"markers"`
}
