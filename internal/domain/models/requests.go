package models

// BucketsRequest selects the metric column for quartile bucketing, with an
// optional group post-filter (comma-separated labels).
type BucketsRequest struct {
	Metric string `query:"metric" default:"usage_rate" validate:"required"`
	Groups string `query:"groups"`
}

// MapRequest selects the map metric and its minimum-value filter.
type MapRequest struct {
	Metric string  `query:"metric" default:"available_rent_bikes" validate:"oneof=available_rent_bikes return_availability_rate bike_usage_rate total"`
	Min    float64 `query:"min" validate:"gte=0"`
}

// SummaryRequest selects the metric for the top-stations panel.
type SummaryRequest struct {
	Metric string `query:"metric" default:"available_rent_bikes" validate:"oneof=available_rent_bikes return_availability_rate bike_usage_rate total"`
}
