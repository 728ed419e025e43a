package models

import "time"

// Snapshot is one observed station state at a point in time. Snapshots are
// the immutable source of truth; nothing downstream mutates them.
type Snapshot struct {
	StationID       string    `json:"station_id"`
	StationName     string    `json:"station_name"`
	Timestamp       time.Time `json:"timestamp"`
	Hour            int       `json:"hour"` // hour of day, derived from Timestamp
	Capacity        int       `json:"total_capacity"`
	AvailableRent   int       `json:"available_rent_bikes"`
	AvailableReturn int       `json:"available_return_docks"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
}

// LoadReport describes the outcome of a dataset load.
type LoadReport struct {
	Path        string    `json:"path"`
	Rows        int       `json:"rows"`
	DroppedRows int       `json:"dropped_rows"`
	Stations    int       `json:"stations"`
	Hash        string    `json:"hash"` // SHA-256 of raw file bytes, dataset identity
	LoadedAt    time.Time `json:"loaded_at"`
}

// Dataset bundles the parsed snapshots with their load report.
type Dataset struct {
	Snapshots []Snapshot
	Report    LoadReport
}
