package models

// BoundaryRule says how a bucket group treats its lower bound. The first
// group includes it, later groups exclude it, so a station sitting exactly
// on a quartile belongs to the lower group only.
type BoundaryRule string

const (
	InclusiveLow BoundaryRule = "inclusive_low"
	ExclusiveLow BoundaryRule = "exclusive_low"
)

// Group labels, ordered low to high.
const (
	GroupLow     = "low"
	GroupMidLow  = "mid-low"
	GroupMidHigh = "mid-high"
	GroupHigh    = "high"
)

// GroupLabels returns the four labels in ascending order.
func GroupLabels() []string {
	return []string{GroupLow, GroupMidLow, GroupMidHigh, GroupHigh}
}

// BucketGroup is one quartile-derived partition of stations by a metric.
type BucketGroup struct {
	Label    string       `json:"label"`
	Lower    float64      `json:"lower"`
	Upper    float64      `json:"upper"`
	Rule     BoundaryRule `json:"rule"`
	Stations int          `json:"stations"`
}

// Bucketing is the result of partitioning stations on one metric column.
// Groups are ordered low to high; Assignments maps every station to exactly
// one group label.
type Bucketing struct {
	Metric      string            `json:"metric"`
	Groups      []BucketGroup     `json:"groups"`
	Assignments map[string]string `json:"assignments"`
}
