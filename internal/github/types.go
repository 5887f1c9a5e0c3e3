package github

import "time"

// Credential authenticates traffic API calls for one tenant.
type Credential struct {
	Username string
	Token    string
}

// TrafficDay is one day of view or clone traffic for a repository.
type TrafficDay struct {
	Date    time.Time
	Count   int64
	Uniques int64
}

// Traffic holds the two day-keyed series the traffic API exposes. The
// window length is whatever the API returned (currently ~14 days).
type Traffic struct {
	Views  []TrafficDay
	Clones []TrafficDay
}

// apiTrafficResponse is the relevant part of the traffic API JSON.
// The views endpoint populates "views", the clones endpoint "clones".
type apiTrafficResponse struct {
	Count   int64        `json:"count"`
	Uniques int64        `json:"uniques"`
	Views   []apiDayStat `json:"views"`
	Clones  []apiDayStat `json:"clones"`
}

// apiDayStat has the per-day totals; timestamp marks the day at midnight UTC.
type apiDayStat struct {
	Timestamp time.Time `json:"timestamp"`
	Count     int64     `json:"count"`
	Uniques   int64     `json:"uniques"`
}
