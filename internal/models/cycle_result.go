package models

import "time"

// CycleResult captures the outcome of one polling cycle: which feeds were
// fetched, how many are being tracked, and the ranked set of spiking feeds
// that made it into the report. Serves both the console report and the ops
// status endpoint.
type CycleResult struct {
	CycleID      string    `json:"cycleId"`
	StartedAt    time.Time `json:"startedAt"`
	Hour         int       `json:"hour"`
	FetchedFeeds int       `json:"fetchedFeeds"`
	TrackedFeeds int       `json:"trackedFeeds"`
	Feeds        []Feed    `json:"feeds"`
}
