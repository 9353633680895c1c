package dto

// DedupRequest bounds a standalone dedup run.
// Dates are calendar days (YYYY-MM-DD) or RFC 3339 timestamps; endDate days are inclusive.
type DedupRequest struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// DedupResponse reports the size of a dedup run
type DedupResponse struct {
	CandidateCount  int `json:"candidateCount"`
	ProcessedGroups int `json:"processedGroups"`
}

// HealthResponse reports service and database health
type HealthResponse struct {
	Status        string `json:"status"`
	Driver        string `json:"driver"`
	LatencyMs     int64  `json:"latencyMs"`
	OpenConns     int    `json:"openConnections"`
	InUse         int    `json:"inUse"`
	Idle          int    `json:"idle"`
	Queries       int64  `json:"queries"`
	SlowQueries   int64  `json:"slowQueries"`
	FailedQueries int64  `json:"failedQueries"`
	Error         string `json:"error,omitempty"`
}
