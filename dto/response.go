package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ReconcileSummaryResponse is the JSON form of a completed run
type ReconcileSummaryResponse struct {
	MismatchCount int          `json:"mismatch_count"`
	FlaggedRows   int          `json:"flagged_rows"`
	Mismatches    []Mismatch   `json:"mismatches"`
	Highlights    []Coordinate `json:"highlights"`
	ProcessedAt   string       `json:"processed_at"`
}
