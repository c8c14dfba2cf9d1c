package core

import "fmt"

// RowOutcome is the result of committing one row. A failed row carries
// the error that rolled it back; the batch keeps going either way.
type RowOutcome struct {
	Line        int
	CandidateID int64
	FullName    string
	Err         error
}

// Failed reports whether the row was rolled back.
func (o RowOutcome) Failed() bool { return o.Err != nil }

// BatchSummary tallies the whole run. Success + Failed always equals
// Total once processing finishes.
type BatchSummary struct {
	Success int
	Failed  int
	Total   int
}

// SuccessRate returns the success percentage, or 0 for an empty batch.
func (s BatchSummary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Success) / float64(s.Total) * 100
}

// String formats the summary for log and CLI output.
func (s BatchSummary) String() string {
	return fmt.Sprintf("success=%d failed=%d total=%d", s.Success, s.Failed, s.Total)
}
