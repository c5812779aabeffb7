package domain

// StatusRecord maps problem ids to their recorded outcome
type StatusRecord map[string]ProblemStatus

// BuildStatusRecord reshapes the external result array into a problemId keyed
// map. Later entries overwrite earlier ones; empty or unknown results become unanswered.
func BuildStatusRecord(records []ResultRecord) StatusRecord {
	out := make(StatusRecord, len(records))
	for _, rec := range records {
		result := rec.Result
		if !result.Valid() {
			result = StatusUnanswered
		}
		out[rec.ProblemID] = result
	}
	return out
}

// Status returns the outcome for problemID, unanswered when absent
func (r StatusRecord) Status(problemID string) ProblemStatus {
	if s, ok := r[problemID]; ok {
		return s
	}
	return StatusUnanswered
}
