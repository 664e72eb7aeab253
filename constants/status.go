package constants

// DrawingStatus is the canonical lifecycle status for rows in drawings.
type DrawingStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    DrawingStatus = "pending"    // recorded, waiting for analysis
	StatusAnalyzing  DrawingStatus = "analyzing"  // pipeline run in progress
	StatusUnapproved DrawingStatus = "unapproved" // analysis done, awaiting human approval
	StatusApproved   DrawingStatus = "approved"   // human-confirmed
	StatusFailed     DrawingStatus = "failed"     // terminal pipeline failure
)

var allStatuses = []DrawingStatus{
	StatusPending,
	StatusAnalyzing,
	StatusUnapproved,
	StatusApproved,
	StatusFailed,
}

// transitions holds the documented forward edges of the status machine.
// Re-analysis (any state back to pending) is handled in CanTransition.
var transitions = map[DrawingStatus][]DrawingStatus{
	StatusPending:    {StatusAnalyzing, StatusUnapproved},
	StatusAnalyzing:  {StatusUnapproved, StatusFailed},
	StatusUnapproved: {StatusApproved},
	StatusApproved:   {StatusUnapproved},
	StatusFailed:     {},
}

// Valid reports whether s is one of the known status values.
func (s DrawingStatus) Valid() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether s ends a pipeline run.
func (s DrawingStatus) Terminal() bool {
	return s == StatusUnapproved || s == StatusApproved || s == StatusFailed
}

// CanTransition reports whether moving from s to next follows a documented
// edge. Every state may return to pending: that is the re-analysis trigger,
// which also clears extracted children before the pipeline reruns.
func (s DrawingStatus) CanTransition(next DrawingStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if next == StatusPending {
		return true
	}
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// StatusStrings returns all status values for use in schema enums.
func StatusStrings() []string {
	out := make([]string, len(allStatuses))
	for i, s := range allStatuses {
		out[i] = string(s)
	}
	return out
}
