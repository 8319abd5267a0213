package model

type ValidationStatus string

const (
	StatusCorrectlyApplied     ValidationStatus = "correctly_applied"
	StatusPartiallyApplied     ValidationStatus = "partially_applied"
	StatusNotApplied           ValidationStatus = "not_applied"
	StatusUnclear              ValidationStatus = "unclear"
	StatusInvalidComment       ValidationStatus = "invalid_comment"
	StatusManualReviewRequired ValidationStatus = "manual_review_required"
)

// AllStatuses lists every status in report order.
var AllStatuses = []ValidationStatus{
	StatusCorrectlyApplied,
	StatusPartiallyApplied,
	StatusNotApplied,
	StatusUnclear,
	StatusInvalidComment,
	StatusManualReviewRequired,
}

func (s ValidationStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// NeedsReview reports whether a human has to look at a result with this status.
func (s ValidationStatus) NeedsReview() bool {
	return s == StatusManualReviewRequired || s == StatusUnclear
}

const ChangeTypeLocalContext = "local_context_validation"

// ValidationDetails carries the evidence counts behind a verdict.
type ValidationDetails struct {
	OriginalCount        int      `json:"original_count"`
	RemainingCount       int      `json:"remaining_count"`
	NewCount             int      `json:"new_count"`
	AddedCount           int      `json:"added_count,omitempty"`
	InferredFrom         string   `json:"inferred_from,omitempty"`
	OriginalContractions int      `json:"original_contractions,omitempty"`
	RevisedContractions  int      `json:"revised_contractions,omitempty"`
	Contractions         []string `json:"contractions,omitempty"`
	ExpectedChange       string   `json:"expected_change,omitempty"`
}

type ValidationResult struct {
	Status     ValidationStatus   `json:"status"`
	Message    string             `json:"message"`
	Details    *ValidationDetails `json:"details,omitempty"`
	Confidence *float64           `json:"confidence,omitempty"`
	ChangeType string             `json:"change_type,omitempty"`
	Evidence   string             `json:"evidence,omitempty"`
}
