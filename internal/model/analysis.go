package model

// AnalysisRecord is the outcome of one comment in one analysis run.
type AnalysisRecord struct {
	Comment              Comment          `json:"comment"`
	Intent               Intent           `json:"intent"`
	Validation           ValidationResult `json:"validation"`
	RequiresManualReview bool             `json:"requires_manual_review"`
	AIPowered            bool             `json:"ai_powered"`
}

type Summary struct {
	TotalComments        int                      `json:"total_comments"`
	CorrectlyApplied     int                      `json:"correctly_applied"`
	PartiallyApplied     int                      `json:"partially_applied"`
	NotApplied           int                      `json:"not_applied"`
	ManualReviewRequired int                      `json:"manual_review_required"`
	ByStatus             map[ValidationStatus]int `json:"by_status"`
	SuccessRate          float64                  `json:"success_rate"`
}
