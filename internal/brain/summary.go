package brain

import "revcheck.app/checker/internal/model"

// Summarize totals a run. ManualReviewRequired counts records flagged for
// review, whatever their status.
func Summarize(records []model.AnalysisRecord) model.Summary {
	s := model.Summary{
		TotalComments: len(records),
		ByStatus:      make(map[model.ValidationStatus]int, len(model.AllStatuses)),
	}
	for _, status := range model.AllStatuses {
		s.ByStatus[status] = 0
	}

	for _, r := range records {
		s.ByStatus[r.Validation.Status]++
		switch r.Validation.Status {
		case model.StatusCorrectlyApplied:
			s.CorrectlyApplied++
		case model.StatusPartiallyApplied:
			s.PartiallyApplied++
		case model.StatusNotApplied:
			s.NotApplied++
		}
		if r.RequiresManualReview {
			s.ManualReviewRequired++
		}
	}

	if s.TotalComments > 0 {
		s.SuccessRate = float64(s.CorrectlyApplied) / float64(s.TotalComments) * 100
	}
	return s
}
