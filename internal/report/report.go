// Package report assembles the reviewer-facing result of an analysis run:
// the summary, every record, a unified diff of the two documents and the
// revised lines that still carry text a global change should have removed.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"revcheck.app/checker/internal/brain"
	"revcheck.app/checker/internal/model"
)

const diffContext = 3

// MissedInstance is a revised line that still contains the from_text of a
// partially applied global change. Line is 1-based.
type MissedInstance struct {
	Line    int    `json:"line"`
	Text    string `json:"text"`
	Comment string `json:"comment"`
	Content string `json:"content"`
}

type Report struct {
	SessionID       string                 `json:"session_id"`
	OriginalFile    string                 `json:"original_file"`
	RevisedFile     string                 `json:"revised_file"`
	Summary         model.Summary          `json:"summary"`
	Records         []model.AnalysisRecord `json:"records"`
	Diff            string                 `json:"diff"`
	MissedInstances []MissedInstance       `json:"missed_instances"`
	AnalyzedAt      *time.Time             `json:"analyzed_at,omitempty"`
}

// Build produces the report for an analyzed session.
func Build(s *model.Session) (*Report, error) {
	diff, err := Diff(s.Original.FullText, s.Revised.FullText)
	if err != nil {
		return nil, err
	}

	records := s.Records
	if records == nil {
		records = []model.AnalysisRecord{}
	}

	return &Report{
		SessionID:       s.ID,
		OriginalFile:    s.OriginalFile,
		RevisedFile:     s.RevisedFile,
		Summary:         brain.Summarize(records),
		Records:         records,
		Diff:            diff,
		MissedInstances: MissedInstances(records, s.Revised.FullText),
		AnalyzedAt:      s.AnalyzedAt,
	}, nil
}

// Diff returns a unified line diff of the two texts, or "" when they are equal.
func Diff(original, revised string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(revised),
		FromFile: "Original Document",
		ToFile:   "Revised Document",
		Context:  diffContext,
	})
	if err != nil {
		return "", fmt.Errorf("building diff: %w", err)
	}
	return diff, nil
}

// MissedInstances lists revised lines that still contain, case-insensitively,
// the from_text of each partially applied global record.
func MissedInstances(records []model.AnalysisRecord, revised string) []MissedInstance {
	missed := []MissedInstance{}
	lines := strings.Split(revised, "\n")

	for _, r := range records {
		if r.Validation.Status != model.StatusPartiallyApplied || r.Intent.Scope != model.IntentScopeGlobal {
			continue
		}
		from := r.Intent.From()
		if from == "" {
			continue
		}
		needle := strings.ToLower(from)
		for i, line := range lines {
			if strings.Contains(strings.ToLower(line), needle) {
				missed = append(missed, MissedInstance{
					Line:    i + 1,
					Text:    from,
					Comment: r.Comment.Text,
					Content: line,
				})
			}
		}
	}
	return missed
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// YAML renders the report as block-style YAML with the same keys as JSON.
func (r *Report) YAML() ([]byte, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("convert report: %w", err)
	}
	blockStyle(&node)

	return yaml.Marshal(&node)
}

// blockStyle clears the flow and quoting styles that JSON input leaves on
// every node so the encoder picks its defaults.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
