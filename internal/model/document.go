package model

import "strings"

type Run struct {
	Text string `json:"text"`
}

type Paragraph struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Runs  []Run  `json:"runs"`
}

// DocumentSnapshot is the extracted content of one document version.
// All offsets in the pipeline are relative to FullText.
type DocumentSnapshot struct {
	Paragraphs []Paragraph `json:"paragraphs"`
	Comments   []Comment   `json:"comments"`
	FullText   string      `json:"full_text"`
}

// JoinParagraphs builds FullText: paragraph texts separated by a single newline.
func JoinParagraphs(paragraphs []Paragraph) string {
	texts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n")
}
