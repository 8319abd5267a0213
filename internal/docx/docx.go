// Package docx reads the parts of a .docx container needed for comment
// review: body paragraphs, the raw document markup tree and the comments part.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"revcheck.app/checker/internal/model"
)

const (
	DocumentPart = "word/document.xml"
	CommentsPart = "word/comments.xml"

	maxPartSize = 64 << 20
)

var (
	ErrNotDocx         = errors.New("not a docx container")
	ErrMissingDocument = errors.New("docx has no main document part")

	commentReferencePattern = regexp.MustCompile(`<w:commentReference[^>]*w:id="(\d+)"`)
)

// Document gives both parsed and raw access to one container.
type Document struct {
	Paragraphs  []model.Paragraph
	Body        *Node
	DocumentXML []byte
	CommentsXML []byte
}

// Open reads a container from disk.
func Open(path string) (*Document, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}
	defer r.Close()
	return fromZip(&r.Reader)
}

// Read parses a container held in memory.
func Read(data []byte) (*Document, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}
	return fromZip(r)
}

func fromZip(r *zip.Reader) (*Document, error) {
	parts := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		parts[f.Name] = f
	}

	docFile, ok := parts[DocumentPart]
	if !ok {
		return nil, ErrMissingDocument
	}
	documentXML, err := readPart(docFile)
	if err != nil {
		return nil, err
	}

	body, err := ParseTree(documentXML)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", DocumentPart, err)
	}

	doc := &Document{
		Body:        body,
		DocumentXML: documentXML,
		Paragraphs:  paragraphs(body),
	}

	if f, ok := parts[CommentsPart]; ok {
		// An unreadable comments part is not fatal; extraction falls back to text patterns.
		if raw, err := readPart(f); err == nil {
			doc.CommentsXML = raw
		}
	}

	return doc, nil
}

func readPart(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxPartSize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name, err)
	}
	return data, nil
}

// FullText joins the paragraph texts with single newlines.
func (d *Document) FullText() string {
	return model.JoinParagraphs(d.Paragraphs)
}

// HasCommentsPart reports whether the container carried a comments part.
func (d *Document) HasCommentsPart() bool {
	return len(d.CommentsXML) > 0
}

// CommentReferenceIDs lists the ids of comment references in the raw body
// markup, in document order.
func (d *Document) CommentReferenceIDs() []string {
	matches := commentReferencePattern.FindAllSubmatch(d.DocumentXML, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, string(m[1]))
	}
	return ids
}

// paragraphs returns the top-level body paragraphs. Runs nested in
// hyperlinks are included so paragraph text matches what a reader sees.
func paragraphs(root *Node) []model.Paragraph {
	body := root.Child("body")
	if body == nil {
		return nil
	}

	var out []model.Paragraph
	for _, p := range body.Children {
		if p.Local != "p" {
			continue
		}
		para := model.Paragraph{Index: len(out)}
		var text strings.Builder
		for _, r := range runNodes(p) {
			rt := runText(r)
			para.Runs = append(para.Runs, model.Run{Text: rt})
			text.WriteString(rt)
		}
		para.Text = text.String()
		out = append(out, para)
	}
	return out
}

func runNodes(p *Node) []*Node {
	var runs []*Node
	for _, c := range p.Children {
		switch c.Local {
		case "r":
			runs = append(runs, c)
		case "hyperlink":
			for _, hc := range c.Children {
				if hc.Local == "r" {
					runs = append(runs, hc)
				}
			}
		}
	}
	return runs
}

func runText(r *Node) string {
	var b strings.Builder
	for _, c := range r.Children {
		switch c.Local {
		case "t":
			b.WriteString(c.Text)
		case "tab":
			b.WriteByte('\t')
		case "br", "cr":
			b.WriteByte('\n')
		}
	}
	return b.String()
}
