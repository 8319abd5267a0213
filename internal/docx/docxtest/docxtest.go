// Package docxtest builds small .docx containers for tests.
//
// Paragraph strings may carry comment anchors: "<<1>>" opens the range of
// comment 1 and "<</1>>" closes it, followed by a comment reference run.
package docxtest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type Comment struct {
	ID     string
	Author string
	Date   string
	Text   string
}

var anchorMarker = regexp.MustCompile(`<<(/?)([^<>]+)>>`)

// Build returns a container with one body paragraph per entry and, when
// comments are given, a comments part.
func Build(paragraphs []string, comments ...Comment) []byte {
	var commentsXML string
	if len(comments) > 0 {
		commentsXML = CommentsXML(comments...)
	}
	return BuildRaw(DocumentXML(paragraphs...), commentsXML)
}

// BuildRaw zips the given parts verbatim. An empty commentsXML omits the part.
func BuildRaw(documentXML, commentsXML string) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	write := func(name, body string) {
		w, err := zw.Create(name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			panic(err)
		}
	}

	write("[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`)
	if documentXML != "" {
		write("word/document.xml", documentXML)
	}
	if commentsXML != "" {
		write("word/comments.xml", commentsXML)
	}

	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// DocumentXML renders the main document part.
func DocumentXML(paragraphs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	fmt.Fprintf(&b, `<w:document xmlns:w="%s"><w:body>`, wordNS)
	for _, p := range paragraphs {
		b.WriteString("<w:p>")
		last := 0
		for _, m := range anchorMarker.FindAllStringSubmatchIndex(p, -1) {
			writeRun(&b, p[last:m[0]])
			closing, id := p[m[2]:m[3]] == "/", p[m[4]:m[5]]
			if closing {
				fmt.Fprintf(&b, `<w:commentRangeEnd w:id="%s"/>`, escape(id))
				fmt.Fprintf(&b, `<w:r><w:commentReference w:id="%s"/></w:r>`, escape(id))
			} else {
				fmt.Fprintf(&b, `<w:commentRangeStart w:id="%s"/>`, escape(id))
			}
			last = m[1]
		}
		writeRun(&b, p[last:])
		b.WriteString("</w:p>")
	}
	b.WriteString("</w:body></w:document>")
	return b.String()
}

// CommentsXML renders the comments part.
func CommentsXML(comments ...Comment) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	fmt.Fprintf(&b, `<w:comments xmlns:w="%s">`, wordNS)
	for _, c := range comments {
		fmt.Fprintf(&b, `<w:comment w:id="%s"`, escape(c.ID))
		if c.Author != "" {
			fmt.Fprintf(&b, ` w:author="%s"`, escape(c.Author))
		}
		if c.Date != "" {
			fmt.Fprintf(&b, ` w:date="%s"`, escape(c.Date))
		}
		b.WriteString("><w:p>")
		writeRun(&b, c.Text)
		b.WriteString("</w:p></w:comment>")
	}
	b.WriteString("</w:comments>")
	return b.String()
}

func writeRun(b *strings.Builder, text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(b, `<w:r><w:t xml:space="preserve">%s</w:t></w:r>`, escape(text))
}

func escape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		panic(err)
	}
	return buf.String()
}
