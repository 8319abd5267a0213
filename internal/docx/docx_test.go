package docx_test

import (
	"os"
	"path/filepath"

	"revcheck.app/checker/internal/docx"
	"revcheck.app/checker/internal/docx/docxtest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Read", func() {
	It("extracts paragraphs, runs and full text", func() {
		data := docxtest.Build([]string{
			"The <<0>>storm<</0>> rolled in.",
			"Second paragraph.",
		}, docxtest.Comment{ID: "0", Author: "Ada", Text: "Change storm to squall"})

		doc, err := docx.Read(data)
		Expect(err).NotTo(HaveOccurred())

		Expect(doc.Paragraphs).To(HaveLen(2))
		Expect(doc.Paragraphs[0].Index).To(Equal(0))
		Expect(doc.Paragraphs[0].Text).To(Equal("The storm rolled in."))
		Expect(doc.Paragraphs[0].Runs).To(HaveLen(4))
		Expect(doc.Paragraphs[1].Index).To(Equal(1))
		Expect(doc.FullText()).To(Equal("The storm rolled in.\nSecond paragraph."))
	})

	It("keeps raw parts alongside the parsed tree", func() {
		data := docxtest.Build([]string{"a <<3>>b<</3>>"}, docxtest.Comment{ID: "3", Text: "x"})

		doc, err := docx.Read(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Body.Local).To(Equal("document"))
		Expect(string(doc.DocumentXML)).To(ContainSubstring("commentRangeStart"))
		Expect(doc.HasCommentsPart()).To(BeTrue())
		Expect(doc.CommentReferenceIDs()).To(Equal([]string{"3"}))
	})

	It("rejects data that is not a zip container", func() {
		_, err := docx.Read([]byte("plain text"))
		Expect(err).To(MatchError(docx.ErrNotDocx))
	})

	It("rejects containers without a main document part", func() {
		_, err := docx.Read(docxtest.BuildRaw("", ""))
		Expect(err).To(MatchError(docx.ErrMissingDocument))
	})

	It("rejects a malformed main document part", func() {
		_, err := docx.Read(docxtest.BuildRaw("<w:document><w:body>", ""))
		Expect(err).To(HaveOccurred())
	})

	It("maps tabs and breaks inside runs", func() {
		xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			`<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p>` +
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
			`</w:body></w:document>`

		doc, err := docx.Read(docxtest.BuildRaw(xml, ""))
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Paragraphs).To(HaveLen(1))
		Expect(doc.Paragraphs[0].Text).To(Equal("a\tb\nc"))
	})
})

var _ = Describe("Open", func() {
	It("reads a container from disk", func() {
		path := filepath.Join(GinkgoT().TempDir(), "draft.docx")
		Expect(os.WriteFile(path, docxtest.Build([]string{"hello"}), 0o600)).To(Succeed())

		doc, err := docx.Open(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.FullText()).To(Equal("hello"))
		Expect(doc.HasCommentsPart()).To(BeFalse())
	})

	It("fails for a missing file", func() {
		_, err := docx.Open(filepath.Join(GinkgoT().TempDir(), "missing.docx"))
		Expect(err).To(MatchError(docx.ErrNotDocx))
	})
})

var _ = Describe("Comments", func() {
	It("returns entries with defaults for missing attributes", func() {
		data := docxtest.Build([]string{"text"},
			docxtest.Comment{ID: "1", Author: "Ada", Date: "2024-01-02T00:00:00Z", Text: "first"},
			docxtest.Comment{ID: "2", Text: "second"},
		)
		doc, err := docx.Read(data)
		Expect(err).NotTo(HaveOccurred())

		entries, err := doc.Comments()
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(Equal([]docx.CommentEntry{
			{ID: "1", Author: "Ada", Date: "2024-01-02T00:00:00Z", Text: "first"},
			{ID: "2", Author: "Unknown", Text: "second"},
		}))
	})

	It("returns nothing when there is no comments part", func() {
		doc, err := docx.Read(docxtest.Build([]string{"text"}))
		Expect(err).NotTo(HaveOccurred())

		entries, err := doc.Comments()
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("reports a malformed comments part", func() {
		doc, err := docx.Read(docxtest.BuildRaw(docxtest.DocumentXML("text"), "<w:comments>"))
		Expect(err).NotTo(HaveOccurred())

		_, err = doc.Comments()
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ParseTree", func() {
	It("fails on empty markup", func() {
		_, err := docx.ParseTree([]byte("   "))
		Expect(err).To(MatchError(docx.ErrEmptyMarkup))
	})

	It("resolves attributes by local name", func() {
		root, err := docx.ParseTree([]byte(`<a xmlns:w="urn:w"><w:b w:id="7">x</w:b></a>`))
		Expect(err).NotTo(HaveOccurred())
		Expect(root.Child("b").AttrValue("id")).To(Equal("7"))
		Expect(root.Child("b").Text).To(Equal("x"))
		Expect(root.Child("missing")).To(BeNil())
	})
})
