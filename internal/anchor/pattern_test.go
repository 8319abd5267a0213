package anchor_test

import (
	"revcheck.app/checker/internal/anchor"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FindMarkers", func() {
	It("finds every marker style in a fixed order", func() {
		text := "one {COMMENT: braces} two [comment: brackets]\nthree ## hashes ## four\nfive // line note"

		markers := anchor.FindMarkers(text)
		Expect(markers).To(HaveLen(4))
		Expect(markers[0].Text).To(Equal("brackets"))
		Expect(markers[1].Text).To(Equal("braces"))
		Expect(markers[2].Text).To(Equal("hashes"))
		Expect(markers[3].Text).To(Equal("line note"))
		Expect(text[markers[0].Start:markers[0].End]).To(Equal("[comment: brackets]"))
	})

	It("returns nothing for plain prose", func() {
		Expect(anchor.FindMarkers("Nothing to see here.")).To(BeEmpty())
	})
})

var _ = Describe("InferTarget", func() {
	infer := func(text string) string {
		markers := anchor.FindMarkers(text)
		Expect(markers).NotTo(BeEmpty())
		return anchor.InferTarget(text, markers[0])
	}

	It("prefers the source of an explicit change phrase", func() {
		Expect(infer("The cat sat on the mat [COMMENT: change cat to dog]")).To(Equal("cat"))
	})

	It("ignores a change phrase whose source is not nearby", func() {
		Expect(infer("The weather was rainy [COMMENT: change snow to hail]")).To(Equal("weather was rainy"))
	})

	It("takes the short word run right before the marker", func() {
		Expect(infer("It was rainy [COMMENT: make it sunny]")).To(Equal("It was rainy"))
	})

	It("falls back to quoted text before the marker", func() {
		Expect(infer(`He said "hello there". [COMMENT: too casual]`)).To(Equal("hello there"))
	})

	It("uses the last sentence before the marker", func() {
		Expect(infer("It was a dark night. The wind howled {COMMENT: more vivid}")).To(Equal("The wind howled"))
	})

	It("keeps only the final five words of a long sentence", func() {
		text := "one two three four five six seven eight nine ten eleven twelve {COMMENT: shorten}"
		Expect(infer(text)).To(Equal("eight nine ten eleven twelve"))
	})

	It("falls back to the last three words", func() {
		Expect(infer("One two three four. {COMMENT: odd}")).To(Equal("two three four."))
	})

	It("reports unknown text when nothing precedes the marker", func() {
		Expect(infer("{COMMENT: nothing before}")).To(Equal("unknown text"))
	})
})
