package locate_test

import (
	"context"

	"revcheck.app/checker/internal/locate"
	"revcheck.app/checker/internal/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Locate", func() {
	ctx := context.Background()

	It("anchors on the unchanged text before the comment", func() {
		original := "The quick brown fox jumps over the lazy dog near the river. Johnny smiled."
		revised := "The quick brown fox jumps over the lazy dog near the river. Jimmy smiled."

		got := locate.Locate(ctx, model.Comment{AssociatedText: "Johnny"}, original, revised)
		Expect(got.Position).To(Equal(60))
		Expect(got.Strategy).To(Equal(locate.StrategyAnchorBefore))
		Expect(got.OriginalContext).To(Equal("The quick brown fox jumps over the lazy dog near the river."))
		Expect(got.RevisedContext).To(Equal("Jimmy smiled."))
	})

	It("matches a word sequence when the anchor is too short", func() {
		original := "I will recieve the package tomorrow. It should arrive early."
		revised := "I will receive the package tomorrow. It should arrive early."

		got := locate.Locate(ctx, model.Comment{AssociatedText: "recieve"}, original, revised)
		Expect(got.Position).To(Equal(7))
		Expect(got.Strategy).To(Equal(locate.StrategyWordSequence))
		Expect(got.OriginalContext).To(ContainSubstring("recieve"))
		Expect(got.RevisedContext).To(ContainSubstring("receive"))
	})

	It("falls back to a single significant word", func() {
		original := "Alpha beta gamma."
		revised := "Completely different text mentioning gamma. here"

		got := locate.Locate(ctx, model.Comment{AssociatedText: "beta"}, original, revised)
		Expect(got.Strategy).To(Equal(locate.StrategySignificantWord))
		Expect(got.RevisedContext).To(ContainSubstring("gamma."))
	})

	It("projects the position when nothing aligns", func() {
		got := locate.Locate(ctx, model.Comment{Position: 4}, "aaa bbb ccc", "zzz yyy xxx")
		Expect(got.Strategy).To(Equal(locate.StrategyProportional))
		Expect(got.RevisedContext).To(Equal("zzz yyy xxx"))
	})

	It("uses the stored position when the associated text is absent", func() {
		got := locate.Locate(ctx, model.Comment{AssociatedText: "missing", Position: 4}, "aaa bbb ccc", "aaa bbb ccc")
		Expect(got.Position).To(Equal(4))
	})

	It("clamps positions outside the document", func() {
		got := locate.Locate(ctx, model.Comment{Position: 999}, "short text", "other")
		Expect(got.Position).To(Equal(len("short text")))
	})

	It("degrades gracefully on empty input", func() {
		Expect(func() {
			got := locate.Locate(ctx, model.Comment{Position: 10}, "", "")
			Expect(got.RevisedContext).To(BeEmpty())
		}).NotTo(Panic())
	})
})

var _ = DescribeTable("TrimToSentences",
	func(in, want string) {
		Expect(locate.TrimToSentences(in)).To(Equal(want))
	},
	Entry("late sentence boundary", "First sentence. Second sentence. Third", "First sentence. Second sentence."),
	Entry("early boundary falls back to a word boundary",
		"Short. then a very long tail without any further stops at all here",
		"Short. then a very long tail without any further stops"),
	Entry("short text untouched", "just words", "just words"),
	Entry("exclamation boundary", "Wow, that went well! And then", "Wow, that went well!"),
)
