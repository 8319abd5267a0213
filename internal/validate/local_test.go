package validate_test

import (
	"context"

	"revcheck.app/checker/internal/model"
	"revcheck.app/checker/internal/validate"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local", func() {
	ctx := context.Background()

	It("accepts a spelling fix found in the revised context", func() {
		c := model.Comment{ID: "1", Text: "Spelling mistake", AssociatedText: "recieve", UserScope: model.UserScopeLocal}

		r := validate.Local(ctx, c, "I will recieve the parcel tomorrow.", "I will receive the parcel tomorrow.")

		Expect(r.Status).To(Equal(model.StatusCorrectlyApplied))
		Expect(r.ChangeType).To(Equal(model.ChangeTypeLocalContext))
		Expect(r.Message).To(Equal(`Successfully changed "recieve" to "receive" in the local context`))
		Expect(r.Details.ExpectedChange).To(Equal("receive"))
		Expect(validate.RequiresReview(r)).To(BeFalse())
	})

	It("reports a missing expected fix", func() {
		c := model.Comment{ID: "1", Text: "spelling", AssociatedText: "recieve"}
		text := "I will recieve the parcel tomorrow."

		r := validate.Local(ctx, c, text, text)

		Expect(r.Status).To(Equal(model.StatusNotApplied))
		Expect(r.Message).To(Equal(`Expected change from "recieve" to "receive" was not found in revised context`))
	})

	It("accepts anchored text that disappeared when no replacement is implied", func() {
		c := model.Comment{ID: "1", Text: "remove this word", AssociatedText: "extremely"}

		r := validate.Local(ctx, c, "It was extremely cold outside.", "It was cold outside.")

		Expect(r.Status).To(Equal(model.StatusCorrectlyApplied))
		Expect(r.Message).To(Equal(`Associated text "extremely" was modified/removed from the context as requested`))
	})

	It("is not applied when anchored text is still there", func() {
		c := model.Comment{ID: "1", Text: "remove this word", AssociatedText: "extremely"}
		text := "It was extremely cold outside."

		r := validate.Local(ctx, c, text, text)

		Expect(r.Status).To(Equal(model.StatusNotApplied))
	})

	It("needs review when the anchored text is not in the original", func() {
		c := model.Comment{ID: "1", Text: "fix", AssociatedText: "[RANGE NOT FOUND FOR ID 1]"}

		r := validate.Local(ctx, c, "Some text.", "Some text.")

		Expect(r.Status).To(Equal(model.StatusManualReviewRequired))
		Expect(r.Message).To(Equal("Could not locate associated text in context for validation"))
		Expect(validate.RequiresReview(r)).To(BeTrue())
	})
})

var _ = DescribeTable("ExpectedChange",
	func(comment, target, want string) {
		Expect(validate.ExpectedChange(comment, target)).To(Equal(want))
	},
	Entry("spelling dictionary", "Spelling mistake", "Teh", "the"),
	Entry("unknown misspelling", "spell check", "foo", ""),
	Entry("weather", "change it to sunny", "rainy", "sunny"),
	Entry("name", "use Jimmy here", "Johnny", "Jimmy"),
	Entry("needs a replacement verb", "sunny", "rainy", ""),
	Entry("nothing implied", "change this", "good", ""),
)
