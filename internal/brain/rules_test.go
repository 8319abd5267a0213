package brain_test

import (
	"context"

	"revcheck.app/checker/internal/brain"
	"revcheck.app/checker/internal/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RuleOracle", func() {
	var (
		ctx    context.Context
		oracle *brain.RuleOracle
	)

	BeforeEach(func() {
		ctx = context.Background()
		oracle = brain.NewRuleOracle()
	})

	It("uses the local context path for a reviewer-scoped local comment", func() {
		c := model.Comment{ID: "1", Text: "Spelling mistake", AssociatedText: "recieve", UserScope: model.UserScopeLocal}

		rec, err := oracle.Analyze(ctx, c,
			"Please recieve the parcel. It is big.",
			"Please receive the parcel. It is big.")

		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Validation.Status).To(Equal(model.StatusCorrectlyApplied))
		Expect(rec.Validation.ChangeType).To(Equal(model.ChangeTypeLocalContext))
		Expect(rec.RequiresManualReview).To(BeFalse())
		Expect(rec.AIPowered).To(BeFalse())
	})

	It("is unclear for a bare name whose counts did not move", func() {
		c := model.Comment{ID: "1", Text: "Jimmy", AssociatedText: "Johnny", UserScope: model.UserScopeAuto}
		text := "Johnny met Jimmy at the gate."

		rec, err := oracle.Analyze(ctx, c, text, text)

		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Intent.FromText).To(BeNil())
		Expect(rec.Intent.To()).To(Equal("Jimmy"))
		Expect(rec.Validation.Status).To(Equal(model.StatusUnclear))
		Expect(rec.RequiresManualReview).To(BeTrue())
	})

	It("lets a global reviewer scope override the parsed scope", func() {
		c := model.Comment{ID: "1", Text: "should be sunny", AssociatedText: "rainy", UserScope: model.UserScopeGlobal}

		rec, err := oracle.Analyze(ctx, c, "rainy Monday, rainy Tuesday", "sunny Monday, rainy Tuesday")

		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Intent.Type).To(Equal(model.IntentReplaceGlobal))
		Expect(rec.Intent.Scope).To(Equal(model.IntentScopeGlobal))
		Expect(rec.Validation.Status).To(Equal(model.StatusPartiallyApplied))
		Expect(rec.Validation.Message).To(Equal("1 of 2 instances were changed"))
	})

	It("ignores an unresolved range marker", func() {
		c := model.Comment{ID: "4", Text: "Jimmy", AssociatedText: "[RANGE NOT FOUND FOR ID 4]", UserScope: model.UserScopeLocal}

		rec, err := oracle.Analyze(ctx, c, "Johnny ran.", "Jimmy ran.")

		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Validation.ChangeType).To(BeEmpty())
		Expect(rec.Validation.Status).To(Equal(model.StatusCorrectlyApplied))
	})
})
