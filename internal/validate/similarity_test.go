package validate_test

import (
	"revcheck.app/checker/internal/validate"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ClosestMatch", func() {
	It("finds a misspelling of the word", func() {
		got, ok := validate.ClosestMatch("receive", []string{"zebra", "recieve"})
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal("recieve"))
	})

	It("ignores candidates below the threshold", func() {
		_, ok := validate.ClosestMatch("xyz", []string{"abc", "def"})
		Expect(ok).To(BeFalse())
	})

	It("breaks ties by sorted order regardless of input order", func() {
		a, _ := validate.ClosestMatch("dart", []string{"cart", "bart"})
		b, _ := validate.ClosestMatch("dart", []string{"bart", "cart"})
		Expect(a).To(Equal("bart"))
		Expect(b).To(Equal("bart"))
	})

	It("scores identical words as 1", func() {
		Expect(validate.Similarity("same", "same")).To(BeNumerically("==", 1.0))
		Expect(validate.Similarity("johnny", "jimmy")).To(BeNumerically("<", validate.MinSimilarity))
	})
})

var _ = Describe("RemovedWords", func() {
	It("lists the words only the original has, sorted and lower-cased", func() {
		Expect(validate.RemovedWords("The Rainy day was rainy, cold", "The sunny day was sunny")).
			To(Equal([]string{"cold", "rainy"}))
	})
})
