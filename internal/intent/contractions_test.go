package intent_test

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"revcheck.app/checker/internal/intent"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FindContractions", func() {
	It("finds apostrophe-joined words in order of appearance", func() {
		Expect(intent.FindContractions("Storm's cut the signal.")).To(Equal([]string{"Storm's"}))
		Expect(intent.FindContractions("I can't and won't; I can't.")).To(Equal([]string{"can't", "won't"}))
	})

	It("accepts curly apostrophes", func() {
		Expect(intent.FindContractions("It’s late")).To(Equal([]string{"It’s"}))
	})

	It("returns nothing for text without contractions, repeatedly", func() {
		text := "It is late and we cannot wait. rock 'n' roll"
		Expect(intent.FindContractions(text)).To(BeEmpty())
		Expect(intent.FindContractions(text)).To(BeEmpty())
	})

	It("leaves no contractions behind once every one is expanded", func() {
		text := "I can't say it's over, they're gone."
		for _, c := range intent.FindContractions(text) {
			text = strings.ReplaceAll(text, c, intent.ExpandContraction(c))
		}
		Expect(intent.FindContractions(text)).To(BeEmpty())
	})
})

var _ = DescribeTable("ExpandContraction",
	func(in, want string) {
		Expect(intent.ExpandContraction(in)).To(Equal(want))
	},
	Entry("table entry", "can't", "cannot"),
	Entry("capitalised entry", "Can't", "Cannot"),
	Entry("first person", "I'm", "I am"),
	Entry("storm's", "storm's", "storm has"),
	Entry("capitalised storm's", "Storm's", "Storm has"),
	Entry("curly apostrophe", "It’s", "It is"),
	Entry("unknown possessive-like form", "Jimmy's", "Jimmy has"),
	Entry("unknown form kept", "o'clock", "o'clock"),
)

var _ = Describe("ExpandContraction over the whole table", func() {
	It("is deterministic and case preserving on the first letter", func() {
		for _, c := range intent.KnownContractions() {
			Expect(intent.ExpandContraction(c)).To(Equal(intent.ExpandContraction(c)))

			r, size := utf8.DecodeRuneInString(c)
			capitalised := string(unicode.ToUpper(r)) + c[size:]
			first, _ := utf8.DecodeRuneInString(intent.ExpandContraction(capitalised))
			Expect(unicode.IsUpper(first)).To(BeTrue(), "expanding %q", capitalised)
		}
	})
})
