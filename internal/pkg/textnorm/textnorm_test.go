package textnorm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/textnorm"
)

var _ = Describe("Normalize", func() {
	DescribeTable("rewrites the fixed table",
		func(in, want string) {
			Expect(textnorm.Normalize(in)).To(Equal(want))
		},
		Entry("en and em dashes", "a–b—c", "a-b-c"),
		Entry("curly double quotes", "“hola”", `"hola"`),
		Entry("curly single quotes", "‘x’", "'x'"),
		Entry("ellipsis", "espere…", "espere..."),
		Entry("lower-case accents", "áéíóúñ", "aeioun"),
		Entry("upper-case accents", "ÁÉÍÓÚÑ", "AEIOUN"),
		Entry("mixed sentence", "Señor Núñez – Dirección", "Senor Nunez - Direccion"),
	)

	It("keeps runes outside the table", func() {
		Expect(textnorm.Normalize("ü à ç N° 250")).To(Equal("ü à ç N° 250"))
	})

	It("returns empty input unchanged", func() {
		Expect(textnorm.Normalize("")).To(BeEmpty())
	})
})
