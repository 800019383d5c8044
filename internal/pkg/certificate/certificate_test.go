package certificate_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/models"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/certificate"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/emission"
)

func texts(doc certificate.Document) []string {
	var out []string
	for _, in := range doc.Instructions {
		if in.Kind == certificate.KindCell || in.Kind == certificate.KindMultiCell {
			out = append(out, in.Text)
		}
	}
	return out
}

func images(doc certificate.Document) []certificate.Instruction {
	var out []certificate.Instruction
	for _, in := range doc.Instructions {
		if in.Kind == certificate.KindImage {
			out = append(out, in)
		}
	}
	return out
}

var _ = Describe("Assemble", func() {
	var (
		req models.CertificateRequest
		em  emission.Emission
	)

	BeforeEach(func() {
		req = models.CertificateRequest{
			LocationID:     "40012",
			InspectionDate: time.Date(2022, time.July, 12, 0, 0, 0, 0, time.UTC),
			EngineerCode:   "ML",
			CustomerName:   "Panadería Núñez",
			Address:        "Av. Perú 123",
		}
		em = emission.Compute(req.InspectionDate, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "Lima")
	})

	It("lays out the fixed sequence", func() {
		doc := certificate.Assemble(req, "Se inspeccionaron algo.", em, certificate.AddendumFrom2025)
		t := texts(doc)

		Expect(t[0]).To(Equal("Lima, 19 de julio de 2022"))
		Expect(t[1]).To(Equal("Señor(a):"))
		Expect(t[2]).To(Equal("Panaderia Nunez"))
		Expect(t[3]).To(Equal("Presente:"))
		Expect(t[4]).To(Equal("Referencia: Certificado de Operatividad Instalación GLP"))
		Expect(t[5]).To(ContainSubstring("con fecha 12/07/2022"))
		Expect(t[5]).To(ContainSubstring("en la dirección Av. Peru 123,"))
		Expect(t[6]).To(Equal("Se inspeccionaron algo."))
		Expect(t[10]).To(Equal("El presente Certificado de Operatividad tiene un periodo de vigencia de un año."))
		Expect(t[11]).To(HavePrefix("Sin otro particular"))
		Expect(t[len(t)-3:]).To(Equal([]string{
			"Jr. Vittore Scarpazza Carpaccio N° 250 Piso 7, San Borja",
			"Telf: (+511) 613-3330",
			"www.solgaspro.com.pe",
		}))
	})

	It("draws the customer name in bold", func() {
		doc := certificate.Assemble(req, "", em, certificate.AddendumFrom2025)
		var style string
		for _, in := range doc.Instructions {
			if in.Kind == certificate.KindFont {
				style = in.Style
			}
			if in.Kind == certificate.KindCell && in.Text == "Panaderia Nunez" {
				break
			}
		}
		Expect(style).To(Equal("B"))
	})

	It("renders the footer in small gray text", func() {
		doc := certificate.Assemble(req, "", em, certificate.AddendumFrom2025)
		n := len(doc.Instructions)
		var sawGray, sawSmall bool
		for _, in := range doc.Instructions[n-9:] {
			if in.Kind == certificate.KindTextColor && in.Color == [3]int{150, 150, 150} {
				sawGray = true
			}
			if in.Kind == certificate.KindFont && in.Size == 8 {
				sawSmall = true
			}
		}
		Expect(sawGray).To(BeTrue())
		Expect(sawSmall).To(BeTrue())
	})

	It("places the logo and the engineer's signature", func() {
		doc := certificate.Assemble(req, "", em, certificate.AddendumFrom2025)
		imgs := images(doc)
		Expect(imgs).To(HaveLen(2))
		Expect(imgs[0].Path).To(Equal("logo_solgaspro.png"))
		Expect(imgs[0].Flow).To(BeFalse())
		Expect(imgs[1].Path).To(Equal("ML-FIRMA.png"))
		Expect(imgs[1].X).To(Equal(75.0))
		Expect(imgs[1].Width).To(Equal(60.0))
		Expect(imgs[1].Flow).To(BeTrue())
	})

	It("falls back to the default signature for unknown engineers", func() {
		req.EngineerCode = "ZZ"
		imgs := images(certificate.Assemble(req, "", em, certificate.AddendumFrom2025))
		Expect(imgs[1].Path).To(Equal("CT-FIRMA.png"))
	})

	It("derives the filename from the location, customer and inspection year", func() {
		doc := certificate.Assemble(req, "", em, certificate.AddendumFrom2025)
		Expect(doc.Filename).To(Equal("CO_40012_Panaderia Nunez_2022.pdf"))
	})

	Describe("legal addendum", func() {
		hasAddendum := func(doc certificate.Document) bool {
			for _, t := range texts(doc) {
				if strings.HasPrefix(t, "(1) En aras") {
					return true
				}
			}
			return false
		}

		emissionIn := func(year int) emission.Emission {
			return emission.Emission{Year: year, Display: "Lima"}
		}

		DescribeTable("from 2025 onward",
			func(year int, want bool) {
				Expect(hasAddendum(certificate.Assemble(req, "", emissionIn(year), certificate.AddendumFrom2025))).To(Equal(want))
			},
			Entry("2024", 2024, false),
			Entry("2025", 2025, true),
			Entry("2026", 2026, true),
		)

		DescribeTable("only in 2025",
			func(year int, want bool) {
				Expect(hasAddendum(certificate.Assemble(req, "", emissionIn(year), certificate.AddendumOnly2025))).To(Equal(want))
			},
			Entry("2024", 2024, false),
			Entry("2025", 2025, true),
			Entry("2026", 2026, false),
		)
	})
})

var _ = Describe("Filename", func() {
	It("removes unsafe characters and nothing else", func() {
		Expect(certificate.Filename("7", `A/B: "C" & D`, 2024)).To(Equal("CO_7_AB C & D_2024.pdf"))
	})

	It("removes every reserved character", func() {
		Expect(certificate.Filename("1", `a/b\c:d*e?f"g<h>i|j`, 2020)).To(Equal("CO_1_abcdefghij_2020.pdf"))
	})
})

var _ = Describe("ParseEngineer", func() {
	DescribeTable("known codes",
		func(code string, want certificate.Engineer) {
			e, ok := certificate.ParseEngineer(code)
			Expect(ok).To(BeTrue())
			Expect(e).To(Equal(want))
		},
		Entry("CC", "CC", certificate.EngineerCC),
		Entry("lower-case ml", "ml", certificate.EngineerML),
		Entry("EP with spaces", " EP ", certificate.EngineerEP),
		Entry("AR", "AR", certificate.EngineerAR),
	)

	It("reports unknown codes and returns the default", func() {
		e, ok := certificate.ParseEngineer("XX")
		Expect(ok).To(BeFalse())
		Expect(e).To(Equal(certificate.DefaultEngineer))
		Expect(e.Signature()).To(Equal(certificate.Signature{File: "CT-FIRMA.png", X: 85, Width: 40}))
	})
})

var _ = Describe("ParseAddendumRule", func() {
	DescribeTable("reads the rule names",
		func(name string, want certificate.AddendumRule) {
			rule, err := certificate.ParseAddendumRule(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(rule).To(Equal(want))
			Expect(rule.String()).To(Equal(name))
		},
		Entry("from 2025", "from-2025", certificate.AddendumFrom2025),
		Entry("only 2025", "only-2025", certificate.AddendumOnly2025),
	)

	It("rejects unknown rules", func() {
		_, err := certificate.ParseAddendumRule("always")
		Expect(err).To(HaveOccurred())
	})
})
