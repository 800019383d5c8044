package tanks_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/models"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/tanks"
)

func tank(tankType, capacity, serial string) models.TankRecord {
	return models.NewTankRecord(tankType, capacity, serial)
}

const condition = "Se comprobó que los tanques no cuentan con abolladuras, hendiduras o áreas en estado avanzado de abrasión, erosión o corrosión. Asimismo, se sometió a inspección los accesorios del tanque comprobando su correcto funcionamiento y hermeticidad."

var _ = Describe("ComposeSummary", func() {
	It("returns the fallback sentence verbatim for no tanks", func() {
		Expect(tanks.ComposeSummary(nil)).To(Equal("No se registraron tanques asociados en la base de datos para esta ubicación."))
	})

	It("returns the fallback sentence when every tank is incomplete", func() {
		Expect(tanks.ComposeSummary([]models.TankRecord{
			tank("", "500", "S1"),
			tank("estacionario", "nan", "S2"),
			tank("estacionario", "500", "  "),
		})).To(Equal(tanks.NoTanksText))
	})

	It("uses singular forms for a single tank", func() {
		Expect(tanks.ComposeSummary([]models.TankRecord{tank("estacionario", "500", "A1")})).To(Equal(
			"Se inspeccionaron 1 tanque estacionario de 500 galones de GLP con número de serie A1. " + condition,
		))
	})

	It("uses plural forms and joins serials for a group", func() {
		summary := tanks.ComposeSummary([]models.TankRecord{
			tank("Estacionario", "1000", "A"),
			tank("ESTACIONARIO", "1000", "B"),
			tank("estacionario", "1000", "C"),
		})
		Expect(summary).To(HavePrefix("Se inspeccionaron 3 tanques estacionarios de 1000 galones de GLP con números de serie A, B y C. "))
	})

	It("orders by type ascending then capacity descending", func() {
		summary := tanks.ComposeSummary([]models.TankRecord{
			tank("SUBTERRANEO", "120", "S1"),
			tank("ESTACIONARIO", "500", "E1"),
			tank("ESTACIONARIO", "3000", "E2"),
			tank("ESTACIONARIO", "1000", "E3"),
		})
		Expect(summary).To(HavePrefix("Se inspeccionaron " +
			"1 tanque estacionario de 3000 galones de GLP con número de serie E2, " +
			"1 tanque estacionario de 1000 galones de GLP con número de serie E3, " +
			"1 tanque estacionario de 500 galones de GLP con número de serie E1, " +
			"1 tanque subterraneo de 120 galones de GLP con número de serie S1. "))
	})

	It("ignores bucket order but keeps serial order", func() {
		a := tanks.ComposeSummary([]models.TankRecord{
			tank("ESTACIONARIO", "500", "X1"),
			tank("AEREO", "250", "Y1"),
			tank("ESTACIONARIO", "500", "X2"),
		})
		b := tanks.ComposeSummary([]models.TankRecord{
			tank("AEREO", "250", "Y1"),
			tank("ESTACIONARIO", "500", "X1"),
			tank("ESTACIONARIO", "500", "X2"),
		})
		Expect(a).To(Equal(b))
		Expect(a).To(ContainSubstring("X1 y X2"))
	})

	It("prints numeric capacities without decimals", func() {
		summary := tanks.ComposeSummary([]models.TankRecord{tank("ESTACIONARIO", "1000.0", "Z")})
		Expect(summary).To(ContainSubstring("de 1000 galones"))
	})

	It("groups equal numeric capacities written differently", func() {
		groups := tanks.GroupTanks([]models.TankRecord{
			tank("ESTACIONARIO", "1000", "A"),
			tank("ESTACIONARIO", "1000.0", "B"),
		})
		Expect(groups).To(HaveLen(1))
		Expect(groups[0].Serials).To(Equal([]string{"A", "B"}))
	})

	It("lists numeric capacities before text ones whatever the input order", func() {
		want := []string{"10", "9", "10x"}
		for _, records := range [][]models.TankRecord{
			{tank("AEREO", "9", "a"), tank("AEREO", "10", "b"), tank("AEREO", "10x", "c")},
			{tank("AEREO", "10x", "c"), tank("AEREO", "9", "a"), tank("AEREO", "10", "b")},
			{tank("AEREO", "10", "b"), tank("AEREO", "10x", "c"), tank("AEREO", "9", "a")},
		} {
			var got []string
			for _, g := range tanks.GroupTanks(records) {
				got = append(got, g.Capacity.String())
			}
			Expect(got).To(Equal(want))
		}
	})

	It("joins groups with commas", func() {
		summary := tanks.ComposeSummary([]models.TankRecord{
			tank("A", "1", "s1"),
			tank("B", "1", "s2"),
		})
		Expect(strings.Count(summary, ", ")).To(BeNumerically(">=", 1))
		Expect(summary).To(ContainSubstring("serie s1, 1 tanque b de"))
	})
})

var _ = Describe("JoinSerials", func() {
	DescribeTable("joins with commas and a final y",
		func(in []string, want string) {
			Expect(tanks.JoinSerials(in)).To(Equal(want))
		},
		Entry("one", []string{"A"}, "A"),
		Entry("two", []string{"A", "B"}, "A y B"),
		Entry("three", []string{"A", "B", "C"}, "A, B y C"),
		Entry("none", []string{}, ""),
	)
})
