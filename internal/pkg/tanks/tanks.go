// Package tanks groups the tanks of an installation and writes the inspection summary sentence.
package tanks

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/models"
)

const (
	inspectedPrefix = "Se inspeccionaron "
	conditionText   = "Se comprobó que los tanques no cuentan con abolladuras, hendiduras o áreas en estado avanzado de abrasión, erosión o corrosión. Asimismo, se sometió a inspección los accesorios del tanque comprobando su correcto funcionamiento y hermeticidad."

	// NoTanksText is returned when no valid tank is left for the location.
	NoTanksText = "No se registraron tanques asociados en la base de datos para esta ubicación."
)

// Group is every tank sharing a type and capacity, serials in the order they were seen.
type Group struct {
	Type     string
	Capacity models.Capacity
	Serials  []string
}

// GroupTanks buckets the valid records by (type, capacity) and orders the buckets by
// type ascending, then capacity descending.
func GroupTanks(records []models.TankRecord) []Group {
	type key struct{ tankType, capacity string }

	index := make(map[key]int)
	groups := make([]Group, 0)
	for _, r := range records {
		if r.Check() != models.TankValid {
			continue
		}

		k := key{r.Type, r.Capacity.String()}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Type: r.Type, Capacity: r.Capacity})
		}
		groups[i].Serials = append(groups[i].Serials, r.Serial)
	}

	slices.SortStableFunc(groups, func(a, b Group) int {
		if c := strings.Compare(a.Type, b.Type); c != 0 {
			return c
		}
		return b.Capacity.Compare(a.Capacity)
	})

	return groups
}

// Clause renders one group, e.g. "2 tanques estacionarios de 1000 galones de GLP con números de serie A y B".
func (g Group) Clause() string {
	n := len(g.Serials)
	plural := ""
	if n > 1 {
		plural = "s"
	}

	return fmt.Sprintf("%d tanque%s %s%s de %s galones de GLP con número%s de serie %s",
		n, plural, cases.Lower(language.Spanish).String(g.Type), plural, g.Capacity.String(), plural, JoinSerials(g.Serials))
}

// JoinSerials joins all serials but the last with ", " and the last one with " y ".
func JoinSerials(serials []string) string {
	switch len(serials) {
	case 0:
		return ""
	case 1:
		return serials[0]
	}
	last := len(serials) - 1
	return strings.Join(serials[:last], ", ") + " y " + serials[last]
}

// ComposeSummary writes the paragraph describing the inspected tanks.
func ComposeSummary(records []models.TankRecord) string {
	groups := GroupTanks(records)
	if len(groups) == 0 {
		return NoTanksText
	}

	clauses := make([]string, len(groups))
	for i, g := range groups {
		clauses[i] = g.Clause()
	}

	return inspectedPrefix + strings.Join(clauses, ", ") + ". " + conditionText
}
