// Package certificate turns a certificate request into the drawing instructions of the
// operability certificate.
package certificate

import (
	"fmt"
	"strings"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/models"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/emission"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/textnorm"
)

const LogoFile = "logo_solgaspro.png"

const (
	salutation = "Señor(a):"
	present    = "Presente:"
	reference  = "Referencia: Certificado de Operatividad Instalación GLP"

	scopeTemplate = `Estimado(a),

Sirva la presente para saludarlo(a) cordialmente e informarle que SOLGAS S.A. con fecha %s ha realizado los trabajos de Mantenimiento Preventivo Anual en la instalación de la zona del tanque de GLP y las redes de media presión en la dirección %s, en cumplimiento de la Norma Técnica Peruana NTP 321.123 (REVISADA 2025) de instalaciones de consumidores directos (Capítulo 5.1.16.1) y de acuerdo con los estándares de seguridad y calidad de la empresa.`

	regulatorsText = "Asimismo, se realizó la inspección, revisión y mantenimiento de los reguladores de 1era etapa, verificando que se encuentran en condiciones seguras de operación."
	standardsText  = "Los tanques son recipientes a presión fabricados de acuerdo con el Código ASME Sección VIII, API 510 con altos estándares internacionales de seguridad y calidad."
	insuranceText  = "Es importante indicar que el tanque instalado por Solgas S.A. se encuentra cubierto por una póliza de Responsabilidad Civil Extracontractual de hasta 733 UIT."
	validityText   = "El presente Certificado de Operatividad tiene un periodo de vigencia de un año."

	// AddendumText is the legal notice about modifications around the storage area.
	AddendumText = "(1) En aras de mantener el estricto cumplimiento del marco normativo vigente, y en caso requieran hacer alguna modificación en el área que se encuentra alrededor de la zona de almacenamiento de tanques de GLP como: instalar equipos eléctricos, cámaras de seguridad, iluminación, tomacorrientes, edificaciones contiguas, equipos de aire acondicionado, cableado eléctrico, ductos, sumideros, almacenar materiales, construcción de muros perimetrales, etc. tienen la obligación de comunicar previamente al equipo técnico de Solgas lo pertinente, a fin de que puedan recibir la asesoría técnica y validación correspondiente, de tal manera que, se evite incurrir en algunos incumplimientos normativos que puedan ser materia de suspensión de la Ficha de Registro y sanciones pecuniarias por parte del ente fiscalizador, así como evitar cualquier riesgo innecesario en la instalación; cabe precisar que en caso de no informar acerca de las modificaciones que realicen en la instalación, usted será el único y exclusivo responsable por las consecuencias que se deriven de su accionar."

	closingText = "Sin otro particular, \nAtentamente"
)

var footer = []string{
	"Jr. Vittore Scarpazza Carpaccio N° 250 Piso 7, San Borja",
	"Telf: (+511) 613-3330",
	"www.solgaspro.com.pe",
}

// AddendumRule decides from the emission year whether the legal addendum is printed.
type AddendumRule int

const (
	AddendumFrom2025 AddendumRule = iota // emission year >= 2025
	AddendumOnly2025                     // emission year == 2025
)

var addendumRuleNames = [...]string{
	AddendumFrom2025: "from-2025",
	AddendumOnly2025: "only-2025",
}

func (r AddendumRule) String() string {
	if r >= 0 && int(r) < len(addendumRuleNames) {
		return addendumRuleNames[r]
	}
	return fmt.Sprintf("AddendumRule(%d)", int(r))
}

// ParseAddendumRule reads a rule name as written in ADDENDUM_RULE.
func ParseAddendumRule(s string) (AddendumRule, error) {
	for r, name := range addendumRuleNames {
		if s == name {
			return AddendumRule(r), nil
		}
	}
	return AddendumFrom2025, fmt.Errorf("unknown addendum rule %q: want %q or %q", s, AddendumFrom2025, AddendumOnly2025)
}

func (r AddendumRule) Applies(year int) bool {
	if r == AddendumOnly2025 {
		return year == 2025
	}
	return year >= 2025
}

// Assemble lays out the certificate for req. summary is the tank paragraph and em the
// emission date; the addendum is printed when rule applies to em.Year.
func Assemble(req models.CertificateRequest, summary string, em emission.Emission, rule AddendumRule) Document {
	customer := textnorm.Normalize(req.CustomerName)
	address := textnorm.Normalize(req.Address)
	engineer, _ := ParseEngineer(req.EngineerCode)
	sig := engineer.Signature()

	b := &builder{}

	b.font("", 10)
	b.image(LogoFile, 10, 10, 55, false)

	b.position(140, 30)
	b.multi(60, 1, textnorm.Normalize(em.Display), "R")

	b.ln(3)
	b.cell(1, salutation, "")
	b.ln(6)
	b.font("B", 10)
	b.cell(1, customer, "")
	b.ln(6)
	b.font("", 10)
	b.cell(1, present, "")
	b.ln(3)

	b.font("B", 10)
	b.cell(1, reference, "R")
	b.ln(2)

	b.font("", 11)
	b.multi(0, 4, fmt.Sprintf(scopeTemplate, req.InspectionDate.Format("02/01/2006"), address), "J")

	for _, p := range []string{textnorm.Normalize(summary), regulatorsText, standardsText, insuranceText, validityText} {
		b.ln(3)
		b.multi(0, 4, p, "J")
	}

	if rule.Applies(em.Year) {
		b.ln(3)
		b.multi(0, 4, AddendumText, "J")
	}

	b.ln(1)
	b.multi(0, 4, closingText, "J")

	b.image(sig.File, sig.X, 0, sig.Width, true)

	b.color(150, 150, 150)
	b.ln(3)
	b.font("", 8)
	for i, line := range footer {
		if i > 0 {
			b.ln(4)
		}
		b.cell(1, line, "C")
	}

	return Document{
		Instructions: b.ins,
		Filename:     Filename(req.LocationID, customer, req.InspectionDate.Year()),
	}
}

var unsafeFilename = strings.NewReplacer(
	"/", "", "\\", "", ":", "", "*", "", "?", "", `"`, "", "<", "", ">", "", "|", "",
)

// Filename is the download name "CO_{location}_{customer}_{year}.pdf" with the
// characters / \ : * ? " < > | removed from the customer name.
func Filename(locationID, customer string, inspectionYear int) string {
	return fmt.Sprintf("CO_%s_%s_%d.pdf", locationID, unsafeFilename.Replace(customer), inspectionYear)
}
