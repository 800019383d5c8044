package certificate

import "strings"

// Engineer identifies who signs the certificate.
type Engineer string

const (
	EngineerCC Engineer = "CC"
	EngineerML Engineer = "ML"
	EngineerCT Engineer = "CT"
	EngineerEP Engineer = "EP"
	EngineerAR Engineer = "AR"
)

// DefaultEngineer signs when the submitted code is not recognised.
const DefaultEngineer = EngineerCT

// Signature places an engineer's signature image on the page.
type Signature struct {
	File  string
	X     float64
	Width float64
}

var signatures = map[Engineer]Signature{
	EngineerCC: {File: "CC-FIRMA.png", X: 85, Width: 40},
	EngineerML: {File: "ML-FIRMA.png", X: 75, Width: 60},
	EngineerCT: {File: "CT-FIRMA.png", X: 85, Width: 40},
	EngineerEP: {File: "EP-FIRMA.png", X: 80, Width: 40},
	EngineerAR: {File: "AR-FIRMA.png", X: 85, Width: 40},
}

// Engineers lists the known codes in form order.
var Engineers = []Engineer{EngineerCT, EngineerCC, EngineerML, EngineerEP, EngineerAR}

// ParseEngineer maps a form code to an engineer. Unknown codes return DefaultEngineer and false.
func ParseEngineer(code string) (Engineer, bool) {
	e := Engineer(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := signatures[e]; ok {
		return e, true
	}
	return DefaultEngineer, false
}

func (e Engineer) Signature() Signature {
	if s, ok := signatures[e]; ok {
		return s
	}
	return signatures[DefaultEngineer]
}
