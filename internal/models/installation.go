package models

import "time"

// InstallationRecord is one customer's tank installation as held in the record store.
// The first row of a location supplies the customer and address, every row supplies a tank.
type InstallationRecord struct {
	LocationID   string
	CustomerName string
	Address      string
	Tanks        []TankRecord
}

// CertificateRequest carries everything needed to issue one certificate.
type CertificateRequest struct {
	LocationID     string
	InspectionDate time.Time
	EngineerCode   string
	CustomerName   string
	Address        string
	Tanks          []TankRecord
	Save           bool // replace the location's rows in the record store before rendering
}

// Installation returns the record the request would store.
func (r CertificateRequest) Installation() InstallationRecord {
	return InstallationRecord{
		LocationID:   r.LocationID,
		CustomerName: r.CustomerName,
		Address:      r.Address,
		Tanks:        r.Tanks,
	}
}
