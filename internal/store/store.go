// Package store reads and rewrites the installations spreadsheet.
package store

import (
	"context"
	"errors"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/models"
)

var (
	ErrNotFound         = errors.New("installation not found")
	ErrStoreUnavailable = errors.New("record store unavailable")
)

type RecordStore interface {
	// Lookup returns the installation whose rows carry locationID.
	Lookup(ctx context.Context, locationID string) (*models.InstallationRecord, error)
	// Replace drops every row of inst.LocationID, appends one row per tank and writes the
	// result as a new snapshot. It returns the snapshot path.
	Replace(ctx context.Context, inst models.InstallationRecord) (string, error)
}
