package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/models"
)

// Column headers of the installations sheet
const (
	ColLocation = "Ubicacion"
	ColCustomer = "Nombre Titular"
	ColAddress  = "Direccion"
	ColType     = "Tipo"
	ColCapacity = "Capacidad"
	ColSerial   = "Serie"
)

var requiredColumns = []string{ColLocation, ColCustomer, ColAddress, ColType, ColCapacity, ColSerial}

const snapshotLayout = "20060102T150405.000"

// Workbook is a RecordStore over one sheet of an Excel workbook. Saves never touch Path:
// each one writes a timestamped snapshot into SnapshotDir, and the newest snapshot is
// read from then on. Saves are not serialised; with concurrent saves the last writer wins.
type Workbook struct {
	Path        string
	Sheet       string
	SnapshotDir string
	Now         func() time.Time

	logger *zap.Logger
}

func NewWorkbook(path, sheet, snapshotDir string, logger *zap.Logger) *Workbook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workbook{
		Path:        path,
		Sheet:       sheet,
		SnapshotDir: snapshotDir,
		Now:         time.Now,
		logger:      logger,
	}
}

type table struct {
	file    *excelize.File
	header  []string
	rows    [][]string
	columns map[string]int
	width   int
}

func (t *table) cell(row []string, col string) string {
	i := t.columns[col]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (w *Workbook) Lookup(ctx context.Context, locationID string) (*models.InstallationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := w.open()
	if err != nil {
		return nil, err
	}
	defer t.file.Close()

	key := CanonicalKey(locationID)
	var inst *models.InstallationRecord
	for _, row := range t.rows {
		if CanonicalKey(t.cell(row, ColLocation)) != key {
			continue
		}

		if inst == nil {
			inst = &models.InstallationRecord{
				LocationID:   key,
				CustomerName: t.cell(row, ColCustomer),
				Address:      t.cell(row, ColAddress),
			}
		}
		inst.Tanks = append(inst.Tanks, models.NewTankRecord(t.cell(row, ColType), t.cell(row, ColCapacity), t.cell(row, ColSerial)))
	}

	if inst == nil {
		return nil, fmt.Errorf("%w: location %s", ErrNotFound, locationID)
	}

	return inst, nil
}

func (w *Workbook) Replace(ctx context.Context, inst models.InstallationRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	t, err := w.open()
	if err != nil {
		return "", err
	}
	defer t.file.Close()

	key := CanonicalKey(inst.LocationID)

	// rows are 1-based and row 1 is the header; other rows are left untouched so their
	// cell types and styles survive the save
	removed := 0
	for i := len(t.rows) - 1; i >= 0; i-- {
		if CanonicalKey(t.cell(t.rows[i], ColLocation)) != key {
			continue
		}
		if err := t.file.RemoveRow(w.Sheet, i+2); err != nil {
			return "", fmt.Errorf("%w: failed to remove row %d: %v", ErrStoreUnavailable, i+2, err)
		}
		removed++
	}

	next := len(t.rows) - removed + 2
	for i, tank := range inst.Tanks {
		row := make([]string, t.width)
		row[t.columns[ColLocation]] = key
		row[t.columns[ColCustomer]] = inst.CustomerName
		row[t.columns[ColAddress]] = inst.Address
		row[t.columns[ColType]] = tank.Type
		row[t.columns[ColCapacity]] = tank.Capacity.String()
		row[t.columns[ColSerial]] = tank.Serial

		values := make([]any, t.width)
		for c, v := range row {
			values[c] = t.value(c, v)
		}

		cell, err := excelize.CoordinatesToCellName(1, next+i)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if err := t.file.SetSheetRow(w.Sheet, cell, &values); err != nil {
			return "", fmt.Errorf("%w: failed to write row %d: %v", ErrStoreUnavailable, next+i, err)
		}
	}

	if err := os.MkdirAll(w.SnapshotDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	path := w.snapshotPath(w.Now())
	if err := t.file.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: failed to save snapshot: %v", ErrStoreUnavailable, err)
	}

	w.logger.Info("saved installation snapshot",
		zap.String("location", key),
		zap.Int("removed_rows", removed),
		zap.Int("added_rows", len(inst.Tanks)),
		zap.String("snapshot", path),
	)

	return path, nil
}

// Source returns the workbook reads come from: the newest snapshot, or Path when there is none.
func (w *Workbook) Source() string {
	ext := filepath.Ext(w.Path)
	base := strings.TrimSuffix(filepath.Base(w.Path), ext)

	matches, err := filepath.Glob(filepath.Join(w.SnapshotDir, base+"_*"+ext))
	if err != nil || len(matches) == 0 {
		return w.Path
	}

	slices.Sort(matches)
	return matches[len(matches)-1]
}

func (w *Workbook) snapshotPath(now time.Time) string {
	ext := filepath.Ext(w.Path)
	base := strings.TrimSuffix(filepath.Base(w.Path), ext)
	return filepath.Join(w.SnapshotDir, base+"_"+now.Format(snapshotLayout)+ext)
}

func (w *Workbook) open() (*table, error) {
	src := w.Source()
	if _, err := os.Stat(src); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	f, err := excelize.OpenFile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrStoreUnavailable, src, err)
	}

	// raw values: a styled 1000 must not come back as "1,000"
	rows, err := f.GetRows(w.Sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: failed to read sheet %s: %v", ErrStoreUnavailable, w.Sheet, err)
	}
	if len(rows) == 0 {
		f.Close()
		return nil, fmt.Errorf("%w: sheet %s is empty", ErrStoreUnavailable, w.Sheet)
	}

	t := &table{file: f, header: rows[0], rows: rows[1:], columns: map[string]int{}}
	byName := make(map[string]int, len(t.header))
	for i, h := range t.header {
		byName[headerKey(h)] = i
	}
	for _, col := range requiredColumns {
		i, ok := byName[headerKey(col)]
		if !ok {
			f.Close()
			return nil, fmt.Errorf("%w: sheet %s has no column %q", ErrStoreUnavailable, w.Sheet, col)
		}
		t.columns[col] = i
	}

	t.width = len(t.header)
	for _, row := range t.rows {
		t.width = max(t.width, len(row))
	}

	return t, nil
}

// value keeps numeric location and capacity cells numeric in appended rows.
func (t *table) value(col int, v string) any {
	if col != t.columns[ColLocation] && col != t.columns[ColCapacity] {
		return v
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

// CanonicalKey makes "101", " 101 " and "101.0" the same location.
func CanonicalKey(s string) string {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

func headerKey(h string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripMarks, strings.ToLower(strings.TrimSpace(h)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(h))
	}
	return out
}
