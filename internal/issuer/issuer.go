// Package issuer runs the certificate pipeline: look up the installation, compose the
// text, render the document and keep it in the output directory.
package issuer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/config"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/models"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/certificate"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/emission"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/render"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/tanks"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/store"
)

var ErrInvalidInput = errors.New("invalid input")

var (
	ErrInvalidLocation = fmt.Errorf("%w: location", ErrInvalidInput)
	ErrInvalidDate     = fmt.Errorf("%w: inspection date", ErrInvalidInput)
	ErrTankColumns     = fmt.Errorf("%w: tank columns", ErrInvalidInput)
)

type Options struct {
	OutputDir string
	City      string
	Location  *time.Location // decides what "today" is
	Rule      certificate.AddendumRule
}

type Issuer struct {
	store    store.RecordStore
	renderer render.Renderer
	opts     Options
	logger   *zap.Logger

	Now func() time.Time
}

func New(st store.RecordStore, r render.Renderer, opts Options, logger *zap.Logger) *Issuer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.City == "" {
		opts.City = "Lima"
	}
	return &Issuer{store: st, renderer: r, opts: opts, logger: logger, Now: time.Now}
}

// NewFromConfig wires an Issuer with the workbook store and the PDF renderer.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (*Issuer, error) {
	rule, err := certificate.ParseAddendumRule(cfg.AddendumRule)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	st := store.NewWorkbook(cfg.DataBasePath, cfg.DataSheet, cfg.SnapshotDir, logger)
	r := render.NewFPDF(cfg.AssetsDir, logger)

	return New(st, r, Options{OutputDir: cfg.OutputDir, City: cfg.City, Location: loc, Rule: rule}, logger), nil
}

// LookupForm is what the first form sends.
type LookupForm struct {
	Location       string
	InspectionDate string
	Engineer       string
}

// Preview is a request filled in from the record store, ready to be confirmed.
type Preview struct {
	Request       models.CertificateRequest
	Groups        []tanks.Group
	Skipped       []SkippedTank
	Engineer      certificate.Engineer
	KnownEngineer bool
	Emission      emission.Emission
}

type SkippedTank struct {
	Tank   models.TankRecord
	Reason models.TankCheck
}

type Result struct {
	Filename string
	Path     string
	Snapshot string // set when the request was saved to the store
	Emission emission.Emission
}

// ParseLocation accepts integer location keys only.
func ParseLocation(s string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a number", ErrInvalidLocation, s)
	}
	return strconv.Itoa(n), nil
}

func parseDate(s string) (time.Time, error) {
	t, err := emission.ParseInspectionDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return t, nil
}

// Prepare validates the lookup form and fills a request from the record store.
func (is *Issuer) Prepare(ctx context.Context, form LookupForm) (*Preview, error) {
	loc, err := ParseLocation(form.Location)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(form.InspectionDate)
	if err != nil {
		return nil, err
	}

	inst, err := is.store.Lookup(ctx, loc)
	if err != nil {
		return nil, err
	}

	engineer, known := certificate.ParseEngineer(form.Engineer)
	req := models.CertificateRequest{
		LocationID:     loc,
		InspectionDate: date,
		EngineerCode:   string(engineer),
		CustomerName:   inst.CustomerName,
		Address:        inst.Address,
		Tanks:          inst.Tanks,
	}

	preview := &Preview{
		Request:       req,
		Groups:        tanks.GroupTanks(req.Tanks),
		Engineer:      engineer,
		KnownEngineer: known,
		Emission:      emission.Compute(date, is.today(), is.opts.City),
	}
	for _, t := range req.Tanks {
		if c := t.Check(); c != models.TankValid {
			preview.Skipped = append(preview.Skipped, SkippedTank{Tank: t, Reason: c})
		}
	}

	return preview, nil
}

// GenerateForm is what the confirmation form sends back, tanks as parallel columns.
type GenerateForm struct {
	Location       string
	InspectionDate string
	Engineer       string
	CustomerName   string
	Address        string
	Types          []string
	Capacities     []string
	Serials        []string
	Save           bool
}

// Request validates the confirmation form.
func (f GenerateForm) Request() (models.CertificateRequest, error) {
	loc, err := ParseLocation(f.Location)
	if err != nil {
		return models.CertificateRequest{}, err
	}
	date, err := parseDate(f.InspectionDate)
	if err != nil {
		return models.CertificateRequest{}, err
	}
	if len(f.Types) != len(f.Capacities) || len(f.Types) != len(f.Serials) {
		return models.CertificateRequest{}, fmt.Errorf("%w: lengths differ (%d types, %d capacities, %d serials)",
			ErrTankColumns, len(f.Types), len(f.Capacities), len(f.Serials))
	}

	req := models.CertificateRequest{
		LocationID:     loc,
		InspectionDate: date,
		EngineerCode:   f.Engineer,
		CustomerName:   strings.TrimSpace(f.CustomerName),
		Address:        strings.TrimSpace(f.Address),
		Save:           f.Save,
	}
	for i := range f.Types {
		req.Tanks = append(req.Tanks, models.NewTankRecord(f.Types[i], f.Capacities[i], f.Serials[i]))
	}

	return req, nil
}

// Issue renders the certificate for req into the output directory. When req.Save is set
// the location is first replaced in the record store.
func (is *Issuer) Issue(ctx context.Context, req models.CertificateRequest) (*Result, error) {
	if req.LocationID == "" {
		return nil, fmt.Errorf("%w: missing", ErrInvalidLocation)
	}
	if req.InspectionDate.IsZero() {
		return nil, fmt.Errorf("%w: missing", ErrInvalidDate)
	}

	res := &Result{}
	if req.Save {
		snapshot, err := is.store.Replace(ctx, req.Installation())
		if err != nil {
			return nil, err
		}
		res.Snapshot = snapshot
	}

	if _, known := certificate.ParseEngineer(req.EngineerCode); !known {
		is.logger.Info("unknown engineer code, using default signature",
			zap.String("code", req.EngineerCode),
			zap.String("default", string(certificate.DefaultEngineer)),
		)
	}

	summary := tanks.ComposeSummary(req.Tanks)
	res.Emission = emission.Compute(req.InspectionDate, is.today(), is.opts.City)
	doc := certificate.Assemble(req, summary, res.Emission, is.opts.Rule)

	path, err := is.write(doc)
	if err != nil {
		return nil, err
	}
	res.Filename = doc.Filename
	res.Path = path

	is.logger.Info("issued certificate",
		zap.String("location", req.LocationID),
		zap.String("file", doc.Filename),
		zap.String("emission", res.Emission.Display),
		zap.Bool("saved", req.Save),
	)

	return res, nil
}

// write renders into a temporary file and renames it, so a failed render never leaves
// a partial certificate behind.
func (is *Issuer) write(doc certificate.Document) (string, error) {
	if err := os.MkdirAll(is.opts.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", render.ErrRender, err)
	}

	tmp, err := os.CreateTemp(is.opts.OutputDir, ".certificate-*.pdf")
	if err != nil {
		return "", fmt.Errorf("%w: %v", render.ErrRender, err)
	}
	defer os.Remove(tmp.Name())

	if err := is.renderer.Render(doc, tmp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", render.ErrRender, err)
	}

	path := filepath.Join(is.opts.OutputDir, doc.Filename)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("%w: %v", render.ErrRender, err)
	}

	return path, nil
}

func (is *Issuer) today() time.Time {
	return is.Now().In(is.opts.Location)
}
