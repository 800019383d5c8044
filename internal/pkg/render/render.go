// Package render draws certificate documents as PDF.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/certificate"
)

var ErrRender = errors.New("failed to render certificate")

type Renderer interface {
	Render(doc certificate.Document, w io.Writer) error
}

// FPDF renders on an A4 portrait page with Helvetica. Images are looked up in AssetsDir;
// missing or undecodable images are left out.
type FPDF struct {
	AssetsDir string
	logger    *zap.Logger
}

func NewFPDF(assetsDir string, logger *zap.Logger) *FPDF {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FPDF{AssetsDir: assetsDir, logger: logger}
}

func (r *FPDF) Render(doc certificate.Document, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 40)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, in := range doc.Instructions {
		switch in.Kind {
		case certificate.KindFont:
			pdf.SetFont(in.Family, in.Style, in.Size)
		case certificate.KindTextColor:
			pdf.SetTextColor(in.Color[0], in.Color[1], in.Color[2])
		case certificate.KindPosition:
			pdf.SetXY(in.X, in.Y)
		case certificate.KindCell:
			pdf.CellFormat(in.Width, in.Height, tr(in.Text), "", 0, in.Align, false, 0, "")
		case certificate.KindMultiCell:
			pdf.MultiCell(in.Width, in.Height, tr(in.Text), "", in.Align, false)
		case certificate.KindLineBreak:
			pdf.Ln(in.Height)
		case certificate.KindImage:
			r.image(pdf, in)
		default:
			return fmt.Errorf("%w: unknown instruction kind %d", ErrRender, in.Kind)
		}

		if pdf.Err() {
			return fmt.Errorf("%w: %v", ErrRender, pdf.Error())
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	return nil
}

func (r *FPDF) image(pdf *fpdf.Fpdf, in certificate.Instruction) {
	path := filepath.Join(r.AssetsDir, in.Path)

	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Debug("image not available, skipping", zap.String("path", path), zap.Error(err))
		return
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		r.logger.Warn("image could not be decoded, skipping", zap.String("path", path), zap.Error(err))
		return
	}

	opts := fpdf.ImageOptions{ImageType: format, ReadDpi: true}
	pdf.RegisterImageOptionsReader(path, opts, bytes.NewReader(data))
	if pdf.Err() {
		r.logger.Warn("image rejected by pdf writer, skipping", zap.String("path", path), zap.Error(pdf.Error()))
		pdf.ClearError()
		return
	}
	pdf.ImageOptions(path, in.X, in.Y, in.Width, 0, in.Flow, opts, 0, "")
}
