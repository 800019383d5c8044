package controllers

import (
	"embed"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/issuer"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/certificate"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/emission"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/render"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/tanks"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/store"
)

//go:embed templates/*.html
var Templates embed.FS

const previewMode = "vista_previa"

type CertificateController struct {
	Issuer *issuer.Issuer
	Logger *zap.Logger
}

type tankRow struct {
	Type     string
	Capacity string
	Serial   string
}

type previewView struct {
	Location       string
	InspectionDate string
	Engineer       string
	KnownEngineer  bool
	Engineers      []certificate.Engineer
	CustomerName   string
	Address        string
	Emission       string
	Summary        string
	Groups         []tanks.Group
	Tanks          []tankRow
	Skipped        int
}

// ShowForm serves the lookup form
func (cc *CertificateController) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", gin.H{
		"Engineers": certificate.Engineers,
		"Default":   certificate.DefaultEngineer,
	})
}

// Submit looks up the installation and either shows the confirmation view
// (modo=vista_previa) or downloads the certificate right away.
func (cc *CertificateController) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	preview, err := cc.Issuer.Prepare(ctx, issuer.LookupForm{
		Location:       c.PostForm("ubicacion"),
		InspectionDate: c.PostForm("fecha_inspeccion"),
		Engineer:       c.DefaultPostForm("ingeniero", string(certificate.DefaultEngineer)),
	})
	if err != nil {
		cc.fail(c, err)
		return
	}

	if c.PostForm("modo") == previewMode {
		c.HTML(http.StatusOK, "preview.html", newPreviewView(preview))
		return
	}

	res, err := cc.Issuer.Issue(ctx, preview.Request)
	if err != nil {
		cc.fail(c, err)
		return
	}

	c.FileAttachment(res.Path, res.Filename)
}

// Generate issues a certificate from the confirmation form
func (cc *CertificateController) Generate(c *gin.Context) {
	form := issuer.GenerateForm{
		Location:       c.PostForm("ubicacion"),
		InspectionDate: c.PostForm("fecha_inspeccion"),
		Engineer:       c.DefaultPostForm("ingeniero", string(certificate.DefaultEngineer)),
		CustomerName:   c.PostForm("cliente"),
		Address:        c.PostForm("direccion"),
		Types:          c.PostFormArray("tipo[]"),
		Capacities:     c.PostFormArray("capacidad[]"),
		Serials:        c.PostFormArray("serie[]"),
		Save:           isChecked(c.PostForm("guardar")),
	}

	req, err := form.Request()
	if err != nil {
		cc.fail(c, err)
		return
	}

	res, err := cc.Issuer.Issue(c.Request.Context(), req)
	if err != nil {
		cc.fail(c, err)
		return
	}

	c.FileAttachment(res.Path, res.Filename)
}

func (cc *CertificateController) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, issuer.ErrInvalidDate):
		c.String(http.StatusBadRequest, "Fecha de inspección inválida. Use formato de calendario.")
	case errors.Is(err, issuer.ErrInvalidLocation):
		c.String(http.StatusBadRequest, "Número de instalación inválido")
	case errors.Is(err, issuer.ErrTankColumns):
		c.String(http.StatusBadRequest, "Los datos de tanques están incompletos: cada tanque necesita tipo, capacidad y serie.")
	case errors.Is(err, store.ErrNotFound):
		c.String(http.StatusNotFound, "No se ha podido obtener el dato para la ubicación técnica %s.", strings.TrimSpace(c.PostForm("ubicacion")))
	case errors.Is(err, store.ErrStoreUnavailable):
		cc.Logger.Error("record store unavailable", zap.Error(err))
		c.String(http.StatusInternalServerError, "No se pudo leer la base de datos de instalaciones.")
	case errors.Is(err, render.ErrRender):
		cc.Logger.Error("failed to render certificate", zap.Error(err))
		c.String(http.StatusInternalServerError, "No se pudo generar el certificado.")
	default:
		cc.Logger.Error("failed to issue certificate", zap.Error(err))
		c.String(http.StatusInternalServerError, "Algo salió mal")
	}
}

func newPreviewView(p *issuer.Preview) previewView {
	v := previewView{
		Location:       p.Request.LocationID,
		InspectionDate: p.Request.InspectionDate.Format(emission.InspectionLayout),
		Engineer:       string(p.Engineer),
		KnownEngineer:  p.KnownEngineer,
		Engineers:      certificate.Engineers,
		CustomerName:   p.Request.CustomerName,
		Address:        p.Request.Address,
		Emission:       p.Emission.Display,
		Summary:        tanks.ComposeSummary(p.Request.Tanks),
		Groups:         p.Groups,
		Skipped:        len(p.Skipped),
	}
	for _, t := range p.Request.Tanks {
		v.Tanks = append(v.Tanks, tankRow{Type: t.Type, Capacity: t.Capacity.String(), Serial: t.Serial})
	}
	return v
}

func isChecked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "1", "true", "si", "sí":
		return true
	}
	return false
}
