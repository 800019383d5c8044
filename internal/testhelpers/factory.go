package testhelpers

import (
	"path/filepath"

	g "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

// Header is the column layout of the installations sheet.
var Header = []any{"Ubicacion", "Nombre Titular", "Direccion", "Tipo", "Capacidad", "Serie"}

// WriteWorkbook creates a workbook at path whose sheet holds Header followed by rows.
func WriteWorkbook(path, sheet string, rows ...[]any) {
	WriteRows(path, sheet, append([][]any{Header}, rows...)...)
}

// WriteRows creates a workbook at path whose sheet holds exactly rows.
func WriteRows(path, sheet string, rows ...[]any) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	g.Expect(err).NotTo(g.HaveOccurred())
	f.SetActiveSheet(idx)
	if sheet != "Sheet1" {
		g.Expect(f.DeleteSheet("Sheet1")).To(g.Succeed())
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		g.Expect(err).NotTo(g.HaveOccurred())
		g.Expect(f.SetSheetRow(sheet, cell, &row)).To(g.Succeed())
	}

	g.Expect(f.SaveAs(path)).To(g.Succeed())
}

// ReadSheet returns every row of sheet in the workbook at path, header included.
func ReadSheet(path, sheet string) [][]string {
	f, err := excelize.OpenFile(path)
	g.Expect(err).NotTo(g.HaveOccurred())
	defer f.Close()

	rows, err := f.GetRows(sheet)
	g.Expect(err).NotTo(g.HaveOccurred())
	return rows
}

// ReadRawSheet is ReadSheet without number formatting applied.
func ReadRawSheet(path, sheet string) [][]string {
	f, err := excelize.OpenFile(path)
	g.Expect(err).NotTo(g.HaveOccurred())
	defer f.Close()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	g.Expect(err).NotTo(g.HaveOccurred())
	return rows
}

// StyleCells applies the built-in number format numFmt (3 is "#,##0") to cells.
func StyleCells(path, sheet string, numFmt int, cells ...string) {
	f, err := excelize.OpenFile(path)
	g.Expect(err).NotTo(g.HaveOccurred())
	defer f.Close()

	style, err := f.NewStyle(&excelize.Style{NumFmt: numFmt})
	g.Expect(err).NotTo(g.HaveOccurred())
	for _, cell := range cells {
		g.Expect(f.SetCellStyle(sheet, cell, cell, style)).To(g.Succeed())
	}

	g.Expect(f.Save()).To(g.Succeed())
}

// SampleWorkbook writes a workbook with two installations under dir and returns its path.
func SampleWorkbook(dir string) string {
	path := filepath.Join(dir, "data_base.xlsx")
	WriteWorkbook(path, "DATA",
		[]any{40012, "Panadería “El Trigal”", "Av. Perú 123, Lima", "estacionario", 1000, "S-100"},
		[]any{40012, "Panadería “El Trigal”", "Av. Perú 123, Lima", "ESTACIONARIO", 1000, "S-101"},
		[]any{40012, "Panadería “El Trigal”", "Av. Perú 123, Lima", "Estacionario", 500, "S-050"},
		[]any{40012, "Panadería “El Trigal”", "Av. Perú 123, Lima", "", 120, "S-X"},
		[]any{50077, "Hotel Miraflores", "Calle Los Pinos 45", "ESTACIONARIO", 3000, "H-1"},
	)
	return path
}
