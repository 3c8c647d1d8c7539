package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	defaultName = "table"
	fileMode    = 0644
)

// Files exports to files in Dir and to the system clipboard.
type Files struct {
	Dir string
}

// Excel writes <title>.xlsx
func (fs Files) Excel(ctx context.Context, sheet Sheet) (err error) {

	if err = ctx.Err(); err != nil {
		return
	}

	xl := excelize.NewFile()
	defer xl.Close()

	name := xl.GetSheetName(0)

	header := make([]any, len(sheet.Headers))
	for i, hdr := range sheet.Headers {
		header[i] = hdr
	}
	err = xl.SetSheetRow(name, "A1", &header)
	if err != nil {
		err = errors.Wrapf(err, "failed to write header")
		return
	}

	for i, rec := range sheet.Rows {
		var cell string
		cell, err = excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			err = errors.Wrapf(err, "failed to name cell for row %d", i)
			return
		}

		row := make([]any, len(sheet.Headers))
		for j, hdr := range sheet.Headers {
			row[j] = rec[hdr]
		}

		err = xl.SetSheetRow(name, cell, &row)
		if err != nil {
			err = errors.Wrapf(err, "failed to write row %d", i)
			return
		}
	}

	path := fs.path(sheet.Title, ".xlsx")
	err = xl.SaveAs(path)
	err = errors.Wrapf(err, "failed to save %s", path)
	return
}

// Csv writes <title>.csv
func (fs Files) Csv(ctx context.Context, sheet Sheet) (err error) {

	if err = ctx.Err(); err != nil {
		return
	}

	path := fs.path(sheet.Title, ".csv")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
	if err != nil {
		err = errors.Wrapf(err, "failed to create %s", path)
		return
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	err = writer.Write(sheet.Headers)
	if err != nil {
		err = errors.Wrapf(err, "failed to write header")
		return
	}

	err = writer.WriteAll(sheet.Cells())
	err = errors.Wrapf(err, "failed to write rows to %s", path)
	return
}

// Pdf writes <title>.pdf holding the markup in a fixed width font.
func (fs Files) Pdf(ctx context.Context, markup, title string) (err error) {

	if err = ctx.Err(); err != nil {
		return
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Courier", "B", 11)
		pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Courier", "", 8)
	for _, line := range strings.Split(markup, "\n") {
		pdf.CellFormat(0, 4, tr(line), "", 1, "L", false, 0, "")
	}

	path := fs.path(title, ".pdf")
	err = pdf.OutputFileAndClose(path)
	err = errors.Wrapf(err, "failed to write %s", path)
	return
}

// Copy puts text on the system clipboard.
func (fs Files) Copy(ctx context.Context, text string) (err error) {

	if err = ctx.Err(); err != nil {
		return
	}

	err = clipboard.WriteAll(text)
	err = errors.Wrapf(err, "failed to copy to clipboard")
	return
}

// unexported

func (fs Files) path(title, ext string) string {

	name := strings.TrimSpace(title)
	if name == "" {
		name = defaultName
	}
	name = strings.ReplaceAll(name, string(filepath.Separator), "_")

	return filepath.Join(fs.Dir, name+ext)
}
