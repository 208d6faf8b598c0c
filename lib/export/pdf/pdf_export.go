// Package pdfexport renders vacation requests as a printable PDF table.
package pdfexport

import (
	"bytes"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	ExportVacationRequests(title string, list []dbmodels.VacationRequest) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var columns = []struct {
	title string
	width float64
}{
	{"Employee", 55},
	{"Start date", 30},
	{"End date", 30},
	{"Days", 18},
	{"Type", 28},
	{"Status", 26},
	{"Decided at", 48},
}

func (i impl) ExportVacationRequests(title string, list []dbmodels.VacationRequest) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportVacationRequests panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range list {
		name := ""
		if item.User != nil {
			name = item.User.GetFullName()
		}
		decidedAt := ""
		if item.ApprovedAt != nil {
			decidedAt = item.ApprovedAt.Format("2006-01-02 15:04")
		}
		cells := []string{
			name,
			item.StartDate.Format("2006-01-02"),
			item.EndDate.Format("2006-01-02"),
			trimFloat(item.DaysCount),
			string(item.VacationType),
			string(item.Status),
			decidedAt,
		}
		for idx, value := range cells {
			pdf.CellFormat(columns[idx].width, 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
