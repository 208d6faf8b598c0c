// Package xlsexport renders vacation requests as an xlsx workbook.
package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	ExportVacationRequests(list []dbmodels.VacationRequest) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var requestHeaders = []string{"Employee", "Email", "Start date", "End date", "Business days", "Type", "Status", "Reason", "Decided at"}

func (i impl) ExportVacationRequests(list []dbmodels.VacationRequest) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, requestHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeRequestData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Vacation requests")
	return f.WriteToBuffer()
}

func writeRequestData(f *excelize.File, sheet string, list []dbmodels.VacationRequest, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(requestHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		name := ""
		email := ""
		if item.User != nil {
			name = item.User.GetFullName()
			email = item.User.Email
		}
		if err := writeColumn(f, sheet, col, row, name); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, email); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.StartDate.Format("2006-01-02")); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.EndDate.Format("2006-01-02")); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.DaysCount); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.VacationType)); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Reason); err != nil {
			return row, err
		}

		col++
		if item.ApprovedAt != nil {
			if err := writeColumn(f, sheet, col, row, item.ApprovedAt.Format("2006-01-02 15:04")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
