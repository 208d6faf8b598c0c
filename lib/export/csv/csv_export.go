// Package csvexport renders vacation requests as CSV with the same column
// layout as the xlsx export.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pkg/errors"

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

var requestHeaders = []string{"employee", "email", "start_date", "end_date", "business_days", "type", "status", "reason", "decided_at"}

func (i impl) ExportVacationRequests(list []dbmodels.VacationRequest) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(requestHeaders); err != nil {
		return nil, errors.Wrap(err, "failed to write csv header")
	}
	for _, item := range list {
		name := ""
		email := ""
		if item.User != nil {
			name = item.User.GetFullName()
			email = item.User.Email
		}
		decidedAt := ""
		if item.ApprovedAt != nil {
			decidedAt = item.ApprovedAt.Format("2006-01-02 15:04")
		}
		record := []string{
			name,
			email,
			item.StartDate.Format("2006-01-02"),
			item.EndDate.Format("2006-01-02"),
			strconv.FormatFloat(item.DaysCount, 'f', -1, 64),
			string(item.VacationType),
			string(item.Status),
			item.Reason,
			decidedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, errors.Wrap(err, "failed to write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush csv")
	}
	return buf, nil
}
