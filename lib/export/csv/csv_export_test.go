package csvexport

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vacation-planner-backend/models"
	dbmodels "vacation-planner-backend/models/db"
)

func TestExportVacationRequests(t *testing.T) {
	t.Run(`writes header and one row per request`, func(t *testing.T) {
		decidedAt := time.Date(2026, time.May, 2, 10, 0, 0, 0, time.UTC)
		list := []dbmodels.VacationRequest{
			{
				User:         &dbmodels.User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
				StartDate:    time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
				EndDate:      time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC),
				DaysCount:    5,
				VacationType: models.VacationTypeAnnual,
				Status:       models.VacationStatusApproved,
				ApprovedAt:   &decidedAt,
			},
		}
		buf, err := impl{}.ExportVacationRequests(list)
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, requestHeaders, records[0])
		require.Equal(t, "Jane Doe", records[1][0])
		require.Equal(t, "2026-06-01", records[1][2])
		require.Equal(t, "5", records[1][4])
		require.Equal(t, "approved", records[1][6])
	})

	t.Run(`empty list yields only the header`, func(t *testing.T) {
		buf, err := impl{}.ExportVacationRequests(nil)
		require.NoError(t, err)
		records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 1)
	})
}
