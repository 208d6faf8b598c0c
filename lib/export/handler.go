// Package export assembles role-scoped vacation request exports. Admins see
// the whole company, managers the members of teams they manage, plain users
// only themselves.
package export

import (
	"bytes"

	log "github.com/sirupsen/logrus"

	"vacation-planner-backend/db"
	csvexport "vacation-planner-backend/lib/export/csv"
	pdfexport "vacation-planner-backend/lib/export/pdf"
	xlsexport "vacation-planner-backend/lib/export/xls"
	teamstore "vacation-planner-backend/lib/team/store"
	"vacation-planner-backend/lib/utils/apperrors"
	requeststore "vacation-planner-backend/lib/vacation/request/store"
	"vacation-planner-backend/models"
	vacationapimodels "vacation-planner-backend/models/api/vacation"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

type Result struct {
	Body        []byte
	ContentType string
	FileName    string
}

type Provider interface {
	ExportVacationRequests(actor models.Actor, format Format, filter vacationapimodels.ExportFilter) (Result, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		requestStore: requeststore.NewInstance(db.DB),
		teamStore:    teamstore.NewInstance(db.DB),
	}
}

type impl struct {
	requestStore requeststore.Provider
	teamStore    teamstore.Provider
}

func (i impl) ExportVacationRequests(actor models.Actor, format Format, filter vacationapimodels.ExportFilter) (out Result, err error) {
	userIDs, teamIDs, err := i.scope(actor, filter)
	if err != nil {
		return out, err
	}
	list, err := i.requestStore.ListForExport(actor.CompanyID, userIDs, teamIDs, filter)
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to load requests for export")
		return out, err
	}

	switch format {
	case FormatXLSX:
		var buf *bytes.Buffer
		buf, err = xlsexport.Instance.ExportVacationRequests(list)
		if err != nil {
			return out, err
		}
		return Result{
			Body:        buf.Bytes(),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			FileName:    "vacation_requests.xlsx",
		}, nil
	case FormatCSV:
		var buf *bytes.Buffer
		buf, err = csvexport.Instance.ExportVacationRequests(list)
		if err != nil {
			return out, err
		}
		return Result{
			Body:        buf.Bytes(),
			ContentType: "text/csv",
			FileName:    "vacation_requests.csv",
		}, nil
	case FormatPDF:
		var body []byte
		body, err = pdfexport.Instance.ExportVacationRequests("Vacation requests", list)
		if err != nil {
			return out, err
		}
		return Result{
			Body:        body,
			ContentType: "application/pdf",
			FileName:    "vacation_requests.pdf",
		}, nil
	default:
		return out, apperrors.Validation("unknown export format")
	}
}

// scope narrows the export selection to what the actor may see.
func (i impl) scope(actor models.Actor, filter vacationapimodels.ExportFilter) (userIDs, teamIDs []string, err error) {
	switch {
	case actor.Role.IsAdmin():
		if filter.UserID != "" {
			userIDs = []string{filter.UserID}
		}
		if filter.TeamID != "" {
			teamIDs = []string{filter.TeamID}
		}
		return userIDs, teamIDs, nil
	case actor.Role == models.UserRoleManager:
		managed, err := i.teamStore.ListManagedTeamIDs(actor.UserID)
		if err != nil {
			return nil, nil, err
		}
		if filter.TeamID != "" {
			if !contains(managed, filter.TeamID) {
				return nil, nil, apperrors.NotAuthorized("not authorized to export this team")
			}
			managed = []string{filter.TeamID}
		}
		if len(managed) == 0 {
			// A manager with no assignments exports nothing but their own requests.
			return []string{actor.UserID}, nil, nil
		}
		members, err := i.memberIDs(managed)
		if err != nil {
			return nil, nil, err
		}
		if filter.UserID != "" {
			if !contains(members, filter.UserID) && filter.UserID != actor.UserID {
				return nil, nil, apperrors.NotAuthorized("not authorized to export this user")
			}
			return []string{filter.UserID}, nil, nil
		}
		if !contains(members, actor.UserID) {
			members = append(members, actor.UserID)
		}
		return members, nil, nil
	default:
		return []string{actor.UserID}, nil, nil
	}
}

func (i impl) memberIDs(teamIDs []string) (ids []string, err error) {
	seen := map[string]struct{}{}
	for _, teamID := range teamIDs {
		members, err := i.teamStore.ListMemberIDs(teamID)
		if err != nil {
			return nil, err
		}
		for _, id := range members {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
