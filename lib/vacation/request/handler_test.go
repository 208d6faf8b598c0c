package request

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"vacation-planner-backend/lib/audit"
	"vacation-planner-backend/lib/utils/apperrors"
	"vacation-planner-backend/models"
	auditapimodels "vacation-planner-backend/models/api/audit"
	vacationapimodels "vacation-planner-backend/models/api/vacation"
	dbmodels "vacation-planner-backend/models/db"
)

type fakeRequestStore struct {
	byID      map[string]*dbmodels.VacationRequest
	active    []dbmodels.VacationRequest
	created   []dbmodels.VacationRequest
	updates   map[string]map[string]interface{}
	sums      map[models.VacationStatus]float64
	pending   []dbmodels.VacationRequest
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{
		byID:    map[string]*dbmodels.VacationRequest{},
		updates: map[string]map[string]interface{}{},
		sums:    map[models.VacationStatus]float64{},
	}
}

func (f *fakeRequestStore) Create(rec dbmodels.VacationRequest) (string, error) {
	rec.ID = "req-created"
	f.created = append(f.created, rec)
	f.byID[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeRequestStore) Update(requestID string, updMap map[string]interface{}) error {
	f.updates[requestID] = updMap
	if rec, ok := f.byID[requestID]; ok {
		if status, ok := updMap["status"].(models.VacationStatus); ok {
			rec.Status = status
		}
	}
	return nil
}

func (f *fakeRequestStore) GetByID(requestID string) (*dbmodels.VacationRequest, error) {
	return f.byID[requestID], nil
}

func (f *fakeRequestStore) ListByUser(userID string, filter vacationapimodels.VacationRequestFilter) ([]dbmodels.VacationRequest, error) {
	return f.active, nil
}

func (f *fakeRequestStore) ListActiveByUser(userID string) ([]dbmodels.VacationRequest, error) {
	return f.active, nil
}

func (f *fakeRequestStore) SumDays(userID, periodID string, status models.VacationStatus) (float64, error) {
	return f.sums[status], nil
}

func (f *fakeRequestStore) ListPendingByTeams(teamIDs []string) ([]dbmodels.VacationRequest, error) {
	return f.pending, nil
}

func (f *fakeRequestStore) ListPendingWithTeam(companyID string) ([]dbmodels.VacationRequest, error) {
	return f.pending, nil
}

func (f *fakeRequestStore) ListForExport(companyID string, userIDs, teamIDs []string, filter vacationapimodels.ExportFilter) ([]dbmodels.VacationRequest, error) {
	return nil, nil
}

type fakePeriodStore struct {
	periods []dbmodels.VacationPeriod
}

func (f *fakePeriodStore) Create(rec dbmodels.VacationPeriod) (string, error) { return "", nil }
func (f *fakePeriodStore) Update(periodID string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakePeriodStore) Delete(periodID string) error { return nil }
func (f *fakePeriodStore) GetByID(companyID, periodID string) (*dbmodels.VacationPeriod, error) {
	for idx := range f.periods {
		if f.periods[idx].ID == periodID {
			return &f.periods[idx], nil
		}
	}
	return nil, nil
}
func (f *fakePeriodStore) ListByCompany(companyID string) ([]dbmodels.VacationPeriod, error) {
	return f.periods, nil
}
func (f *fakePeriodStore) GetDefault(companyID string) (*dbmodels.VacationPeriod, error) {
	return nil, nil
}
func (f *fakePeriodStore) UnsetDefaults(companyID, exceptID string) error { return nil }

type fakeAllocationStore struct {
	allocation *dbmodels.VacationAllocation
}

func (f *fakeAllocationStore) Create(rec dbmodels.VacationAllocation) (string, error) {
	return "", nil
}
func (f *fakeAllocationStore) Update(allocationID string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeAllocationStore) Delete(allocationID string) error { return nil }
func (f *fakeAllocationStore) GetByID(allocationID string) (*dbmodels.VacationAllocation, error) {
	return f.allocation, nil
}
func (f *fakeAllocationStore) GetByUserAndPeriod(userID, periodID string) (*dbmodels.VacationAllocation, error) {
	return f.allocation, nil
}
func (f *fakeAllocationStore) ListByPeriod(periodID string) ([]dbmodels.VacationAllocation, error) {
	return nil, nil
}
func (f *fakeAllocationStore) ListByUser(userID string) ([]dbmodels.VacationAllocation, error) {
	return nil, nil
}

type fakeTeamStore struct {
	members  map[string]bool
	managers map[string]bool
	managed  []string
}

func (f *fakeTeamStore) Create(rec dbmodels.Team) (string, error)              { return "", nil }
func (f *fakeTeamStore) Update(teamID string, u map[string]interface{}) error  { return nil }
func (f *fakeTeamStore) Delete(teamID string) error                            { return nil }
func (f *fakeTeamStore) GetByID(teamID string) (*dbmodels.Team, error)         { return nil, nil }
func (f *fakeTeamStore) ListByCompany(companyID string) ([]dbmodels.Team, error) {
	return nil, nil
}
func (f *fakeTeamStore) AddMember(userID, teamID string) error    { return nil }
func (f *fakeTeamStore) RemoveMember(userID, teamID string) error { return nil }
func (f *fakeTeamStore) IsMember(userID, teamID string) (bool, error) {
	return f.members[userID+"/"+teamID], nil
}
func (f *fakeTeamStore) ListMemberIDs(teamID string) ([]string, error) { return nil, nil }
func (f *fakeTeamStore) AssignManager(userID, teamID string) error     { return nil }
func (f *fakeTeamStore) RemoveManager(userID, teamID string) (bool, error) {
	return false, nil
}
func (f *fakeTeamStore) IsManagerOf(userID, teamID string) (bool, error) {
	return f.managers[userID+"/"+teamID], nil
}
func (f *fakeTeamStore) ListManagedTeamIDs(userID string) ([]string, error) {
	return f.managed, nil
}
func (f *fakeTeamStore) CountManagerAssignments(userID string) (int64, error) {
	return int64(len(f.managed)), nil
}

type fakeAuditor struct {
	actions []models.AuditAction
}

func (f *fakeAuditor) Log(actor audit.Actor, action models.AuditAction, resourceType, resourceID string, details map[string]interface{}) {
	f.actions = append(f.actions, action)
}

func (f *fakeAuditor) List(companyID string, filter auditapimodels.AuditFilter, page, limit int) ([]auditapimodels.AuditLog, int64, error) {
	return nil, 0, nil
}

func day(d int) time.Time {
	return time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)
}

func newTestImpl() (impl, *fakeRequestStore, *fakePeriodStore, *fakeAllocationStore, *fakeTeamStore, *fakeAuditor) {
	requests := newFakeRequestStore()
	periods := &fakePeriodStore{periods: []dbmodels.VacationPeriod{{
		BaseModel: dbmodels.BaseModel{ID: "period-2026"},
		CompanyID: "company-1",
		Name:      "2026",
		StartDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	}}}
	allocations := &fakeAllocationStore{}
	teams := &fakeTeamStore{members: map[string]bool{}, managers: map[string]bool{}}
	auditor := &fakeAuditor{}
	handler := impl{
		requestStore:    requests,
		periodStore:     periods,
		allocationStore: allocations,
		teamStore:       teams,
		auditor:         auditor,
		defaultDays:     decimal.NewFromInt(25),
	}
	return handler, requests, periods, allocations, teams, auditor
}

func owner() models.Actor {
	return models.Actor{UserID: "user-1", CompanyID: "company-1", Role: models.UserRoleUser}
}

func TestCreateVacationRequest(t *testing.T) {
	t.Run(`creates a pending request with business day count`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		// Mon Jun 1 .. Fri Jun 5 2026
		out, err := handler.Create(owner(), vacationapimodels.CreateVacationRequest{
			StartDate: vacationapimodels.Date{Time: day(1)},
			EndDate:   vacationapimodels.Date{Time: day(5)},
		})
		require.NoError(t, err)
		require.Equal(t, "pending", out.Status)
		require.Equal(t, 5.0, out.DaysCount)
		require.Len(t, requests.created, 1)
		require.Equal(t, models.VacationStatusPending, requests.created[0].Status)
		require.NotNil(t, requests.created[0].VacationPeriodID)
		require.Equal(t, "period-2026", *requests.created[0].VacationPeriodID)
	})

	t.Run(`rejects end date before start date`, func(t *testing.T) {
		handler, _, _, _, _, _ := newTestImpl()
		_, err := handler.Create(owner(), vacationapimodels.CreateVacationRequest{
			StartDate: vacationapimodels.Date{Time: day(5)},
			EndDate:   vacationapimodels.Date{Time: day(1)},
		})
		require.Error(t, err)
		require.Equal(t, 400, apperrors.StatusOf(err))
	})

	t.Run(`rejects dates outside every period`, func(t *testing.T) {
		handler, _, periods, _, _, _ := newTestImpl()
		periods.periods = nil
		_, err := handler.Create(owner(), vacationapimodels.CreateVacationRequest{
			StartDate: vacationapimodels.Date{Time: day(1)},
			EndDate:   vacationapimodels.Date{Time: day(5)},
		})
		require.Error(t, err)
		require.Equal(t, 409, apperrors.StatusOf(err))
		require.Contains(t, err.Error(), "no vacation period")
	})

	t.Run(`rejects insufficient balance with requested and remaining amounts`, func(t *testing.T) {
		handler, requests, _, allocations, _, _ := newTestImpl()
		allocations.allocation = &dbmodels.VacationAllocation{
			UserID:           "user-1",
			VacationPeriodID: "period-2026",
			TotalDays:        30,
		}
		requests.sums[models.VacationStatusApproved] = 28
		_, err := handler.Create(owner(), vacationapimodels.CreateVacationRequest{
			StartDate: vacationapimodels.Date{Time: day(1)},
			EndDate:   vacationapimodels.Date{Time: day(5)},
		})
		require.Error(t, err)
		require.Equal(t, 409, apperrors.StatusOf(err))
		require.Contains(t, err.Error(), "Requested: 5")
		require.Contains(t, err.Error(), "Remaining: 2")
	})

	t.Run(`allows exact balance use`, func(t *testing.T) {
		handler, requests, _, allocations, _, _ := newTestImpl()
		allocations.allocation = &dbmodels.VacationAllocation{
			UserID:           "user-1",
			VacationPeriodID: "period-2026",
			TotalDays:        30,
		}
		requests.sums[models.VacationStatusApproved] = 25
		_, err := handler.Create(owner(), vacationapimodels.CreateVacationRequest{
			StartDate: vacationapimodels.Date{Time: day(1)},
			EndDate:   vacationapimodels.Date{Time: day(5)},
		})
		require.NoError(t, err)
	})

	t.Run(`skips the balance check when no allocation exists`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		requests.sums[models.VacationStatusApproved] = 100
		_, err := handler.Create(owner(), vacationapimodels.CreateVacationRequest{
			StartDate: vacationapimodels.Date{Time: day(1)},
			EndDate:   vacationapimodels.Date{Time: day(5)},
		})
		require.NoError(t, err)
	})

	t.Run(`rejects overlap including touching boundaries`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		requests.active = []dbmodels.VacationRequest{{
			StartDate: day(5),
			EndDate:   day(9),
			Status:    models.VacationStatusPending,
		}}
		_, err := handler.Create(owner(), vacationapimodels.CreateVacationRequest{
			StartDate: vacationapimodels.Date{Time: day(1)},
			EndDate:   vacationapimodels.Date{Time: day(5)},
		})
		require.Error(t, err)
		require.Equal(t, 409, apperrors.StatusOf(err))
		require.Contains(t, err.Error(), "overlapping")
	})

	t.Run(`rejects a team the user does not belong to`, func(t *testing.T) {
		handler, _, _, _, _, _ := newTestImpl()
		teamID := "team-1"
		_, err := handler.Create(owner(), vacationapimodels.CreateVacationRequest{
			StartDate: vacationapimodels.Date{Time: day(1)},
			EndDate:   vacationapimodels.Date{Time: day(5)},
			TeamID:    &teamID,
		})
		require.Error(t, err)
		require.Equal(t, 400, apperrors.StatusOf(err))
	})
}

func pendingRequest(teamID string) *dbmodels.VacationRequest {
	rec := &dbmodels.VacationRequest{
		BaseModel: dbmodels.BaseModel{ID: "req-1"},
		UserID:    "user-1",
		StartDate: day(1),
		EndDate:   day(5),
		Status:    models.VacationStatusPending,
		User: &dbmodels.User{
			BaseModel: dbmodels.BaseModel{ID: "user-1"},
			CompanyID: "company-1",
		},
	}
	if teamID != "" {
		rec.TeamID = &teamID
	}
	return rec
}

func TestDecideVacationRequest(t *testing.T) {
	admin := models.Actor{UserID: "admin-1", CompanyID: "company-1", Role: models.UserRoleAdmin}
	manager := models.Actor{UserID: "mgr-1", CompanyID: "company-1", Role: models.UserRoleManager}

	t.Run(`admin approves a pending request`, func(t *testing.T) {
		handler, requests, _, _, _, auditor := newTestImpl()
		requests.byID["req-1"] = pendingRequest("team-1")
		out, err := handler.Decide(admin, "req-1", vacationapimodels.VacationRequestAction{Action: "approve"})
		require.NoError(t, err)
		require.Equal(t, "approved", out.Status)
		require.Equal(t, models.VacationStatusApproved, requests.updates["req-1"]["status"])
		require.Equal(t, "admin-1", requests.updates["req-1"]["approver_id"])
		require.Contains(t, auditor.actions, models.AuditRequestApproved)
	})

	t.Run(`manager of the team rejects a pending request`, func(t *testing.T) {
		handler, requests, _, _, teams, _ := newTestImpl()
		requests.byID["req-1"] = pendingRequest("team-1")
		teams.managers["mgr-1/team-1"] = true
		out, err := handler.Decide(manager, "req-1", vacationapimodels.VacationRequestAction{Action: "reject"})
		require.NoError(t, err)
		require.Equal(t, "rejected", out.Status)
	})

	t.Run(`manager of another team is not authorized`, func(t *testing.T) {
		handler, requests, _, _, teams, _ := newTestImpl()
		requests.byID["req-1"] = pendingRequest("team-1")
		teams.managers["mgr-1/team-2"] = true
		_, err := handler.Decide(manager, "req-1", vacationapimodels.VacationRequestAction{Action: "approve"})
		require.Error(t, err)
		require.Equal(t, 403, apperrors.StatusOf(err))
	})

	t.Run(`manager cannot decide a request without a team`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		requests.byID["req-1"] = pendingRequest("")
		_, err := handler.Decide(manager, "req-1", vacationapimodels.VacationRequestAction{Action: "approve"})
		require.Error(t, err)
		require.Equal(t, 403, apperrors.StatusOf(err))
	})

	t.Run(`re-deciding a terminal request fails`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		rec := pendingRequest("team-1")
		rec.Status = models.VacationStatusApproved
		requests.byID["req-1"] = rec
		_, err := handler.Decide(admin, "req-1", vacationapimodels.VacationRequestAction{Action: "reject"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "can only act on pending requests")
	})

	t.Run(`request of another company reads as not found`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		rec := pendingRequest("team-1")
		rec.User.CompanyID = "company-2"
		requests.byID["req-1"] = rec
		_, err := handler.Decide(admin, "req-1", vacationapimodels.VacationRequestAction{Action: "approve"})
		require.Error(t, err)
		require.Equal(t, 404, apperrors.StatusOf(err))
	})
}

func TestCancelVacationRequest(t *testing.T) {
	t.Run(`owner cancels own pending request`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		requests.byID["req-1"] = pendingRequest("")
		out, err := handler.Cancel(owner(), "req-1")
		require.NoError(t, err)
		require.Equal(t, "cancelled", out.Status)
	})

	t.Run(`re-cancelling fails`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		rec := pendingRequest("")
		rec.Status = models.VacationStatusCancelled
		requests.byID["req-1"] = rec
		_, err := handler.Cancel(owner(), "req-1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "can only cancel pending requests")
	})

	t.Run(`another user cannot cancel`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		requests.byID["req-1"] = pendingRequest("")
		other := models.Actor{UserID: "user-2", CompanyID: "company-1", Role: models.UserRoleUser}
		_, err := handler.Cancel(other, "req-1")
		require.Error(t, err)
		require.Equal(t, 403, apperrors.StatusOf(err))
	})
}

func TestModifyVacationRequest(t *testing.T) {
	admin := models.Actor{UserID: "admin-1", CompanyID: "company-1", Role: models.UserRoleAdmin}

	t.Run(`modify updates fields without recomputing day count`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		rec := pendingRequest("team-1")
		rec.DaysCount = 5
		requests.byID["req-1"] = rec
		newEnd := vacationapimodels.Date{Time: day(12)}
		_, err := handler.Modify(admin, "req-1", vacationapimodels.ModifyVacationRequest{EndDate: &newEnd})
		require.NoError(t, err)
		updMap := requests.updates["req-1"]
		require.Contains(t, updMap, "end_date")
		require.NotContains(t, updMap, "days_count")
	})

	t.Run(`modify is permitted on terminal requests`, func(t *testing.T) {
		handler, requests, _, _, _, _ := newTestImpl()
		rec := pendingRequest("team-1")
		rec.Status = models.VacationStatusApproved
		requests.byID["req-1"] = rec
		reason := "moved dates"
		_, err := handler.Modify(admin, "req-1", vacationapimodels.ModifyVacationRequest{Reason: &reason})
		require.NoError(t, err)
		require.Contains(t, requests.updates["req-1"], "reason")
	})
}
