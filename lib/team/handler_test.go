package team

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vacation-planner-backend/lib/audit"
	"vacation-planner-backend/lib/utils/apperrors"
	"vacation-planner-backend/models"
	auditapimodels "vacation-planner-backend/models/api/audit"
	dbmodels "vacation-planner-backend/models/db"
)

type fakeTeamStore struct {
	teams       map[string]*dbmodels.Team
	memberships map[string]bool
	assignments map[string]bool
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{
		teams:       map[string]*dbmodels.Team{},
		memberships: map[string]bool{},
		assignments: map[string]bool{},
	}
}

func (f *fakeTeamStore) Create(rec dbmodels.Team) (string, error) {
	rec.ID = "team-created"
	f.teams[rec.ID] = &rec
	return rec.ID, nil
}
func (f *fakeTeamStore) Update(teamID string, updMap map[string]interface{}) error {
	if name, ok := updMap["name"].(string); ok {
		f.teams[teamID].Name = name
	}
	return nil
}
func (f *fakeTeamStore) Delete(teamID string) error {
	delete(f.teams, teamID)
	return nil
}
func (f *fakeTeamStore) GetByID(teamID string) (*dbmodels.Team, error) {
	return f.teams[teamID], nil
}
func (f *fakeTeamStore) ListByCompany(companyID string) ([]dbmodels.Team, error) {
	return nil, nil
}
func (f *fakeTeamStore) AddMember(userID, teamID string) error {
	f.memberships[userID+"/"+teamID] = true
	return nil
}
func (f *fakeTeamStore) RemoveMember(userID, teamID string) error {
	delete(f.memberships, userID+"/"+teamID)
	return nil
}
func (f *fakeTeamStore) IsMember(userID, teamID string) (bool, error) {
	return f.memberships[userID+"/"+teamID], nil
}
func (f *fakeTeamStore) ListMemberIDs(teamID string) ([]string, error) { return nil, nil }
func (f *fakeTeamStore) AssignManager(userID, teamID string) error {
	f.assignments[userID+"/"+teamID] = true
	return nil
}
func (f *fakeTeamStore) RemoveManager(userID, teamID string) (bool, error) {
	key := userID + "/" + teamID
	if !f.assignments[key] {
		return false, nil
	}
	delete(f.assignments, key)
	return true, nil
}
func (f *fakeTeamStore) IsManagerOf(userID, teamID string) (bool, error) {
	return f.assignments[userID+"/"+teamID], nil
}
func (f *fakeTeamStore) ListManagedTeamIDs(userID string) ([]string, error) { return nil, nil }
func (f *fakeTeamStore) CountManagerAssignments(userID string) (int64, error) {
	var count int64
	for key, ok := range f.assignments {
		if ok && strings.HasPrefix(key, userID+"/") {
			count++
		}
	}
	return count, nil
}

type fakeUsersStore struct {
	users   map[string]*dbmodels.User
	updates map[string]map[string]interface{}
}

func newFakeUsersStore() *fakeUsersStore {
	return &fakeUsersStore{users: map[string]*dbmodels.User{}, updates: map[string]map[string]interface{}{}}
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error) { return "", nil }
func (f *fakeUsersStore) Update(userID string, updMap map[string]interface{}) error {
	f.updates[userID] = updMap
	if role, ok := updMap["role"].(models.UserRole); ok {
		f.users[userID].Role = role
	}
	return nil
}
func (f *fakeUsersStore) GetByID(userID string) (*dbmodels.User, error) {
	return f.users[userID], nil
}
func (f *fakeUsersStore) FindByEmail(email string) (*dbmodels.User, error) { return nil, nil }
func (f *fakeUsersStore) ExistByEmail(email string) (bool, error)          { return false, nil }
func (f *fakeUsersStore) List(companyID string, role models.UserRole, departmentID string) ([]dbmodels.User, error) {
	return nil, nil
}
func (f *fakeUsersStore) ListByIDs(ids []string) ([]dbmodels.User, error) { return nil, nil }
func (f *fakeUsersStore) SetLastLogin(userID string, at time.Time) error  { return nil }

type fakeAuditor struct{}

func (f *fakeAuditor) Log(actor audit.Actor, action models.AuditAction, resourceType, resourceID string, details map[string]interface{}) {
}
func (f *fakeAuditor) List(companyID string, filter auditapimodels.AuditFilter, page, limit int) ([]auditapimodels.AuditLog, int64, error) {
	return nil, 0, nil
}

func newTestImpl() (impl, *fakeTeamStore, *fakeUsersStore) {
	teams := newFakeTeamStore()
	users := newFakeUsersStore()
	teams.teams["team-1"] = &dbmodels.Team{
		BaseModel: dbmodels.BaseModel{ID: "team-1"},
		CompanyID: "company-1",
		Name:      "Backend",
	}
	users.users["user-1"] = &dbmodels.User{
		BaseModel: dbmodels.BaseModel{ID: "user-1"},
		CompanyID: "company-1",
		Role:      models.UserRoleUser,
	}
	handler := impl{store: teams, usersStore: users, auditor: &fakeAuditor{}}
	return handler, teams, users
}

func adminActor() models.Actor {
	return models.Actor{UserID: "admin-1", CompanyID: "company-1", Role: models.UserRoleAdmin}
}

func TestManagerAssignment(t *testing.T) {
	t.Run(`assigning a manager promotes a plain user`, func(t *testing.T) {
		handler, teams, users := newTestImpl()
		err := handler.AssignManager(adminActor(), "team-1", "user-1")
		require.NoError(t, err)
		require.True(t, teams.assignments["user-1/team-1"])
		require.Equal(t, models.UserRoleManager, users.users["user-1"].Role)
	})

	t.Run(`assigning an admin keeps the admin role`, func(t *testing.T) {
		handler, _, users := newTestImpl()
		users.users["user-1"].Role = models.UserRoleAdmin
		err := handler.AssignManager(adminActor(), "team-1", "user-1")
		require.NoError(t, err)
		require.Equal(t, models.UserRoleAdmin, users.users["user-1"].Role)
	})

	t.Run(`duplicate assignment conflicts`, func(t *testing.T) {
		handler, teams, _ := newTestImpl()
		teams.assignments["user-1/team-1"] = true
		err := handler.AssignManager(adminActor(), "team-1", "user-1")
		require.Error(t, err)
		require.Equal(t, 409, apperrors.StatusOf(err))
	})

	t.Run(`removing the last assignment demotes the manager`, func(t *testing.T) {
		handler, _, users := newTestImpl()
		require.NoError(t, handler.AssignManager(adminActor(), "team-1", "user-1"))
		require.Equal(t, models.UserRoleManager, users.users["user-1"].Role)
		require.NoError(t, handler.RemoveManager(adminActor(), "team-1", "user-1"))
		require.Equal(t, models.UserRoleUser, users.users["user-1"].Role)
	})

	t.Run(`a second managed team keeps the manager role after one removal`, func(t *testing.T) {
		handler, teams, users := newTestImpl()
		teams.teams["team-2"] = &dbmodels.Team{
			BaseModel: dbmodels.BaseModel{ID: "team-2"},
			CompanyID: "company-1",
			Name:      "Frontend",
		}
		require.NoError(t, handler.AssignManager(adminActor(), "team-1", "user-1"))
		require.NoError(t, handler.AssignManager(adminActor(), "team-2", "user-1"))
		require.NoError(t, handler.RemoveManager(adminActor(), "team-1", "user-1"))
		require.Equal(t, models.UserRoleManager, users.users["user-1"].Role)
	})

	t.Run(`removing a missing assignment reads as not found`, func(t *testing.T) {
		handler, _, _ := newTestImpl()
		err := handler.RemoveManager(adminActor(), "team-1", "user-1")
		require.Error(t, err)
		require.Equal(t, 404, apperrors.StatusOf(err))
	})

	t.Run(`team of another company is hidden`, func(t *testing.T) {
		handler, teams, _ := newTestImpl()
		teams.teams["team-1"].CompanyID = "company-2"
		err := handler.AssignManager(adminActor(), "team-1", "user-1")
		require.Error(t, err)
		require.Equal(t, 404, apperrors.StatusOf(err))
	})
}

func TestTeamMembership(t *testing.T) {
	t.Run(`add and remove a member`, func(t *testing.T) {
		handler, teams, _ := newTestImpl()
		require.NoError(t, handler.AddMember(adminActor(), "team-1", "user-1"))
		require.True(t, teams.memberships["user-1/team-1"])
		require.NoError(t, handler.RemoveMember(adminActor(), "team-1", "user-1"))
		require.False(t, teams.memberships["user-1/team-1"])
	})

	t.Run(`duplicate membership conflicts`, func(t *testing.T) {
		handler, _, _ := newTestImpl()
		require.NoError(t, handler.AddMember(adminActor(), "team-1", "user-1"))
		err := handler.AddMember(adminActor(), "team-1", "user-1")
		require.Error(t, err)
		require.Equal(t, 409, apperrors.StatusOf(err))
	})
}
