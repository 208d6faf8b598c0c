package department

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vacation-planner-backend/lib/audit"
	"vacation-planner-backend/lib/utils/apperrors"
	"vacation-planner-backend/models"
	auditapimodels "vacation-planner-backend/models/api/audit"
	departmentapimodels "vacation-planner-backend/models/api/department"
	dbmodels "vacation-planner-backend/models/db"
)

type fakeDepartmentStore struct {
	departments map[string]*dbmodels.Department
}

func (f *fakeDepartmentStore) Create(rec dbmodels.Department) (string, error) {
	rec.ID = "dept-created"
	f.departments[rec.ID] = &rec
	return rec.ID, nil
}
func (f *fakeDepartmentStore) GetByID(departmentID string) (*dbmodels.Department, error) {
	return f.departments[departmentID], nil
}
func (f *fakeDepartmentStore) ListByCompany(companyID string) ([]dbmodels.Department, error) {
	var list []dbmodels.Department
	for _, rec := range f.departments {
		if rec.CompanyID == companyID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakeAuditor struct{}

func (f *fakeAuditor) Log(actor audit.Actor, action models.AuditAction, resourceType, resourceID string, details map[string]interface{}) {
}
func (f *fakeAuditor) List(companyID string, filter auditapimodels.AuditFilter, page, limit int) ([]auditapimodels.AuditLog, int64, error) {
	return nil, 0, nil
}

func newTestImpl() (impl, *fakeDepartmentStore) {
	store := &fakeDepartmentStore{departments: map[string]*dbmodels.Department{}}
	return impl{store: store, auditor: &fakeAuditor{}}, store
}

func adminActor() models.Actor {
	return models.Actor{UserID: "admin-1", CompanyID: "company-1", Role: models.UserRoleAdmin}
}

func TestDepartmentCreate(t *testing.T) {
	t.Run(`creates a department in the actor's company`, func(t *testing.T) {
		handler, store := newTestImpl()
		out, err := handler.Create(adminActor(), departmentapimodels.CreateDepartment{Name: "Engineering"})
		require.NoError(t, err)
		require.Equal(t, "Engineering", out.Name)
		require.Equal(t, "company-1", store.departments[out.ID].CompanyID)
	})
}

func TestDepartmentGet(t *testing.T) {
	t.Run(`returns own-company department`, func(t *testing.T) {
		handler, store := newTestImpl()
		store.departments["dept-1"] = &dbmodels.Department{
			BaseModel: dbmodels.BaseModel{ID: "dept-1"},
			CompanyID: "company-1",
			Name:      "Sales",
		}
		out, err := handler.GetByID(adminActor(), "dept-1")
		require.NoError(t, err)
		require.Equal(t, "Sales", out.Name)
	})
	t.Run(`hides another company's department as not found`, func(t *testing.T) {
		handler, store := newTestImpl()
		store.departments["dept-2"] = &dbmodels.Department{
			BaseModel: dbmodels.BaseModel{ID: "dept-2"},
			CompanyID: "company-2",
			Name:      "Sales",
		}
		_, err := handler.GetByID(adminActor(), "dept-2")
		require.Error(t, err)
		require.Equal(t, 404, apperrors.StatusOf(err))
	})
}
