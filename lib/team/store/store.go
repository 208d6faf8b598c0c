package teamstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Team) (string, error)
	Update(teamID string, updMap map[string]interface{}) error
	Delete(teamID string) error
	GetByID(teamID string) (rec *dbmodels.Team, err error)
	ListByCompany(companyID string) (list []dbmodels.Team, err error)

	AddMember(userID, teamID string) error
	RemoveMember(userID, teamID string) error
	IsMember(userID, teamID string) (bool, error)
	ListMemberIDs(teamID string) ([]string, error)

	AssignManager(userID, teamID string) error
	RemoveManager(userID, teamID string) (found bool, err error)
	IsManagerOf(userID, teamID string) (bool, error)
	ListManagedTeamIDs(userID string) ([]string, error)
	CountManagerAssignments(userID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Team) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(teamID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Team{}).
		Where("id = ?", teamID).
		Updates(updMap).
		Error
}

func (i impl) Delete(teamID string) error {
	return i.db.
		Where("id = ?", teamID).
		Delete(&dbmodels.Team{}).
		Error
}

func (i impl) GetByID(teamID string) (rec *dbmodels.Team, err error) {
	err = i.db.Model(dbmodels.Team{}).
		Where("id = ?", teamID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListByCompany(companyID string) (list []dbmodels.Team, err error) {
	err = i.db.Model(dbmodels.Team{}).
		Where("company_id = ?", companyID).
		Order("name").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) AddMember(userID, teamID string) error {
	rec := dbmodels.TeamMembership{
		UserID:   userID,
		TeamID:   teamID,
		JoinedAt: time.Now(),
	}
	return i.db.
		Save(&rec).
		Error
}

func (i impl) RemoveMember(userID, teamID string) error {
	return i.db.
		Where("user_id = ? and team_id = ?", userID, teamID).
		Delete(&dbmodels.TeamMembership{}).
		Error
}

func (i impl) IsMember(userID, teamID string) (bool, error) {
	err := i.db.
		Where("user_id = ? and team_id = ?", userID, teamID).
		First(&dbmodels.TeamMembership{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) ListMemberIDs(teamID string) (ids []string, err error) {
	err = i.db.Model(dbmodels.TeamMembership{}).
		Where("team_id = ?", teamID).
		Pluck("user_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) AssignManager(userID, teamID string) error {
	rec := dbmodels.TeamManagerAssignment{
		UserID:     userID,
		TeamID:     teamID,
		AssignedAt: time.Now(),
	}
	return i.db.
		Save(&rec).
		Error
}

func (i impl) RemoveManager(userID, teamID string) (found bool, err error) {
	res := i.db.
		Where("user_id = ? and team_id = ?", userID, teamID).
		Delete(&dbmodels.TeamManagerAssignment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (i impl) IsManagerOf(userID, teamID string) (bool, error) {
	err := i.db.
		Where("user_id = ? and team_id = ?", userID, teamID).
		First(&dbmodels.TeamManagerAssignment{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) ListManagedTeamIDs(userID string) (ids []string, err error) {
	err = i.db.Model(dbmodels.TeamManagerAssignment{}).
		Where("user_id = ?", userID).
		Pluck("team_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) CountManagerAssignments(userID string) (count int64, err error) {
	err = i.db.Model(dbmodels.TeamManagerAssignment{}).
		Where("user_id = ?", userID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
