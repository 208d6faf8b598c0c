// Package team manages teams, their members and manager assignments.
// Assigning a manager promotes a plain user to the manager role; removing a
// user's last assignment demotes them back. Admins keep their role.
package team

import (
	log "github.com/sirupsen/logrus"

	"vacation-planner-backend/db"
	"vacation-planner-backend/lib/audit"
	teamstore "vacation-planner-backend/lib/team/store"
	usersstore "vacation-planner-backend/lib/users/store"
	"vacation-planner-backend/lib/utils/apperrors"
	"vacation-planner-backend/models"
	teamapimodels "vacation-planner-backend/models/api/team"
	userapimodels "vacation-planner-backend/models/api/user"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(actor models.Actor, payload teamapimodels.CreateTeam) (teamapimodels.Team, error)
	Update(actor models.Actor, teamID string, payload teamapimodels.UpdateTeam) (teamapimodels.Team, error)
	Delete(actor models.Actor, teamID string) error
	GetByID(actor models.Actor, teamID string) (teamapimodels.Team, error)
	List(actor models.Actor) ([]teamapimodels.Team, error)

	AddMember(actor models.Actor, teamID, userID string) error
	RemoveMember(actor models.Actor, teamID, userID string) error
	ListMembers(actor models.Actor, teamID string) ([]userapimodels.User, error)

	AssignManager(actor models.Actor, teamID, userID string) error
	RemoveManager(actor models.Actor, teamID, userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      teamstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
		auditor:    audit.Instance,
	}
}

type impl struct {
	store      teamstore.Provider
	usersStore usersstore.Provider
	auditor    audit.Provider
}

func (i impl) Create(actor models.Actor, payload teamapimodels.CreateTeam) (out teamapimodels.Team, err error) {
	id, err := i.store.Create(dbmodels.Team{
		CompanyID: actor.CompanyID,
		Name:      payload.Name,
	})
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to create team")
		return out, err
	}
	i.auditor.Log(auditActor(actor), models.AuditTeamCreated, "team", id, map[string]interface{}{
		"name": payload.Name,
	})
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		return out, err
	}
	return created.ToModel(), nil
}

func (i impl) Update(actor models.Actor, teamID string, payload teamapimodels.UpdateTeam) (out teamapimodels.Team, err error) {
	team, err := i.loadScoped(actor, teamID)
	if err != nil {
		return out, err
	}
	if err = i.store.Update(team.ID, map[string]interface{}{"name": payload.Name}); err != nil {
		log.WithField("team_id", team.ID).WithError(err).Error("failed to update team")
		return out, err
	}
	i.auditor.Log(auditActor(actor), models.AuditTeamUpdated, "team", team.ID, map[string]interface{}{
		"name": payload.Name,
	})
	updated, err := i.store.GetByID(team.ID)
	if err != nil || updated == nil {
		return out, err
	}
	return updated.ToModel(), nil
}

func (i impl) Delete(actor models.Actor, teamID string) error {
	team, err := i.loadScoped(actor, teamID)
	if err != nil {
		return err
	}
	if err = i.store.Delete(team.ID); err != nil {
		log.WithField("team_id", team.ID).WithError(err).Error("failed to delete team")
		return err
	}
	i.auditor.Log(auditActor(actor), models.AuditTeamDeleted, "team", team.ID, map[string]interface{}{
		"name": team.Name,
	})
	return nil
}

func (i impl) GetByID(actor models.Actor, teamID string) (out teamapimodels.Team, err error) {
	team, err := i.loadScoped(actor, teamID)
	if err != nil {
		return out, err
	}
	return team.ToModel(), nil
}

func (i impl) List(actor models.Actor) (list []teamapimodels.Team, err error) {
	recs, err := i.store.ListByCompany(actor.CompanyID)
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to list teams")
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) AddMember(actor models.Actor, teamID, userID string) error {
	team, user, err := i.loadTeamAndUser(actor, teamID, userID)
	if err != nil {
		return err
	}
	isMember, err := i.store.IsMember(user.ID, team.ID)
	if err != nil {
		return err
	}
	if isMember {
		return apperrors.Conflict("user is already a member of this team")
	}
	if err = i.store.AddMember(user.ID, team.ID); err != nil {
		log.WithField("team_id", team.ID).WithError(err).Error("failed to add team member")
		return err
	}
	i.auditor.Log(auditActor(actor), models.AuditTeamUpdated, "team", team.ID, map[string]interface{}{
		"member_added": user.ID,
	})
	return nil
}

func (i impl) RemoveMember(actor models.Actor, teamID, userID string) error {
	team, user, err := i.loadTeamAndUser(actor, teamID, userID)
	if err != nil {
		return err
	}
	isMember, err := i.store.IsMember(user.ID, team.ID)
	if err != nil {
		return err
	}
	if !isMember {
		return apperrors.NotFound("user is not a member of this team")
	}
	if err = i.store.RemoveMember(user.ID, team.ID); err != nil {
		log.WithField("team_id", team.ID).WithError(err).Error("failed to remove team member")
		return err
	}
	i.auditor.Log(auditActor(actor), models.AuditTeamUpdated, "team", team.ID, map[string]interface{}{
		"member_removed": user.ID,
	})
	return nil
}

func (i impl) ListMembers(actor models.Actor, teamID string) (list []userapimodels.User, err error) {
	team, err := i.loadScoped(actor, teamID)
	if err != nil {
		return nil, err
	}
	ids, err := i.store.ListMemberIDs(team.ID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	recs, err := i.usersStore.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) AssignManager(actor models.Actor, teamID, userID string) error {
	team, user, err := i.loadTeamAndUser(actor, teamID, userID)
	if err != nil {
		return err
	}
	already, err := i.store.IsManagerOf(user.ID, team.ID)
	if err != nil {
		return err
	}
	if already {
		return apperrors.Conflict("user already manages this team")
	}
	if err = i.store.AssignManager(user.ID, team.ID); err != nil {
		log.WithField("team_id", team.ID).WithError(err).Error("failed to assign manager")
		return err
	}
	if user.Role == models.UserRoleUser {
		if err = i.usersStore.Update(user.ID, map[string]interface{}{"role": models.UserRoleManager}); err != nil {
			log.WithField("user_id", user.ID).WithError(err).Error("failed to promote user to manager")
			return err
		}
	}
	i.auditor.Log(auditActor(actor), models.AuditManagerAssigned, "team", team.ID, map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}

func (i impl) RemoveManager(actor models.Actor, teamID, userID string) error {
	team, user, err := i.loadTeamAndUser(actor, teamID, userID)
	if err != nil {
		return err
	}
	found, err := i.store.RemoveManager(user.ID, team.ID)
	if err != nil {
		log.WithField("team_id", team.ID).WithError(err).Error("failed to remove manager")
		return err
	}
	if !found {
		return apperrors.NotFound("user does not manage this team")
	}
	if user.Role == models.UserRoleManager {
		remaining, err := i.store.CountManagerAssignments(user.ID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			if err = i.usersStore.Update(user.ID, map[string]interface{}{"role": models.UserRoleUser}); err != nil {
				log.WithField("user_id", user.ID).WithError(err).Error("failed to demote manager to user")
				return err
			}
		}
	}
	i.auditor.Log(auditActor(actor), models.AuditManagerRemoved, "team", team.ID, map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}

func (i impl) loadScoped(actor models.Actor, teamID string) (*dbmodels.Team, error) {
	team, err := i.store.GetByID(teamID)
	if err != nil {
		log.WithField("team_id", teamID).WithError(err).Error("failed to load team")
		return nil, err
	}
	if team == nil || team.CompanyID != actor.CompanyID {
		return nil, apperrors.NotFound("team not found")
	}
	return team, nil
}

func (i impl) loadTeamAndUser(actor models.Actor, teamID, userID string) (*dbmodels.Team, *dbmodels.User, error) {
	team, err := i.loadScoped(actor, teamID)
	if err != nil {
		return nil, nil, err
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || user.CompanyID != actor.CompanyID {
		return nil, nil, apperrors.NotFound("user not found")
	}
	return team, user, nil
}

func auditActor(actor models.Actor) audit.Actor {
	return audit.Actor{UserID: actor.UserID, CompanyID: actor.CompanyID, IPAddress: actor.IPAddress}
}
