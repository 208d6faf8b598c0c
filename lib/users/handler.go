// Package users manages company accounts. New users enter through the invite
// flow: the account is created inactive and activates when the invitee sets
// a password with the emailed token.
package users

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"vacation-planner-backend/config"
	"vacation-planner-backend/db"
	"vacation-planner-backend/lib/audit"
	authstore "vacation-planner-backend/lib/auth/store"
	departmentstore "vacation-planner-backend/lib/department/store"
	"vacation-planner-backend/lib/smtp"
	usersstore "vacation-planner-backend/lib/users/store"
	"vacation-planner-backend/lib/utils/apperrors"
	"vacation-planner-backend/models"
	userapimodels "vacation-planner-backend/models/api/user"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Invite(actor models.Actor, payload userapimodels.InviteUser) (userapimodels.InviteResponse, error)
	Update(actor models.Actor, userID string, payload userapimodels.UpdateUser) (userapimodels.User, error)
	Deactivate(actor models.Actor, userID string) error
	ResetPassword(actor models.Actor, userID string) error
	GetByID(actor models.Actor, userID string) (userapimodels.User, error)
	List(actor models.Actor, filter userapimodels.UserFilter) ([]userapimodels.User, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           usersstore.NewInstance(db.DB),
		authStore:       authstore.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
		auditor:         audit.Instance,
	}
}

type impl struct {
	store           usersstore.Provider
	authStore       authstore.Provider
	departmentStore departmentstore.Provider
	auditor         audit.Provider
}

// checkDepartment verifies the department exists in the actor's company.
func (i impl) checkDepartment(actor models.Actor, departmentID string) error {
	dept, err := i.departmentStore.GetByID(departmentID)
	if err != nil {
		log.WithField("department_id", departmentID).WithError(err).Error("failed to load department")
		return err
	}
	if dept == nil || dept.CompanyID != actor.CompanyID {
		return apperrors.NotFound("department not found")
	}
	return nil
}

func (i impl) Invite(actor models.Actor, payload userapimodels.InviteUser) (out userapimodels.InviteResponse, err error) {
	logger := log.WithField("email", payload.Email)

	if payload.CompanyID != "" && payload.CompanyID != actor.CompanyID {
		return out, apperrors.NotAuthorized("cannot invite users into another company")
	}
	exists, err := i.store.ExistByEmail(payload.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check email uniqueness")
		return out, err
	}
	if exists {
		return out, apperrors.Conflict("user with this email already exists")
	}

	var departmentID *string
	if payload.DepartmentID != "" {
		if err = i.checkDepartment(actor, payload.DepartmentID); err != nil {
			return out, err
		}
		departmentID = &payload.DepartmentID
	}

	userID, err := i.store.Create(dbmodels.User{
		Email:        payload.Email,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Role:         models.UserRoleUser,
		CompanyID:    actor.CompanyID,
		DepartmentID: departmentID,
		IsActive:     false,
	})
	if err != nil {
		logger.WithError(err).Error("failed to create invited user")
		return out, err
	}

	token := uuid.NewString()
	createdBy := actor.UserID
	err = i.authStore.CreateInviteToken(dbmodels.InviteToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Duration(config.Conf.Auth.InviteTTLInHours) * time.Hour),
		CreatedBy: &createdBy,
	})
	if err != nil {
		logger.WithError(err).Error("failed to create invite token")
		return out, err
	}

	if smtp.Instance.IsConfigured() {
		link := fmt.Sprintf("%s/set-password?token=%s", config.Conf.Smtp.DomainForAppLinks, token)
		mailErr := smtp.Instance.SendEMail(payload.Email, "You have been invited",
			fmt.Sprintf("Hello %s,\n\nAn account has been created for you. Set your password here: %s\n", payload.FirstName, link))
		if mailErr != nil {
			logger.WithError(mailErr).Warn("failed to send invite email")
		}
	}

	i.auditor.Log(auditActor(actor), models.AuditUserCreated, "user", userID, map[string]interface{}{
		"email": payload.Email,
	})
	return userapimodels.InviteResponse{UserID: userID, InviteToken: token}, nil
}

func (i impl) Update(actor models.Actor, userID string, payload userapimodels.UpdateUser) (out userapimodels.User, err error) {
	user, err := i.loadScoped(actor, userID)
	if err != nil {
		return out, err
	}
	if user.ID != actor.UserID && !actor.Role.IsAdmin() {
		return out, apperrors.NotAuthorized("not authorized to update this user")
	}

	updMap := map[string]interface{}{}
	if payload.FirstName != nil {
		updMap["first_name"] = *payload.FirstName
	}
	if payload.LastName != nil {
		updMap["last_name"] = *payload.LastName
	}
	if payload.DepartmentID != nil {
		if *payload.DepartmentID == "" {
			updMap["department_id"] = nil
		} else {
			if err = i.checkDepartment(actor, *payload.DepartmentID); err != nil {
				return out, err
			}
			updMap["department_id"] = *payload.DepartmentID
		}
	}
	if len(updMap) > 0 {
		if err = i.store.Update(user.ID, updMap); err != nil {
			log.WithField("user_id", user.ID).WithError(err).Error("failed to update user")
			return out, err
		}
		i.auditor.Log(auditActor(actor), models.AuditUserUpdated, "user", user.ID, nil)
	}
	updated, err := i.store.GetByID(user.ID)
	if err != nil || updated == nil {
		return out, err
	}
	return updated.ToModel(), nil
}

func (i impl) Deactivate(actor models.Actor, userID string) error {
	user, err := i.loadScoped(actor, userID)
	if err != nil {
		return err
	}
	if user.ID == actor.UserID {
		return apperrors.Validation("cannot deactivate your own account")
	}
	if err = i.store.Update(user.ID, map[string]interface{}{"is_active": false}); err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("failed to deactivate user")
		return err
	}
	// Kill live sessions so the deactivation takes effect immediately.
	if err = i.authStore.RevokeAllForUser(user.ID, time.Now()); err != nil {
		log.WithField("user_id", user.ID).WithError(err).Warn("failed to revoke sessions of deactivated user")
	}
	i.auditor.Log(auditActor(actor), models.AuditUserDeactivated, "user", user.ID, map[string]interface{}{
		"email": user.Email,
	})
	return nil
}

// ResetPassword invalidates the user's password and sessions. The account
// stays inactive until the user completes the password reset flow.
func (i impl) ResetPassword(actor models.Actor, userID string) error {
	user, err := i.loadScoped(actor, userID)
	if err != nil {
		return err
	}
	err = i.store.Update(user.ID, map[string]interface{}{
		"hashed_password": "",
		"is_active":       false,
	})
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("failed to reset user password")
		return err
	}
	if err = i.authStore.RevokeAllForUser(user.ID, time.Now()); err != nil {
		log.WithField("user_id", user.ID).WithError(err).Warn("failed to revoke sessions after password reset")
	}
	i.auditor.Log(auditActor(actor), models.AuditUserPasswordReset, "user", user.ID, map[string]interface{}{
		"email": user.Email,
	})
	return nil
}

func (i impl) GetByID(actor models.Actor, userID string) (out userapimodels.User, err error) {
	user, err := i.loadScoped(actor, userID)
	if err != nil {
		return out, err
	}
	if user.ID != actor.UserID && !actor.Role.IsManager() {
		return out, apperrors.NotAuthorized("not authorized to view this user")
	}
	return user.ToModel(), nil
}

func (i impl) List(actor models.Actor, filter userapimodels.UserFilter) (list []userapimodels.User, err error) {
	recs, err := i.store.List(actor.CompanyID, models.UserRole(filter.Role), filter.DepartmentID)
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to list users")
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// loadScoped hides users of other companies behind not-found.
func (i impl) loadScoped(actor models.Actor, userID string) (*dbmodels.User, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load user")
		return nil, err
	}
	if user == nil || user.CompanyID != actor.CompanyID {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

func auditActor(actor models.Actor) audit.Actor {
	return audit.Actor{UserID: actor.UserID, CompanyID: actor.CompanyID, IPAddress: actor.IPAddress}
}
