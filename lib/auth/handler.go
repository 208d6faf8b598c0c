package auth

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"vacation-planner-backend/config"
	"vacation-planner-backend/db"
	"vacation-planner-backend/lib/auth/lockout"
	authstore "vacation-planner-backend/lib/auth/store"
	"vacation-planner-backend/lib/smtp"
	usersstore "vacation-planner-backend/lib/users/store"
	"vacation-planner-backend/lib/utils/apperrors"
	authutils "vacation-planner-backend/lib/utils/authutils"
	"vacation-planner-backend/middleware"
	authapimodels "vacation-planner-backend/models/api/auth"
	userapimodels "vacation-planner-backend/models/api/user"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Login(email, password string) (resp authapimodels.JWTResponse, err error)
	RefreshToken(refreshToken string) (resp authapimodels.JWTResponse, err error)
	Logout(userID string) error
	Me(ctx *fiber.Ctx) (user userapimodels.User, err error)
	SetPassword(token, password string) (user userapimodels.User, err error)
	PasswordResetRequest(email string) error
	PasswordResetConfirm(resetCode, newPassword string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
		authStore:  authstore.NewInstance(db.DB),
		lockout: lockout.New(config.Conf.Auth.LockoutMaxAttempts,
			time.Duration(config.Conf.Auth.LockoutWindowInSec)*time.Second),
	}
}

type impl struct {
	usersStore usersstore.Provider
	authStore  authstore.Provider
	lockout    *lockout.Store
}

func (i impl) Login(email, password string) (resp authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)

	allowed, retryAfter := i.lockout.Allowed(email)
	if !allowed {
		logger.Warn("login attempt on a locked account")
		return resp, apperrors.NotAuthorized(fmt.Sprintf(
			"account locked due to too many failed attempts, try again in %d seconds", int(retryAfter.Seconds())))
	}

	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("failed to look up user on login")
		return resp, err
	}
	if user == nil || !user.IsActive || !authutils.CheckPassword(user.HashedPassword, password) {
		i.lockout.Fail(email)
		return resp, apperrors.NotAuthorized("invalid email or password")
	}
	i.lockout.Reset(email)

	resp, err = i.issueTokens(*user)
	if err != nil {
		logger.WithError(err).Error("failed to issue tokens")
		return resp, err
	}
	if err = i.usersStore.SetLastLogin(user.ID, time.Now()); err != nil {
		logger.WithError(err).Error("failed to store last login time")
	}
	return resp, nil
}

// RefreshToken rotates the refresh token: the presented jti is revoked and a
// new pair is issued. A revoked or unknown jti is rejected.
func (i impl) RefreshToken(refreshToken string) (resp authapimodels.JWTResponse, err error) {
	userID, jti, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return resp, apperrors.NotAuthorized("invalid refresh token")
	}
	stored, err := i.authStore.GetRefreshTokenByJTI(jti)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to look up refresh token")
		return resp, err
	}
	if stored == nil || stored.UserID != userID || !stored.IsActive(time.Now()) {
		return resp, apperrors.NotAuthorized("refresh token is expired or revoked")
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return resp, err
	}
	if user == nil || !user.IsActive {
		return resp, apperrors.NotAuthorized("user is not active")
	}
	if err = i.authStore.RevokeRefreshToken(jti, time.Now()); err != nil {
		return resp, err
	}
	return i.issueTokens(*user)
}

func (i impl) Logout(userID string) error {
	return i.authStore.RevokeAllForUser(userID, time.Now())
}

func (i impl) Me(ctx *fiber.Ctx) (user userapimodels.User, err error) {
	userID := middleware.GetUserID(ctx)
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return user, err
	}
	if rec == nil {
		return user, apperrors.NotFound("user not found")
	}
	return rec.ToModel(), nil
}

// SetPassword finishes the invite flow: validates the token, stores the
// password hash and activates the user.
func (i impl) SetPassword(token, password string) (user userapimodels.User, err error) {
	invite, err := i.authStore.GetInviteToken(token)
	if err != nil {
		return user, err
	}
	if invite == nil || !invite.IsUsable(time.Now()) {
		return user, apperrors.Validation("invite token is invalid or expired")
	}
	hash, err := authutils.HashPassword(password)
	if err != nil {
		return user, err
	}
	err = i.usersStore.Update(invite.UserID, map[string]interface{}{
		"hashed_password": hash,
		"is_active":       true,
	})
	if err != nil {
		log.WithField("user_id", invite.UserID).WithError(err).Error("failed to activate invited user")
		return user, err
	}
	if err = i.authStore.MarkInviteUsed(invite.ID, time.Now()); err != nil {
		log.WithField("user_id", invite.UserID).WithError(err).Error("failed to mark invite token as used")
	}
	rec, err := i.usersStore.GetByID(invite.UserID)
	if err != nil || rec == nil {
		return user, err
	}
	return rec.ToModel(), nil
}

func (i impl) PasswordResetRequest(email string) error {
	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		return err
	}
	// An unknown email gets the same response as a known one.
	if user == nil || !user.IsActive {
		return nil
	}
	rec := dbmodels.PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Duration(config.Conf.Auth.ResetTTLInHours) * time.Hour),
	}
	if err = i.authStore.CreateResetToken(rec); err != nil {
		return err
	}
	link := fmt.Sprintf("%s/reset-password?code=%s", config.Conf.Smtp.DomainForAppLinks, rec.Token)
	return smtp.Instance.SendEMail(user.Email, "Password reset",
		fmt.Sprintf("To reset your password follow the link: %s", link))
}

func (i impl) PasswordResetConfirm(resetCode, newPassword string) error {
	token, err := i.authStore.GetResetToken(resetCode)
	if err != nil {
		return err
	}
	if token == nil || !token.IsUsable(time.Now()) {
		return apperrors.Validation("reset code is invalid or expired")
	}
	hash, err := authutils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	err = i.usersStore.Update(token.UserID, map[string]interface{}{"hashed_password": hash})
	if err != nil {
		return err
	}
	if err = i.authStore.MarkResetUsed(token.ID, time.Now()); err != nil {
		log.WithField("user_id", token.UserID).WithError(err).Error("failed to mark reset token as used")
	}
	// A password change invalidates existing sessions.
	return i.authStore.RevokeAllForUser(token.UserID, time.Now())
}

func (i impl) issueTokens(user dbmodels.User) (resp authapimodels.JWTResponse, err error) {
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.CompanyID, user.Role)
	if err != nil {
		return resp, err
	}
	refreshToken, jti, expiresAt, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return resp, err
	}
	err = i.authStore.CreateRefreshToken(dbmodels.RefreshToken{
		UserID:    user.ID,
		TokenJTI:  jti,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return resp, err
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}
