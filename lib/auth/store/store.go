package authstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	CreateRefreshToken(rec dbmodels.RefreshToken) error
	GetRefreshTokenByJTI(jti string) (rec *dbmodels.RefreshToken, err error)
	RevokeRefreshToken(jti string, at time.Time) error
	RevokeAllForUser(userID string, at time.Time) error

	CreateInviteToken(rec dbmodels.InviteToken) error
	GetInviteToken(token string) (rec *dbmodels.InviteToken, err error)
	MarkInviteUsed(tokenID string, at time.Time) error

	CreateResetToken(rec dbmodels.PasswordResetToken) error
	GetResetToken(token string) (rec *dbmodels.PasswordResetToken, err error)
	MarkResetUsed(tokenID string, at time.Time) error

	DeleteExpiredTokens(before time.Time) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateRefreshToken(rec dbmodels.RefreshToken) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) GetRefreshTokenByJTI(jti string) (rec *dbmodels.RefreshToken, err error) {
	err = i.db.Model(dbmodels.RefreshToken{}).
		Where("token_jti = ?", jti).
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

func (i impl) RevokeRefreshToken(jti string, at time.Time) error {
	return i.db.
		Model(&dbmodels.RefreshToken{}).
		Where("token_jti = ? and revoked_at is null", jti).
		Update("revoked_at", at).
		Error
}

func (i impl) RevokeAllForUser(userID string, at time.Time) error {
	return i.db.
		Model(&dbmodels.RefreshToken{}).
		Where("user_id = ? and revoked_at is null", userID).
		Update("revoked_at", at).
		Error
}

func (i impl) CreateInviteToken(rec dbmodels.InviteToken) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) GetInviteToken(token string) (rec *dbmodels.InviteToken, err error) {
	err = i.db.Model(dbmodels.InviteToken{}).
		Where("token = ?", token).
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

func (i impl) MarkInviteUsed(tokenID string, at time.Time) error {
	return i.db.
		Model(&dbmodels.InviteToken{}).
		Where("id = ?", tokenID).
		Update("used_at", at).
		Error
}

func (i impl) CreateResetToken(rec dbmodels.PasswordResetToken) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) GetResetToken(token string) (rec *dbmodels.PasswordResetToken, err error) {
	err = i.db.Model(dbmodels.PasswordResetToken{}).
		Where("token = ?", token).
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

func (i impl) MarkResetUsed(tokenID string, at time.Time) error {
	return i.db.
		Model(&dbmodels.PasswordResetToken{}).
		Where("id = ?", tokenID).
		Update("used_at", at).
		Error
}

// DeleteExpiredTokens removes refresh, invite and reset tokens whose expiry
// is in the past. Returns the total number of rows removed.
func (i impl) DeleteExpiredTokens(before time.Time) (int64, error) {
	var total int64
	for _, model := range []interface{}{
		&dbmodels.RefreshToken{},
		&dbmodels.InviteToken{},
		&dbmodels.PasswordResetToken{},
	} {
		res := i.db.
			Where("expires_at < ?", before).
			Delete(model)
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
	}
	return total, nil
}
