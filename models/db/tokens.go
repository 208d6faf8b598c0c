package dbmodels

import "time"

// InviteToken activates an invited user once the password is set.
type InviteToken struct {
	BaseModel
	Token     string `gorm:"type:varchar(255);uniqueIndex"`
	UserID    string `gorm:"index"`
	User      *User  `gorm:"constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedBy *string
}

func (r InviteToken) IsUsable(now time.Time) bool {
	return r.UsedAt == nil && now.Before(r.ExpiresAt)
}

type PasswordResetToken struct {
	BaseModel
	Token     string `gorm:"type:varchar(255);uniqueIndex"`
	UserID    string `gorm:"index"`
	User      *User  `gorm:"constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time
	UsedAt    *time.Time
}

func (r PasswordResetToken) IsUsable(now time.Time) bool {
	return r.UsedAt == nil && now.Before(r.ExpiresAt)
}

// RefreshToken tracks issued refresh tokens by jti so rotation can revoke
// the previous one and reuse can be detected.
type RefreshToken struct {
	BaseModel
	UserID    string `gorm:"index"`
	User      *User  `gorm:"constraint:OnDelete:CASCADE"`
	TokenJTI  string `gorm:"type:varchar(255);uniqueIndex"`
	ExpiresAt time.Time `gorm:"index"`
	RevokedAt *time.Time
}

func (r RefreshToken) IsActive(now time.Time) bool {
	return r.RevokedAt == nil && now.Before(r.ExpiresAt)
}
