package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"vacation-planner-backend/models"
	auditapimodels "vacation-planner-backend/models/api/audit"
)

type AuditDetails map[string]interface{}

func (j AuditDetails) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *AuditDetails) Scan(value any) error {
	if value == nil {
		return nil
	}
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type AuditLog struct {
	BaseModel
	ActorID      *string `gorm:"index"`
	Actor        *User   `gorm:"constraint:OnDelete:SET NULL"`
	CompanyID    string  `gorm:"index"`
	Action       models.AuditAction `gorm:"type:varchar(100);index"`
	ResourceType string             `gorm:"type:varchar(100);index:idx_audit_resource"`
	ResourceID   string             `gorm:"index:idx_audit_resource"`
	Details      AuditDetails       `gorm:"type:jsonb"`
	IPAddress    string             `gorm:"type:varchar(45)"`
}

func (r AuditLog) ToModel() auditapimodels.AuditLog {
	out := auditapimodels.AuditLog{
		ID:           r.ID,
		ActorID:      r.ActorID,
		Action:       string(r.Action),
		ResourceType: r.ResourceType,
		ResourceID:   r.ResourceID,
		Details:      r.Details,
		IPAddress:    r.IPAddress,
		CreatedAt:    r.CreatedAt,
	}
	if r.Actor != nil {
		out.ActorName = r.Actor.GetFullName()
	}
	return out
}
