package models

type VacationStatus string

const (
	VacationStatusPending   VacationStatus = "pending"
	VacationStatusApproved  VacationStatus = "approved"
	VacationStatusRejected  VacationStatus = "rejected"
	VacationStatusCancelled VacationStatus = "cancelled"
)

func (s VacationStatus) IsValid() bool {
	switch s {
	case VacationStatusPending, VacationStatusApproved, VacationStatusRejected, VacationStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from the status.
func (s VacationStatus) IsTerminal() bool {
	return s != VacationStatusPending
}

type VacationType string

const (
	VacationTypeAnnual   VacationType = "annual"
	VacationTypeSick     VacationType = "sick"
	VacationTypePersonal VacationType = "personal"
	VacationTypeUnpaid   VacationType = "unpaid"
)

func (t VacationType) IsValid() bool {
	switch t {
	case VacationTypeAnnual, VacationTypeSick, VacationTypePersonal, VacationTypeUnpaid:
		return true
	}
	return false
}

type AuditAction string

const (
	AuditUserCreated       AuditAction = "user_created"
	AuditUserUpdated       AuditAction = "user_updated"
	AuditUserDeactivated   AuditAction = "user_deactivated"
	AuditUserPasswordReset AuditAction = "user_password_reset"
	AuditDepartmentCreated AuditAction = "department_created"
	AuditTeamCreated       AuditAction = "team_created"
	AuditTeamUpdated       AuditAction = "team_updated"
	AuditTeamDeleted       AuditAction = "team_deleted"
	AuditManagerAssigned   AuditAction = "manager_assigned"
	AuditManagerRemoved    AuditAction = "manager_removed"
	AuditRequestApproved   AuditAction = "vacation_request_approved"
	AuditRequestRejected   AuditAction = "vacation_request_rejected"
	AuditRequestModified   AuditAction = "vacation_request_modified"
	AuditRequestCancelled  AuditAction = "vacation_request_cancelled"
	AuditPeriodCreated     AuditAction = "vacation_period_created"
	AuditPeriodUpdated     AuditAction = "vacation_period_updated"
	AuditPeriodDeleted     AuditAction = "vacation_period_deleted"
	AuditAllocationCreated AuditAction = "vacation_allocation_created"
	AuditAllocationUpdated AuditAction = "vacation_allocation_updated"
	AuditAllocationDeleted AuditAction = "vacation_allocation_deleted"
)
