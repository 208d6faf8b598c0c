package vacationapimodels

// VacationBalance reports a user's stand against one period. Only approved
// days reduce the remaining balance; pending days are informational.
type VacationBalance struct {
	Period         VacationPeriod      `json:"vacation_period"`
	Allocation     *VacationAllocation `json:"allocation,omitempty"`
	TotalAvailable float64             `json:"total_available"`
	ApprovedDays   float64             `json:"approved_days"`
	PendingDays    float64             `json:"pending_days"`
	RemainingDays  float64             `json:"remaining_days"`
}
