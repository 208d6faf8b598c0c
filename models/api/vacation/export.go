package vacationapimodels

type ExportFilter struct {
	StartDate *Date
	EndDate   *Date
	Status    string
	TeamID    string
	UserID    string
}
