package models

// Actor is the authenticated principal performing an operation, as read
// from the JWT claims by the HTTP layer.
type Actor struct {
	UserID    string
	CompanyID string
	Role      UserRole
	IPAddress string
}
