package appointment

import "github.com/crownbraids/salon-scheduler/internal/models"

// Actor is the caller identity resolved from the session token. The zero
// value is an anonymous (guest) caller.
type Actor struct {
	ID        uint
	Role      string
	BraiderID string

	Authenticated bool
}

func (a Actor) IsClient() bool {
	return a.Authenticated && a.Role == models.RoleClient
}

func (a Actor) IsEmployee() bool {
	return a.Authenticated && a.Role == models.RoleEmployee
}

func (a Actor) IsAdmin() bool {
	return a.Authenticated && a.Role == models.RoleAdmin
}

func (a Actor) IsStaff() bool {
	return a.IsEmployee() || a.IsAdmin()
}

// canAccess reports whether the actor may read or mutate the record:
// admins always, clients only their own, employees when assigned directly
// or through their braider profile.
func (a Actor) canAccess(ap *models.Appointment) bool {
	if a.IsAdmin() {
		return true
	}
	if a.IsClient() {
		return ap.ClientID != nil && *ap.ClientID == a.ID
	}
	if a.IsEmployee() {
		if ap.EmployeeID != nil && *ap.EmployeeID == a.ID {
			return true
		}
		return a.BraiderID != "" && ap.BraiderID == a.BraiderID
	}
	return false
}
