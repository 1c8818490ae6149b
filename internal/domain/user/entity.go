package user

type Role string

const (
	RoleOwner    Role = "owner"    // Full access
	RoleManager  Role = "manager"  // Can approve leave and manage the directory
	RoleEmployee Role = "employee" // Regular employee
)

func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleManager || r == RoleEmployee
}

// Actor is the authenticated caller, read from the access token claims.
type Actor struct {
	Subject string
	Name    string
	Role    Role
}

// IsOwner checks if the actor is an owner
func (a Actor) IsOwner() bool {
	return a.Role == RoleOwner
}

// IsManager checks if the actor is a manager or owner
func (a Actor) IsManager() bool {
	return a.Role == RoleManager || a.Role == RoleOwner
}

// CanApprove checks if the actor can approve or reject leave requests
func (a Actor) CanApprove() bool {
	return a.IsManager()
}
