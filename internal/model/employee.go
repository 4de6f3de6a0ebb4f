package model

// EmployeeDirectoryEntry one employee in the static directory.
// Loaded once at process start and never mutated afterwards.
type EmployeeDirectoryEntry struct {
	Username   string   `json:"username"`   // opaque scheduling-system identifier, unique key
	Initials   string   `json:"initials"`   // short code used in schedule grids
	FullName   string   `json:"fullName"`   // display name as written in rosters
	Roles      []string `json:"roles"`      // ordered role codes; first one is the primary role
	Department string   `json:"department"` // owning department name
}

// PrimaryRole returns the first configured role code, or "" when none.
func (e *EmployeeDirectoryEntry) PrimaryRole() string {
	if len(e.Roles) == 0 {
		return ""
	}
	return e.Roles[0]
}
