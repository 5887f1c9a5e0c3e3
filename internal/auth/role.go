// Package auth holds the role model, session and data-token handling, and
// the OpenID Connect login flow. The collector never uses it; collection
// runs as a privileged background job.
package auth

// Role is a bitmask of granted roles, stored per admin user.
type Role int

const (
	RoleAdministrator Role = 1 << iota // system administration
	RoleSysMaintainer                  // system log access
	RoleTenant                         // owns repositories, may manage them
	RoleTenantViewer                   // read access to tenant stats
	RoleRepoViewer                     // read access to repo stats
)

// Has reports whether any bit of mask is granted.
func (r Role) Has(mask Role) bool {
	return r&mask != 0
}

func (r Role) IsAdministrator() bool { return r.Has(RoleAdministrator) }
func (r Role) IsSysMaintainer() bool { return r.Has(RoleSysMaintainer) }
func (r Role) IsTenant() bool        { return r.Has(RoleTenant) }

// CanViewStats reports whether the role may read traffic statistics.
func (r Role) CanViewStats() bool {
	return r.Has(RoleTenant | RoleTenantViewer | RoleRepoViewer)
}

// CanViewLogs reports whether the role may read the system run log.
func (r Role) CanViewLogs() bool {
	return r.Has(RoleAdministrator | RoleSysMaintainer)
}
