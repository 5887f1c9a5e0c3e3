package auth

import "testing"

func TestRoleBits(t *testing.T) {
	if RoleAdministrator != 1 || RoleSysMaintainer != 2 || RoleTenant != 4 || RoleTenantViewer != 8 || RoleRepoViewer != 16 {
		t.Fatalf("role bit values changed: %d %d %d %d %d",
			RoleAdministrator, RoleSysMaintainer, RoleTenant, RoleTenantViewer, RoleRepoViewer)
	}
}

func TestRoleChecks(t *testing.T) {
	// 5 = administrator + tenant, the combination the first system user gets.
	r := Role(5)
	if !r.IsAdministrator() || !r.IsTenant() || r.IsSysMaintainer() {
		t.Errorf("role 5 want admin+tenant, got admin=%v tenant=%v maint=%v",
			r.IsAdministrator(), r.IsTenant(), r.IsSysMaintainer())
	}
	if !r.CanViewStats() {
		t.Error("tenant must view stats")
	}
	if !r.CanViewLogs() {
		t.Error("administrator must view logs")
	}

	viewer := RoleRepoViewer
	if !viewer.CanViewStats() || viewer.CanViewLogs() || viewer.IsTenant() {
		t.Errorf("repo viewer checks wrong: stats=%v logs=%v tenant=%v",
			viewer.CanViewStats(), viewer.CanViewLogs(), viewer.IsTenant())
	}

	if Role(0).CanViewStats() || Role(0).CanViewLogs() {
		t.Error("zero role must have no access")
	}
}
