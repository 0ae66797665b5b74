package model

import "testing"

func TestIsAdmin(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{RoleUser, false},
		{RoleAdmin, true},
		{RoleSuperAdmin, true},
		{"", false},
	}

	for _, tc := range cases {
		u := User{Role: tc.role}
		if got := u.IsAdmin(); got != tc.want {
			t.Errorf("IsAdmin() with role %q = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleUser, RoleAdmin, RoleSuperAdmin} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false, want true", role)
		}
	}

	if ValidRole("moderator") {
		t.Error(`ValidRole("moderator") = true, want false`)
	}
}
