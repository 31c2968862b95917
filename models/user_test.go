package models

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		raw  string
		want UserRole
		ok   bool
	}{
		{"Administrador", RoleAdmin, true}, // legacy spelling canonicalized
		{"Admin", RoleAdmin, true},
		{"Cook", RoleCook, true},
		{"Cadet", RoleCadet, true},
		{"Client", RoleClient, true},
		{"admin", "", false}, // role comparison is case-sensitive
		{"Cocinero", "", false},
		{"", "", false},
		{"Superuser", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeRole(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("NormalizeRole(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}
