package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got  string
		want string
	}{
		{Root, "/"},
		{StaticPrefix, "/static/"},
		{Healthz, "/healthz"},
		{About, "/about"},
		{Admin, "/admin"},
		{AdminVehicles, "/admin/vehicles"},
		{AdminContracts, "/admin/contracts"},
		{AdminReports, "/admin/reports"},
		{Locale, "/locale"},
		{LocaleEvents, "/locale/events"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("route = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestRouteNames(t *testing.T) {
	t.Parallel()

	names := []string{HomeName, AboutName, AdminName, AdminVehiclesName, AdminContractsName, AdminReportsName, NotFoundName}
	seen := map[string]bool{}
	for _, name := range names {
		if name == "" {
			t.Fatal("route name is empty")
		}
		if seen[name] {
			t.Fatalf("duplicate route name %q", name)
		}
		seen[name] = true
	}
	if AdminVehiclesName != "admin-vehicles" {
		t.Fatalf("AdminVehiclesName = %q, want %q", AdminVehiclesName, "admin-vehicles")
	}
}
