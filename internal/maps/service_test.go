package maps

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestResolveSelectionLookupEnabled(t *testing.T) {
	svc := NewService(nil, true)

	selected, verifiedBy := svc.ResolveSelection("123 Main St, Waterbury, CT 06701", boolPtr(true))
	if !selected || verifiedBy != VerifiedBySelection {
		t.Fatalf("picked suggestion should count as selected, got (%v, %q)", selected, verifiedBy)
	}

	// A complete-looking address typed by hand does not count while the
	// autocomplete backend is available.
	selected, verifiedBy = svc.ResolveSelection("123 Main St, Waterbury, CT 06701", boolPtr(false))
	if selected || verifiedBy != "" {
		t.Fatalf("free-typed address should not count as selected, got (%v, %q)", selected, verifiedBy)
	}

	selected, verifiedBy = svc.ResolveSelection("123 Main St, Waterbury, CT 06701", nil)
	if selected || verifiedBy != "" {
		t.Fatalf("missing selection claim should not count, got (%v, %q)", selected, verifiedBy)
	}
}

func TestResolveSelectionLookupDisabled(t *testing.T) {
	svc := NewService(nil, false)

	selected, verifiedBy := svc.ResolveSelection("123 Main St, Waterbury, CT 06701", nil)
	if !selected || verifiedBy != VerifiedByHeuristic {
		t.Fatalf("complete address should pass the heuristic, got (%v, %q)", selected, verifiedBy)
	}

	selected, _ = svc.ResolveSelection("123 Main St", boolPtr(true))
	if selected {
		t.Fatal("incomplete address should fail the heuristic even when claimed selected")
	}
}

func TestLooksComplete(t *testing.T) {
	cases := []struct {
		address string
		want    bool
	}{
		{"", false},
		{"123 Main St", false},
		{"a, b", false},                          // two parts but too short
		{"123 Main Street Waterbury CT", false},  // long but no comma
		{"123 Main St, Waterbury", true},
		{"123 Main St, Waterbury, CT 06701", true},
	}

	for _, tc := range cases {
		if got := LooksComplete(tc.address); got != tc.want {
			t.Errorf("LooksComplete(%q) = %v, want %v", tc.address, got, tc.want)
		}
	}
}

func TestBuildLabel(t *testing.T) {
	got := buildLabel(AddressSuggestion{
		Street:      "Main St",
		HouseNumber: "123",
		City:        "Waterbury",
		State:       "Connecticut",
		ZipCode:     "06701",
	})
	want := "123 Main St, Waterbury, Connecticut 06701"
	if got != want {
		t.Fatalf("label = %q, want %q", got, want)
	}

	got = buildLabel(AddressSuggestion{Street: "Main St", City: "Waterbury"})
	if got != "Main St, Waterbury" {
		t.Fatalf("label without number/state = %q", got)
	}
}

func TestBuildSuggestionRequiresRoadAndCity(t *testing.T) {
	_, ok := buildSuggestion(nominatimResponse{
		Address: nominatimAddress{Road: "", City: "Waterbury"},
	})
	if ok {
		t.Fatal("suggestion without a road should be dropped")
	}

	_, ok = buildSuggestion(nominatimResponse{
		Address: nominatimAddress{Road: "Main St"},
	})
	if ok {
		t.Fatal("suggestion without any locality should be dropped")
	}

	s, ok := buildSuggestion(nominatimResponse{
		Address: nominatimAddress{Road: "Main St", Town: "Naugatuck"},
	})
	if !ok || s.City != "Naugatuck" {
		t.Fatalf("town should stand in for city, got (%v, %+v)", ok, s)
	}
}
