package triage

import (
	"reflect"
	"slices"
	"testing"
)

func TestResolve_KnownSymptoms(t *testing.T) {
	t.Parallel()

	for _, e := range entries {
		t.Run(e.Label, func(t *testing.T) {
			t.Parallel()

			got := Resolve(e.Label)
			if got.Symptom != e.Label {
				t.Errorf("Symptom = %q, want %q", got.Symptom, e.Label)
			}
			if got.Tier != e.Tier {
				t.Errorf("Tier = %q, want %q", got.Tier, e.Tier)
			}
			if got.Facility != facilities[e.Facility] {
				t.Errorf("Facility = %+v, want %+v", got.Facility, facilities[e.Facility])
			}
			if !slices.Equal(got.Instructions, e.Instructions) {
				t.Errorf("Instructions = %q, want %q", got.Instructions, e.Instructions)
			}
		})
	}
}

func TestResolve_StrokeScenario(t *testing.T) {
	t.Parallel()

	got := Resolve("stroke-like one-sided weakness")
	if got.Tier != TierCritical {
		t.Errorf("Tier = %q, want %q", got.Tier, TierCritical)
	}
	if got.Facility.Key != FacilityMajorHospital {
		t.Errorf("Facility = %q, want %q", got.Facility.Key, FacilityMajorHospital)
	}
	want := []string{"do not feed/medicate", "lay on side", "note onset time"}
	if !slices.Equal(got.Instructions, want) {
		t.Errorf("Instructions = %q, want %q", got.Instructions, want)
	}
}

func TestResolve_MildDizziness(t *testing.T) {
	t.Parallel()

	got := Resolve("mild dizziness")
	if got.Tier != TierRoutine {
		t.Errorf("Tier = %q, want %q", got.Tier, TierRoutine)
	}
	if got.Facility.Key != FacilityHealthPost {
		t.Errorf("Facility = %q, want %q", got.Facility.Key, FacilityHealthPost)
	}
	if len(got.Instructions) == 0 {
		t.Error("expected non-empty instructions")
	}
}

func TestResolve_Fallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		label string
	}{
		{"nonexistent", "nonexistent symptom xyz"},
		{"empty", ""},
		{"wrong case", "Mild Dizziness"},
		{"trailing space", "mild dizziness "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Resolve(tt.label)
			if got.Tier != TierRoutine {
				t.Errorf("Tier = %q, want %q", got.Tier, TierRoutine)
			}
			if got.Facility != facilities[FacilityHealthPost] {
				t.Errorf("Facility = %+v, want health post", got.Facility)
			}
			if got.Instructions == nil {
				t.Error("Instructions = nil, want empty non-nil slice")
			}
			if len(got.Instructions) != 0 {
				t.Errorf("Instructions = %q, want empty", got.Instructions)
			}
		})
	}
}

func TestResolve_RepeatedCallsEqual(t *testing.T) {
	t.Parallel()

	a := Resolve("snake or animal bite")
	b := Resolve("snake or animal bite")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Resolve not deterministic: %+v vs %+v", a, b)
	}
}

func TestResolve_CallerCannotMutateTable(t *testing.T) {
	t.Parallel()

	got := Resolve("difficulty breathing")
	got.Instructions[0] = "tampered"

	again := Resolve("difficulty breathing")
	if again.Instructions[0] == "tampered" {
		t.Fatal("mutating a resolved classification changed the table")
	}
}

func TestPolicyFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tier       Tier
		wantColor  string
		wantAction string
	}{
		{TierCritical, "critical", "call emergency transport now"},
		{TierUrgent, "warning", "arrange transport promptly"},
		{TierRoutine, "normal", "visit outpatient clinic"},
		{Tier("bogus"), "normal", "visit outpatient clinic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			t.Parallel()

			got := PolicyFor(tt.tier)
			if got.Color != tt.wantColor {
				t.Errorf("Color = %q, want %q", got.Color, tt.wantColor)
			}
			if got.Action != tt.wantAction {
				t.Errorf("Action = %q, want %q", got.Action, tt.wantAction)
			}
			if got.Banner == "" {
				t.Error("Banner is empty")
			}
			if again := PolicyFor(tt.tier); again != got {
				t.Errorf("PolicyFor(%q) not deterministic: %+v vs %+v", tt.tier, got, again)
			}
		})
	}
}

func TestTierRank(t *testing.T) {
	t.Parallel()

	if !(TierCritical.Rank() > TierUrgent.Rank() && TierUrgent.Rank() > TierRoutine.Rank()) {
		t.Error("expected critical > urgent > routine")
	}
	if Tier("").Valid() {
		t.Error("empty tier should not be valid")
	}
	for _, tier := range []Tier{TierCritical, TierUrgent, TierRoutine} {
		if !tier.Valid() {
			t.Errorf("%q should be valid", tier)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	e, ok := Lookup("skin redness or rash")
	if !ok {
		t.Fatal("expected entry to be found")
	}
	if e.Tier != TierRoutine {
		t.Errorf("Tier = %q, want %q", e.Tier, TierRoutine)
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("expected unknown label to miss")
	}
	if Known("nope") {
		t.Error("Known(nope) = true")
	}
	if !Known("mild dizziness") {
		t.Error("Known(mild dizziness) = false")
	}
}

func TestFacilityForTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tier Tier
		want FacilityKey
	}{
		{TierCritical, FacilityMajorHospital},
		{TierUrgent, FacilityDistrictClinic},
		{TierRoutine, FacilityHealthPost},
		{Tier("other"), FacilityHealthPost},
	}
	for _, tt := range tests {
		if got := FacilityForTier(tt.tier).Key; got != tt.want {
			t.Errorf("FacilityForTier(%q) = %q, want %q", tt.tier, got, tt.want)
		}
	}
}

func TestFacilities_OrderedBySeverity(t *testing.T) {
	t.Parallel()

	got := Facilities()
	want := []FacilityKey{FacilityMajorHospital, FacilityDistrictClinic, FacilityHealthPost}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, f := range got {
		if f.Key != want[i] {
			t.Errorf("Facilities()[%d] = %q, want %q", i, f.Key, want[i])
		}
	}
}
