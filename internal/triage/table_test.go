package triage

import "testing"

// Table content rules. The program never checks these at runtime.

func TestTable_TierMatchesFacility(t *testing.T) {
	t.Parallel()

	for _, e := range entries {
		if want := tierFacility[e.Tier]; e.Facility != want {
			t.Errorf("%q: tier %q routes to %q, entry says %q", e.Label, e.Tier, want, e.Facility)
		}
	}
}

func TestTable_EntriesWellFormed(t *testing.T) {
	t.Parallel()

	for _, e := range entries {
		if !e.Tier.Valid() {
			t.Errorf("%q: invalid tier %q", e.Label, e.Tier)
		}
		if _, ok := facilities[e.Facility]; !ok {
			t.Errorf("%q: unknown facility %q", e.Label, e.Facility)
		}
		if len(e.Instructions) == 0 {
			t.Errorf("%q: no instructions", e.Label)
		}
	}
}

func TestTable_NoDuplicateLabels(t *testing.T) {
	t.Parallel()

	if len(symptoms) != len(entries) {
		t.Errorf("index has %d labels, table has %d rows", len(symptoms), len(entries))
	}
}

func TestTable_OneFacilityPerTier(t *testing.T) {
	t.Parallel()

	if len(facilities) != 3 {
		t.Fatalf("facilities = %d, want 3", len(facilities))
	}
	seen := make(map[FacilityKey]Tier)
	for tier, key := range tierFacility {
		if prev, dup := seen[key]; dup {
			t.Errorf("facility %q used by %q and %q", key, prev, tier)
		}
		seen[key] = tier
		if _, ok := policies[tier]; !ok {
			t.Errorf("no display policy for %q", tier)
		}
	}
}

func TestCatalog_CoversTableExactlyOnce(t *testing.T) {
	t.Parallel()

	count := make(map[string]int)
	for _, c := range Catalog() {
		for _, l := range c.Labels {
			count[l]++
		}
	}
	for _, e := range entries {
		if count[e.Label] != 1 {
			t.Errorf("%q appears %d times in the catalog, want 1", e.Label, count[e.Label])
		}
		delete(count, e.Label)
	}
	for l := range count {
		t.Errorf("catalog label %q has no table entry", l)
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Catalog()
	c[0].Labels[0] = "changed"
	if Catalog()[0].Labels[0] == "changed" {
		t.Fatal("Catalog exposes the package slice")
	}
}

func TestIndex_LaterDuplicateWins(t *testing.T) {
	t.Parallel()

	m := index([]SymptomEntry{
		{Label: "cough", Tier: TierUrgent, Facility: FacilityDistrictClinic},
		{Label: "cough", Tier: TierRoutine, Facility: FacilityHealthPost},
	})
	if len(m) != 1 {
		t.Fatalf("len = %d, want 1", len(m))
	}
	if m["cough"].Tier != TierRoutine {
		t.Errorf("Tier = %q, want later row %q", m["cough"].Tier, TierRoutine)
	}
}

func TestSymptoms_TableOrder(t *testing.T) {
	t.Parallel()

	got := Symptoms()
	if len(got) != len(entries) {
		t.Fatalf("len = %d, want %d", len(got), len(entries))
	}
	if got[0].Label != "stroke-like one-sided weakness" {
		t.Errorf("first = %q", got[0].Label)
	}
	got[0].Instructions[0] = "x"
	if entries[0].Instructions[0] == "x" {
		t.Fatal("Symptoms exposes the package slices")
	}
}
