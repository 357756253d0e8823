package triage

import "slices"

// Resolve classifies a symptom label by exact, case-sensitive match.
// Unknown labels, including the empty string, resolve to the routine tier at
// the health post with no instructions.
func Resolve(label string) Classification {
	e, ok := symptoms[label]
	if !ok {
		return Classification{
			Symptom:      label,
			Tier:         TierRoutine,
			Facility:     facilities[FacilityHealthPost],
			Instructions: []string{},
		}
	}
	return Classification{
		Symptom:      label,
		Tier:         e.Tier,
		Facility:     facilities[e.Facility],
		Instructions: slices.Clone(e.Instructions),
	}
}

// PolicyFor returns the display policy for a tier. Values outside the three
// defined tiers get the routine policy.
func PolicyFor(t Tier) DisplayPolicy {
	if p, ok := policies[t]; ok {
		return p
	}
	return policies[TierRoutine]
}

// Lookup returns the table entry for label. The instructions are a copy.
func Lookup(label string) (SymptomEntry, bool) {
	e, ok := symptoms[label]
	if !ok {
		return SymptomEntry{}, false
	}
	e.Instructions = slices.Clone(e.Instructions)
	return e, true
}

// Known reports whether label is in the triage table.
func Known(label string) bool {
	_, ok := symptoms[label]
	return ok
}

// FacilityForTier returns the default facility a tier routes to.
func FacilityForTier(t Tier) Facility {
	if k, ok := tierFacility[t]; ok {
		return facilities[k]
	}
	return facilities[FacilityHealthPost]
}

// Facilities lists every facility, most severe tier first.
func Facilities() []Facility {
	return []Facility{
		facilities[FacilityMajorHospital],
		facilities[FacilityDistrictClinic],
		facilities[FacilityHealthPost],
	}
}

// Symptoms returns a copy of the table in catalog order.
func Symptoms() []SymptomEntry {
	out := make([]SymptomEntry, len(entries))
	for i, e := range entries {
		e.Instructions = slices.Clone(e.Instructions)
		out[i] = e
	}
	return out
}

// Catalog returns the picker categories in display order.
func Catalog() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		c.Labels = slices.Clone(c.Labels)
		out[i] = c
	}
	return out
}
