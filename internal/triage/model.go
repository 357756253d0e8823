package triage

// Tier is the urgency class that governs routing and display.
type Tier string

const (
	// TierCritical is life-threatening, route to the major hospital
	TierCritical Tier = "critical"

	// TierUrgent needs prompt emergency care, route to the district clinic
	TierUrgent Tier = "urgent"

	// TierRoutine is non-urgent, route to the local health post
	TierRoutine Tier = "routine"
)

// Rank orders tiers by severity: critical > urgent > routine. Unknown values rank 0.
func (t Tier) Rank() int {
	switch t {
	case TierCritical:
		return 3
	case TierUrgent:
		return 2
	case TierRoutine:
		return 1
	default:
		return 0
	}
}

// Valid reports whether t is one of the three defined tiers.
func (t Tier) Valid() bool {
	return t.Rank() > 0
}

// FacilityKey identifies one physical care site.
type FacilityKey string

const (
	FacilityMajorHospital  FacilityKey = "major_hospital"
	FacilityDistrictClinic FacilityKey = "district_clinic"
	FacilityHealthPost     FacilityKey = "health_post"
)

// Facility is a care site with fixed contact metadata.
type Facility struct {
	Key         FacilityKey `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
}

// SymptomEntry is one row of the triage table.
type SymptomEntry struct {
	Label        string      `json:"label"`
	Tier         Tier        `json:"tier"`
	Facility     FacilityKey `json:"facility"`
	Instructions []string    `json:"instructions"`
}

// Category groups symptom labels for the picker screen, in display order.
type Category struct {
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
}

// Classification is the outcome of resolving a symptom label.
type Classification struct {
	Symptom      string   `json:"symptom"`
	Tier         Tier     `json:"tier"`
	Facility     Facility `json:"facility"`
	Instructions []string `json:"instructions"`
}

// DisplayPolicy is how a tier is presented: banner text, banner color class,
// and the recommended action phrase.
type DisplayPolicy struct {
	Banner string `json:"banner"`
	Color  string `json:"color"`
	Action string `json:"action"`
}
