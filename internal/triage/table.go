package triage

// facilities is the fixed set of care sites, one per tier.
var facilities = map[FacilityKey]Facility{
	FacilityMajorHospital: {
		Key:         FacilityMajorHospital,
		Name:        "Taitung MacKay Memorial Hospital",
		Description: "major emergency care (life-saving)",
		Address:     "No. 1, Lane 303, Changsha St, Taitung City",
		Phone:       "089-310150",
	},
	FacilityDistrictClinic: {
		Key:         FacilityDistrictClinic,
		Name:        "Taitung Hospital Chenggong Branch",
		Description: "general emergency (trauma/fever)",
		Address:     "No. 32, Zhongshan E Rd, Chenggong Township",
		Phone:       "089-854748",
	},
	FacilityHealthPost: {
		Key:         FacilityHealthPost,
		Name:        "Changbin Township Health Center",
		Description: "outpatient/pharmacy (non-emergency)",
		Address:     "No. 13, Neighborhood 5, Changbin Village, Changbin Township",
		Phone:       "089-831022",
	},
}

// tierFacility is the default routing for each tier. Every symptom entry is
// expected to agree with it.
var tierFacility = map[Tier]FacilityKey{
	TierCritical: FacilityMajorHospital,
	TierUrgent:   FacilityDistrictClinic,
	TierRoutine:  FacilityHealthPost,
}

var policies = map[Tier]DisplayPolicy{
	TierCritical: {
		Banner: "LIFE-THREATENING: go straight to the major hospital",
		Color:  "critical",
		Action: "call emergency transport now",
	},
	TierUrgent: {
		Banner: "NEEDS EMERGENCY CARE: seek care promptly",
		Color:  "warning",
		Action: "arrange transport promptly",
	},
	TierRoutine: {
		Banner: "OUTPATIENT: observe or collect medication",
		Color:  "normal",
		Action: "visit outpatient clinic",
	},
}

// entries is the triage table in catalog order.
var entries = []SymptomEntry{
	// head / neuro
	{"stroke-like one-sided weakness", TierCritical, FacilityMajorHospital, []string{
		"do not feed/medicate", "lay on side", "note onset time",
	}},
	{"sudden thunderclap headache", TierCritical, FacilityMajorHospital, []string{
		"keep quiet and lie down", "call an ambulance immediately",
	}},
	{"unresponsive or confused", TierCritical, FacilityMajorHospital, []string{
		"call out loudly to check response", "lay on side to keep airway open",
	}},
	{"mild dizziness", TierRoutine, FacilityHealthPost, []string{
		"sit down to avoid falling", "drink warm water",
	}},

	// chest / abdomen
	{"crushing chest pain with cold sweat", TierCritical, FacilityMajorHospital, []string{
		"stop all activity", "sit half-upright", "use sublingual tablet if prescribed",
	}},
	{"difficulty breathing", TierCritical, FacilityMajorHospital, []string{
		"sit up leaning forward", "loosen collar and buttons",
	}},
	{"vomiting blood or black stool", TierCritical, FacilityMajorHospital, []string{
		"nothing by mouth", "keep a sample of the vomit for the doctor",
	}},
	{"severe abdominal pain", TierUrgent, FacilityDistrictClinic, []string{
		"stop eating for now", "take temperature",
	}},
	{"severe diarrhea or vomiting", TierUrgent, FacilityDistrictClinic, []string{
		"replace fluids and electrolytes", "bring current medication",
	}},

	// limbs / trauma
	{"fracture with deformed limb", TierCritical, FacilityMajorHospital, []string{
		"do not move the limb", "splint in place with cardboard or a stick",
	}},
	{"deep cut that will not stop bleeding", TierUrgent, FacilityDistrictClinic, []string{
		"apply direct pressure", "raise the limb",
	}},
	{"snake or animal bite", TierUrgent, FacilityDistrictClinic, []string{
		"do not cut or suck the wound", "photograph the animal", "remove rings and watches",
	}},
	{"fall and cannot stand up", TierUrgent, FacilityDistrictClinic, []string{
		"do not pull them up (possible spine injury)", "call 119 for help moving them",
	}},
	{"minor fall and able to stand", TierRoutine, FacilityHealthPost, []string{
		"ice the swollen area", "watch for dizziness or vomiting",
	}},

	// other / chronic
	{"high fever above 38.5C", TierUrgent, FacilityDistrictClinic, []string{
		"drink plenty of water", "wear breathable clothing",
	}},
	{"unable to pass urine", TierUrgent, FacilityDistrictClinic, []string{
		"do not press on the bladder", "catheter needed",
	}},
	{"severe eye pain or blurred vision", TierUrgent, FacilityDistrictClinic, []string{
		"do not rub the eyes", "wear sunglasses for protection",
	}},
	{"skin redness or rash", TierRoutine, FacilityHealthPost, []string{
		"take a photo of it", "do not scratch",
	}},
	{"chronic medication refill or rehab", TierRoutine, FacilityHealthPost, []string{
		"bring health insurance card", "check the doctor's schedule",
	}},
}

var categories = []Category{
	{Key: "head_neuro", Title: "Head / neuro", Labels: []string{
		"stroke-like one-sided weakness",
		"sudden thunderclap headache",
		"unresponsive or confused",
		"mild dizziness",
	}},
	{Key: "chest_abdomen", Title: "Chest / abdomen", Labels: []string{
		"crushing chest pain with cold sweat",
		"difficulty breathing",
		"vomiting blood or black stool",
		"severe abdominal pain",
		"severe diarrhea or vomiting",
	}},
	{Key: "trauma", Title: "Injury / fracture", Labels: []string{
		"fracture with deformed limb",
		"deep cut that will not stop bleeding",
		"snake or animal bite",
		"fall and cannot stand up",
		"minor fall and able to stand",
	}},
	{Key: "other", Title: "Fever, urine, skin, medication", Labels: []string{
		"high fever above 38.5C",
		"unable to pass urine",
		"severe eye pain or blurred vision",
		"skin redness or rash",
		"chronic medication refill or rehab",
	}},
}

var symptoms = index(entries)

// index keys entries by label. A duplicate label overwrites the earlier row.
func index(es []SymptomEntry) map[string]SymptomEntry {
	m := make(map[string]SymptomEntry, len(es))
	for _, e := range es {
		m[e.Label] = e
	}
	return m
}
