package kiosk

import "github.com/linnemanlabs/guardian/internal/triage"

// Content is the site-specific text shown on the home screen.
type Content struct {
	Site         string
	Announcement string
}

// View is everything a front end needs to draw the current screen. Exactly
// one of Home, Picker and Result is set, matching State.
type View struct {
	State     State        `json:"state"`
	Selection string       `json:"selection,omitempty"`
	Actions   []ActionKind `json:"actions"`
	Home      *HomeView    `json:"home,omitempty"`
	Picker    *PickerView  `json:"picker,omitempty"`
	Result    *ResultView  `json:"result,omitempty"`
}

// HomeView is the landing screen.
type HomeView struct {
	Site         string `json:"site"`
	Announcement string `json:"announcement,omitempty"`
	CheckIn      bool   `json:"check_in"`
}

// PickerView is the symptom picker, grouped by body area.
type PickerView struct {
	Categories []triage.Category `json:"categories"`
}

// ResultView shows where to go and what to do for the selected symptom.
type ResultView struct {
	Classification triage.Classification `json:"classification"`
	Policy         triage.DisplayPolicy  `json:"policy"`
}

// Render builds the view for session s.
func Render(s Session, c Content) View {
	v := View{
		State:     s.State,
		Selection: s.Selection,
		Actions:   Available(s.State),
	}
	switch s.State {
	case StateHome:
		v.Home = &HomeView{Site: c.Site, Announcement: c.Announcement, CheckIn: true}
	case StateSymptomSelect:
		v.Picker = &PickerView{Categories: triage.Catalog()}
	case StateResult:
		cl := triage.Resolve(s.Selection)
		v.Result = &ResultView{Classification: cl, Policy: triage.PolicyFor(cl.Tier)}
	}
	return v
}
