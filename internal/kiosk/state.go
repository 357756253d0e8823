package kiosk

import (
	"errors"
	"fmt"
)

// State is the screen currently shown.
type State string

const (
	StateHome          State = "home"
	StateSymptomSelect State = "symptom_select"
	StateResult        State = "result"
)

// ActionKind is one discrete user action.
type ActionKind string

const (
	ActionRequestHelp   ActionKind = "request_help"
	ActionSelectSymptom ActionKind = "select_symptom"
	ActionReselect      ActionKind = "reselect"
	ActionGoHome        ActionKind = "go_home"
)

// ErrUnknownAction is returned by ParseActionKind for names outside the action set.
var ErrUnknownAction = errors.New("unknown action")

// Action is a user action with its argument. Symptom is only read for
// ActionSelectSymptom.
type Action struct {
	Kind    ActionKind `json:"action"`
	Symptom string     `json:"symptom,omitempty"`
}

// Session is the navigation state of one interactive session. An empty
// Selection means no symptom is chosen.
type Session struct {
	State     State  `json:"state"`
	Selection string `json:"selection,omitempty"`
}

// transitions lists the allowed moves. Anything not listed is ignored.
var transitions = map[State]map[ActionKind]State{
	StateHome: {
		ActionRequestHelp: StateSymptomSelect,
	},
	StateSymptomSelect: {
		ActionSelectSymptom: StateResult,
		ActionGoHome:        StateHome,
	},
	StateResult: {
		ActionReselect: StateSymptomSelect,
		ActionGoHome:   StateHome,
	},
}

// actionOrder fixes the order Available reports actions in.
var actionOrder = []ActionKind{ActionRequestHelp, ActionSelectSymptom, ActionReselect, ActionGoHome}

// Start returns the initial session: home screen, nothing selected.
func Start() Session {
	return Session{State: StateHome}
}

// Apply returns the session after action a and whether the action was valid
// for the current screen. Invalid actions leave the session unchanged.
// Selecting a symptom sets the selection, going home clears it.
func Apply(s Session, a Action) (Session, bool) {
	to, ok := transitions[s.State][a.Kind]
	if !ok {
		return s, false
	}
	next := Session{State: to, Selection: s.Selection}
	switch a.Kind {
	case ActionSelectSymptom:
		next.Selection = a.Symptom
	case ActionGoHome:
		next.Selection = ""
	}
	return next, true
}

// Available lists the actions valid on screen st.
func Available(st State) []ActionKind {
	out := make([]ActionKind, 0, 2)
	for _, k := range actionOrder {
		if _, ok := transitions[st][k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// ParseActionKind validates an action name.
func ParseActionKind(s string) (ActionKind, error) {
	k := ActionKind(s)
	for _, known := range actionOrder {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}
