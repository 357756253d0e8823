package kiosk

import "time"

// Record is a stored session.
type Record struct {
	ID string `json:"id"`
	Session
	CheckIns  int       `json:"check_ins"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckIn is the "I'm safe" signal sent from the home screen.
type CheckIn struct {
	SessionID string
	Site      string
	At        time.Time
}

// ActResult is the outcome of applying an action to a stored session.
type ActResult struct {
	Record  *Record
	Applied bool
	View    View
}
