// Package kiosk drives the three-screen triage flow (home, symptom picker,
// result). The transition function is pure and works on a caller-owned
// Session value; Service layers session ids, storage, check-ins, metrics and
// tracing on top of it for the HTTP and terminal front ends.
package kiosk
