// Package triage holds the static symptom table and the resolver that maps a
// reported symptom to a severity tier, a destination facility, and the
// on-scene first-aid steps. Everything here is immutable and pure; callers
// never see an error from resolution, an unknown symptom simply falls back to
// the routine tier and the local health post.
package triage
