// Package entity contains the richer domain objects that are embedded
// in activity-event payloads.
//
// Entities are detached snapshots: they are constructed from the raw
// nested mappings of a single event payload and hold no reference to
// an API client or session. Constructors return nil for absent input
// and extract fields permissively, a missing or wrongly-typed field
// becomes its zero value.
package entity
