// Package models defines the core domain models for the overtime tracker.
//
// # Models
//
//   - User: account owning groups and records, carries the monthly salary default
//   - Group: user-defined bucket of records with a manual display order
//   - Record: one overtime session with its computed pay
//
// # Ordering
//
// Groups and records carry a SortOrder that is dense (0..N-1) within its Scope.
// A Scope is either a user's group list or a user's records inside one group,
// where the ungrouped records form a scope of their own.
//
// # Relationships
//
// Relationships use ID strings instead of pointers. A record's GroupID is empty
// when the record is ungrouped.
package models
