package models

// Group is a user-defined, manually ordered bucket of overtime records.
// Names are not unique. Deleting a group moves its records to the ungrouped scope.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// UserID is the owning user.
	UserID string

	// Name is the display name of the group (e.g., "Q3 release"). Never empty.
	Name string

	// SortOrder is the position among the user's groups, dense from 0.
	SortOrder int

	// Collapsed is the UI display flag.
	Collapsed bool

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
