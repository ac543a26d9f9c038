package models

// Record is one logged overtime session.
type Record struct {
	// ID is the unique identifier for the record (UUID format).
	ID string

	// UserID is the owning user.
	UserID string

	// GroupID references a group of the same user. Empty means ungrouped.
	GroupID string

	// GroupName is resolved on reads; it is never written.
	GroupName string

	// Date is the calendar date of the session (YYYY-MM-DD).
	Date string

	// Salary is the monthly salary snapshot used for the pay computation.
	Salary float64

	// EndHour is the hour the session ended, 19 or later.
	EndHour int

	// Minutes past EndHour, 0..59.
	Minutes int

	// CalculatedPay is always computed server-side from Salary, EndHour and Minutes.
	CalculatedPay int64

	// SortOrder is the position inside the record's group scope, dense from 0.
	SortOrder int

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64
}
