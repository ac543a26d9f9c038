// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/overtime/internal/models"
)

// UserStore persists user accounts and their settings.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil, nil when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns models.ErrNotFound when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	UpdateUserSettings(ctx context.Context, userID string, settings models.Settings) error

	UpdateUserProfile(ctx context.Context, userID, displayName string) error

	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error
}

// GroupStore persists groups. Every method is scoped to the owning user; a
// group owned by someone else behaves as if it did not exist.
type GroupStore interface {
	// CreateGroup appends the group at the end of the user's group list.
	// ID, SortOrder and CreatedAt are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	GetGroup(ctx context.Context, userID, groupID string) (*models.Group, error)

	// FindGroupByName returns the first group (by sort order) with the name,
	// or nil, nil when there is none.
	FindGroupByName(ctx context.Context, userID, name string) (*models.Group, error)

	// ListGroups returns the user's groups ordered by SortOrder.
	ListGroups(ctx context.Context, userID string) ([]*models.Group, error)

	// UpdateGroup writes Name and Collapsed.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// MoveGroup places the group at index (clamped) and renumbers the list.
	MoveGroup(ctx context.Context, userID, groupID string, index int) error

	// DeleteGroup removes the group and moves its records to the ungrouped scope.
	DeleteGroup(ctx context.Context, userID, groupID string) error
}

// RecordStore persists overtime records.
type RecordStore interface {
	// CreateRecord appends the record at the end of its group scope.
	// ID, SortOrder and CreatedAt are populated by the store.
	CreateRecord(ctx context.Context, record *models.Record) error

	GetRecord(ctx context.Context, userID, recordID string) (*models.Record, error)

	// UpdateRecord writes the record fields. A changed GroupID moves the record
	// to the end of the new group scope and compacts the old one.
	UpdateRecord(ctx context.Context, record *models.Record) error

	// DeleteRecord removes the record and compacts its scope.
	DeleteRecord(ctx context.Context, userID, recordID string) error

	// MoveRecord places the record at index inside groupID ("" for ungrouped),
	// changing its group when needed.
	MoveRecord(ctx context.Context, userID, recordID, groupID string, index int) error

	// ListRecords returns the user's records with GroupName resolved, ordered
	// by group position (ungrouped first), then SortOrder, then date descending.
	ListRecords(ctx context.Context, userID string) ([]*models.Record, error)
}

// Store defines the interface for all storage operations.
// This abstraction allows swapping storage backends without changing the
// repository and service layers.
type Store interface {
	UserStore
	GroupStore
	RecordStore

	// Close releases any resources held by the store.
	Close() error
}
