package overtime

import (
	"context"
	"strings"

	"github.com/mmynk/overtime/internal/models"
	"github.com/mmynk/overtime/internal/storage"
)

type groupName struct {
	Name string `validate:"required,max=100"`
}

// GroupUpdate lists the group fields to change; nil fields are left alone.
type GroupUpdate struct {
	Name      *string
	Collapsed *bool
}

// GroupRepository manages a user's groups.
type GroupRepository struct {
	store storage.GroupStore
}

// NewGroupRepository creates a GroupRepository on top of store.
func NewGroupRepository(store storage.GroupStore) *GroupRepository {
	return &GroupRepository{store: store}
}

// Create appends a new group at the end of the user's list.
func (r *GroupRepository) Create(ctx context.Context, userID, name string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if err := validateStruct(groupName{Name: name}); err != nil {
		return nil, err
	}

	group := &models.Group{UserID: userID, Name: name}
	if err := r.store.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// List returns the user's groups in display order.
func (r *GroupRepository) List(ctx context.Context, userID string) ([]*models.Group, error) {
	return r.store.ListGroups(ctx, userID)
}

// Update renames and/or collapses a group.
func (r *GroupRepository) Update(ctx context.Context, userID, groupID string, upd GroupUpdate) (*models.Group, error) {
	group, err := r.store.GetGroup(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if err := validateStruct(groupName{Name: name}); err != nil {
			return nil, err
		}
		group.Name = name
	}
	if upd.Collapsed != nil {
		group.Collapsed = *upd.Collapsed
	}

	if err := r.store.UpdateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Move places the group at index in the user's list.
func (r *GroupRepository) Move(ctx context.Context, userID, groupID string, index int) error {
	return r.store.MoveGroup(ctx, userID, groupID, index)
}

// Delete removes the group; its records become ungrouped.
func (r *GroupRepository) Delete(ctx context.Context, userID, groupID string) error {
	return r.store.DeleteGroup(ctx, userID, groupID)
}

// Resolve returns the user's group called name, creating it when absent.
// Lookup and creation are separate steps, so two concurrent calls may both create.
func (r *GroupRepository) Resolve(ctx context.Context, userID, name string) (*models.Group, error) {
	name = strings.TrimSpace(name)

	group, err := r.store.FindGroupByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if group != nil {
		return group, nil
	}
	return r.Create(ctx, userID, name)
}
