package overtime

import (
	"context"
	"strings"

	"github.com/mmynk/overtime/internal/models"
	"github.com/mmynk/overtime/internal/storage"
)

type profileInput struct {
	DisplayName string `validate:"required,max=100"`
}

// Profile reads and edits a user's account details.
type Profile struct {
	store storage.UserStore
}

func NewProfile(store storage.UserStore) *Profile {
	return &Profile{store: store}
}

// Get returns the stored user.
func (p *Profile) Get(ctx context.Context, userID string) (*models.User, error) {
	return p.store.GetUserByID(ctx, userID)
}

// UpdateDisplayName renames the user and returns the updated account.
func (p *Profile) UpdateDisplayName(ctx context.Context, userID, displayName string) (*models.User, error) {
	in := profileInput{DisplayName: strings.TrimSpace(displayName)}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	if err := p.store.UpdateUserProfile(ctx, userID, in.DisplayName); err != nil {
		return nil, err
	}
	return p.store.GetUserByID(ctx, userID)
}
