package overtime

import (
	"context"
	"fmt"
	"math"

	"github.com/mmynk/overtime/internal/models"
	"github.com/mmynk/overtime/internal/storage"
)

// Settings reads and writes a user's preferences.
type Settings struct {
	store storage.UserStore
}

// NewSettings creates a Settings on top of store.
func NewSettings(store storage.UserStore) *Settings {
	return &Settings{store: store}
}

// Get returns the user's settings.
func (s *Settings) Get(ctx context.Context, userID string) (models.Settings, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return models.Settings{}, err
	}
	return models.Settings{
		MonthlySalary:      user.MonthlySalary,
		UngroupedCollapsed: user.UngroupedCollapsed,
	}, nil
}

// Update stores new settings. The salary must be a finite, non-negative number.
func (s *Settings) Update(ctx context.Context, userID string, settings models.Settings) error {
	if math.IsNaN(settings.MonthlySalary) || math.IsInf(settings.MonthlySalary, 0) || settings.MonthlySalary < 0 {
		return fmt.Errorf("%w: monthly salary must be a non-negative number", models.ErrInvalidInput)
	}
	return s.store.UpdateUserSettings(ctx, userID, settings)
}
