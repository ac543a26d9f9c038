package overtime

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/overtime/internal/models"
	"github.com/mmynk/overtime/internal/storage/sqlite"
)

func setupStore(t *testing.T) (*sqlite.SQLiteStore, *models.User) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "overtime.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	user := models.NewUser("owner@example.com", "Owner", "hash")
	require.NoError(t, store.CreateUser(context.Background(), user))
	return store, user
}

func TestRecordRepository_Create(t *testing.T) {
	store, user := setupStore(t)
	repo := NewRecordRepository(store)
	ctx := context.Background()

	t.Run("computes pay server-side", func(t *testing.T) {
		r, err := repo.Create(ctx, user.ID, RecordInput{Date: "2024-05-01", Salary: 5000, EndHour: 20, Minutes: 30})
		require.NoError(t, err)
		assert.Equal(t, int64(42), r.CalculatedPay)
		assert.NotEmpty(t, r.ID)
	})

	invalid := []struct {
		name string
		in   RecordInput
	}{
		{name: "bad date", in: RecordInput{Date: "01/05/2024", Salary: 5000, EndHour: 20}},
		{name: "missing date", in: RecordInput{Salary: 5000, EndHour: 20}},
		{name: "negative salary", in: RecordInput{Date: "2024-05-01", Salary: -1, EndHour: 20}},
		{name: "end hour before shift end", in: RecordInput{Date: "2024-05-01", Salary: 5000, EndHour: 18}},
		{name: "minutes out of range", in: RecordInput{Date: "2024-05-01", Salary: 5000, EndHour: 20, Minutes: 60}},
		{name: "end hour past next day", in: RecordInput{Date: "2024-05-01", Salary: 5000, EndHour: 48}},
		{name: "overflowing end hour", in: RecordInput{Date: "2024-05-01", Salary: 5000, EndHour: math.MaxInt}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(ctx, user.ID, tt.in)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}

	t.Run("resolves the group name", func(t *testing.T) {
		g, err := NewGroupRepository(store).Create(ctx, user.ID, "Launch")
		require.NoError(t, err)

		r, err := repo.Create(ctx, user.ID, RecordInput{GroupID: g.ID, Date: "2024-05-02", Salary: 5000, EndHour: 21})
		require.NoError(t, err)
		assert.Equal(t, g.ID, r.GroupID)
		assert.Equal(t, "Launch", r.GroupName)
		assert.NotZero(t, r.CreatedAt)
	})

	t.Run("unknown group is rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, user.ID, RecordInput{GroupID: "nope", Date: "2024-05-01", Salary: 5000, EndHour: 20})
		assert.ErrorIs(t, err, models.ErrInvalidGroup)
	})

	records, err := repo.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1, "rejected inputs must not be stored")
}

func TestRecordRepository_UpdateRecomputesPay(t *testing.T) {
	store, user := setupStore(t)
	repo := NewRecordRepository(store)
	groups := NewGroupRepository(store)
	ctx := context.Background()

	g, err := groups.Create(ctx, user.ID, "March")
	require.NoError(t, err)

	r, err := repo.Create(ctx, user.ID, RecordInput{Date: "2024-03-01", Salary: 5000, EndHour: 19, Minutes: 30})
	require.NoError(t, err)
	assert.Equal(t, int64(14), r.CalculatedPay)

	updated, err := repo.Update(ctx, user.ID, r.ID, RecordInput{GroupID: g.ID, Date: "2024-03-01", Salary: 5000, EndHour: 22})
	require.NoError(t, err)
	assert.Equal(t, int64(91), updated.CalculatedPay)
	assert.Equal(t, g.ID, updated.GroupID)
	assert.Equal(t, "March", updated.GroupName)

	_, err = repo.Update(ctx, user.ID, "missing", RecordInput{Date: "2024-03-01", Salary: 5000, EndHour: 22})
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.Update(ctx, user.ID, r.ID, RecordInput{Date: "2024-03-01", Salary: 5000, EndHour: 22, Minutes: -1})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestRecordRepository_Ownership(t *testing.T) {
	store, user := setupStore(t)
	repo := NewRecordRepository(store)
	groups := NewGroupRepository(store)
	ctx := context.Background()

	intruder := models.NewUser("intruder@example.com", "Intruder", "hash")
	require.NoError(t, store.CreateUser(ctx, intruder))
	foreign, err := groups.Create(ctx, intruder.ID, "Theirs")
	require.NoError(t, err)

	r, err := repo.Create(ctx, user.ID, RecordInput{Date: "2024-03-01", Salary: 5000, EndHour: 20})
	require.NoError(t, err)

	_, err = repo.Get(ctx, intruder.ID, r.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, intruder.ID, r.ID), models.ErrNotFound)
	assert.ErrorIs(t, repo.Move(ctx, user.ID, r.ID, foreign.ID, 0), models.ErrInvalidGroup)

	_, err = repo.Create(ctx, user.ID, RecordInput{GroupID: foreign.ID, Date: "2024-03-01", Salary: 5000, EndHour: 20})
	assert.ErrorIs(t, err, models.ErrInvalidGroup)

	require.NoError(t, repo.Delete(ctx, user.ID, r.ID))
	_, err = repo.Get(ctx, user.ID, r.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGroupRepository(t *testing.T) {
	store, user := setupStore(t)
	repo := NewGroupRepository(store)
	ctx := context.Background()

	t.Run("name is trimmed and required", func(t *testing.T) {
		g, err := repo.Create(ctx, user.ID, "  Week 1 ")
		require.NoError(t, err)
		assert.Equal(t, "Week 1", g.Name)

		_, err = repo.Create(ctx, user.ID, "   ")
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("Resolve reuses existing groups", func(t *testing.T) {
		first, err := repo.Resolve(ctx, user.ID, "Week 2")
		require.NoError(t, err)
		second, err := repo.Resolve(ctx, user.ID, "Week 2")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		all, err := repo.List(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Update applies only set fields", func(t *testing.T) {
		g, err := repo.Resolve(ctx, user.ID, "Week 2")
		require.NoError(t, err)

		collapsed := true
		got, err := repo.Update(ctx, user.ID, g.ID, GroupUpdate{Collapsed: &collapsed})
		require.NoError(t, err)
		assert.Equal(t, "Week 2", got.Name)
		assert.True(t, got.Collapsed)

		empty := ""
		_, err = repo.Update(ctx, user.ID, g.ID, GroupUpdate{Name: &empty})
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("Move and Delete", func(t *testing.T) {
		all, err := repo.List(ctx, user.ID)
		require.NoError(t, err)
		require.NoError(t, repo.Move(ctx, user.ID, all[1].ID, 0))

		moved, err := repo.List(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, all[1].ID, moved[0].ID)

		require.NoError(t, repo.Delete(ctx, user.ID, moved[0].ID))
		left, err := repo.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, left, 1)
		assert.Equal(t, 0, left[0].SortOrder)
	})
}

func TestSettings(t *testing.T) {
	store, user := setupStore(t)
	settings := NewSettings(store)
	ctx := context.Background()

	require.NoError(t, settings.Update(ctx, user.ID, models.Settings{MonthlySalary: 6000, UngroupedCollapsed: true}))

	got, err := settings.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Settings{MonthlySalary: 6000, UngroupedCollapsed: true}, got)

	assert.ErrorIs(t, settings.Update(ctx, user.ID, models.Settings{MonthlySalary: -5}), models.ErrInvalidInput)

	_, err = settings.Get(ctx, "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRecordInput_Validate(t *testing.T) {
	assert.NoError(t, RecordInput{Date: "2024-05-01", Salary: 0, EndHour: 47, Minutes: 59}.Validate())
	assert.ErrorIs(t, RecordInput{Date: "05/01/2024", Salary: 5000, EndHour: 20}.Validate(), models.ErrInvalidInput)
	assert.ErrorIs(t, RecordInput{Date: "2024-05-01", Salary: math.NaN(), EndHour: 20}.Validate(), models.ErrInvalidInput)
}

func TestProfile(t *testing.T) {
	store, user := setupStore(t)
	profile := NewProfile(store)
	ctx := context.Background()

	got, err := profile.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Owner", got.DisplayName)

	updated, err := profile.UpdateDisplayName(ctx, user.ID, "  New Owner ")
	require.NoError(t, err)
	assert.Equal(t, "New Owner", updated.DisplayName)
	assert.Equal(t, "owner@example.com", updated.Email)

	_, err = profile.UpdateDisplayName(ctx, user.ID, "   ")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = profile.UpdateDisplayName(ctx, "ghost", "Ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
