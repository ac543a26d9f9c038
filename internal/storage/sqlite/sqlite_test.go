package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/overtime/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()

	user := models.NewUser(email, "Test User", "hash")
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func createTestRecord(t *testing.T, store *SQLiteStore, userID, groupID, date string) *models.Record {
	t.Helper()

	record := &models.Record{
		UserID:        userID,
		GroupID:       groupID,
		Date:          date,
		Salary:        5000,
		EndHour:       20,
		Minutes:       30,
		CalculatedPay: 42,
	}
	require.NoError(t, store.CreateRecord(context.Background(), record))
	return record
}

// requireDense asserts that the sort orders of scope are exactly 0..n-1.
func requireDense(t *testing.T, store *SQLiteStore, scope models.Scope) {
	t.Helper()

	items, err := orderedItems(context.Background(), store.db, scope)
	require.NoError(t, err)
	for i, it := range items {
		require.Equalf(t, i, it.order, "scope %+v is not dense: %+v", scope, items)
	}
}

func orderOf(t *testing.T, store *SQLiteStore, scope models.Scope) []string {
	t.Helper()

	items, err := orderedItems(context.Background(), store.db, scope)
	require.NoError(t, err)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.id
	}
	return ids
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, store, "alice@example.com")

	t.Run("GetUserByEmail finds the user", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Zero(t, got.MonthlySalary)
	})

	t.Run("GetUserByEmail returns nil for unknown email", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("UpdateUserSettings persists salary and flag", func(t *testing.T) {
		err := store.UpdateUserSettings(ctx, user.ID, models.Settings{MonthlySalary: 5200, UngroupedCollapsed: true})
		require.NoError(t, err)

		got, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 5200.0, got.MonthlySalary)
		assert.True(t, got.UngroupedCollapsed)
	})

	t.Run("UpdateUserProfile renames the user", func(t *testing.T) {
		require.NoError(t, store.UpdateUserProfile(ctx, user.ID, "Alice B."))

		got, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice B.", got.DisplayName)
		assert.Equal(t, 5200.0, got.MonthlySalary)
	})

	t.Run("UpdateUserPassword replaces the hash", func(t *testing.T) {
		require.NoError(t, store.UpdateUserPassword(ctx, user.ID, "new-hash"))

		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "new-hash", got.PasswordHash)
	})

	t.Run("updates of unknown users return ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, store.UpdateUserProfile(ctx, "missing", "X"), models.ErrNotFound)
		assert.ErrorIs(t, store.UpdateUserPassword(ctx, "missing", "h"), models.ErrNotFound)
	})

	t.Run("GetUserByID returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetUserByID(ctx, "missing")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("duplicate email is a storage error", func(t *testing.T) {
		dup := models.NewUser("alice@example.com", "Other", "hash")
		assert.ErrorIs(t, store.CreateUser(ctx, dup), models.ErrStorage)
	})
}

func TestSQLiteStore_Groups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "groups@example.com")
	other := createTestUser(t, store, "other@example.com")

	var groups []*models.Group
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		g := &models.Group{UserID: user.ID, Name: name}
		require.NoError(t, store.CreateGroup(ctx, g))
		groups = append(groups, g)
	}

	t.Run("CreateGroup appends with dense order", func(t *testing.T) {
		for i, g := range groups {
			assert.NotEmpty(t, g.ID)
			assert.Equal(t, i, g.SortOrder)
		}
	})

	t.Run("MoveGroup renumbers", func(t *testing.T) {
		require.NoError(t, store.MoveGroup(ctx, user.ID, groups[2].ID, 0))
		assert.Equal(t, []string{groups[2].ID, groups[0].ID, groups[1].ID}, orderOf(t, store, models.GroupsOf(user.ID)))
		requireDense(t, store, models.GroupsOf(user.ID))

		// Out-of-range targets clamp to the end.
		require.NoError(t, store.MoveGroup(ctx, user.ID, groups[2].ID, 99))
		assert.Equal(t, []string{groups[0].ID, groups[1].ID, groups[2].ID}, orderOf(t, store, models.GroupsOf(user.ID)))
	})

	t.Run("other users cannot see or move the group", func(t *testing.T) {
		_, err := store.GetGroup(ctx, other.ID, groups[0].ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.ErrorIs(t, store.MoveGroup(ctx, other.ID, groups[0].ID, 1), models.ErrNotFound)
		assert.ErrorIs(t, store.DeleteGroup(ctx, other.ID, groups[0].ID), models.ErrNotFound)
	})

	t.Run("UpdateGroup writes name and collapsed", func(t *testing.T) {
		g := *groups[1]
		g.Name = "Beta 2"
		g.Collapsed = true
		require.NoError(t, store.UpdateGroup(ctx, &g))

		got, err := store.GetGroup(ctx, user.ID, g.ID)
		require.NoError(t, err)
		assert.Equal(t, "Beta 2", got.Name)
		assert.True(t, got.Collapsed)
		groups[1] = got
	})

	t.Run("FindGroupByName", func(t *testing.T) {
		got, err := store.FindGroupByName(ctx, user.ID, "Gamma")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, groups[2].ID, got.ID)

		got, err = store.FindGroupByName(ctx, user.ID, "Delta")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("DeleteGroup keeps records and ungroups them densely", func(t *testing.T) {
		loose := createTestRecord(t, store, user.ID, "", "2024-01-01")
		r1 := createTestRecord(t, store, user.ID, groups[0].ID, "2024-01-02")
		r2 := createTestRecord(t, store, user.ID, groups[0].ID, "2024-01-03")

		require.NoError(t, store.DeleteGroup(ctx, user.ID, groups[0].ID))

		assert.Equal(t, []string{loose.ID, r1.ID, r2.ID}, orderOf(t, store, models.RecordsIn(user.ID, "")))
		requireDense(t, store, models.RecordsIn(user.ID, ""))
		requireDense(t, store, models.GroupsOf(user.ID))

		got, err := store.GetRecord(ctx, user.ID, r2.ID)
		require.NoError(t, err)
		assert.Empty(t, got.GroupID)

		remaining, err := store.ListGroups(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 2)
		assert.Equal(t, groups[1].ID, remaining[0].ID)
		assert.Equal(t, 0, remaining[0].SortOrder)
	})
}

func TestSQLiteStore_Records(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "records@example.com")
	other := createTestUser(t, store, "intruder@example.com")

	work := &models.Group{UserID: user.ID, Name: "Work"}
	require.NoError(t, store.CreateGroup(ctx, work))
	foreign := &models.Group{UserID: other.ID, Name: "Foreign"}
	require.NoError(t, store.CreateGroup(ctx, foreign))

	a := createTestRecord(t, store, user.ID, work.ID, "2024-03-01")
	b := createTestRecord(t, store, user.ID, work.ID, "2024-03-02")
	c := createTestRecord(t, store, user.ID, work.ID, "2024-03-03")
	u := createTestRecord(t, store, user.ID, "", "2024-03-04")

	t.Run("CreateRecord appends per scope", func(t *testing.T) {
		assert.Equal(t, 0, a.SortOrder)
		assert.Equal(t, 2, c.SortOrder)
		assert.Equal(t, 0, u.SortOrder)
	})

	t.Run("CreateRecord rejects a foreign group", func(t *testing.T) {
		r := &models.Record{UserID: user.ID, GroupID: foreign.ID, Date: "2024-03-05", Salary: 1, EndHour: 19}
		assert.ErrorIs(t, store.CreateRecord(ctx, r), models.ErrInvalidGroup)
	})

	t.Run("GetRecord resolves group name and hides other users' rows", func(t *testing.T) {
		got, err := store.GetRecord(ctx, user.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Work", got.GroupName)

		_, err = store.GetRecord(ctx, other.ID, a.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("MoveRecord within a group", func(t *testing.T) {
		require.NoError(t, store.MoveRecord(ctx, user.ID, a.ID, work.ID, 2))
		assert.Equal(t, []string{b.ID, c.ID, a.ID}, orderOf(t, store, models.RecordsIn(user.ID, work.ID)))
	})

	t.Run("MoveRecord across groups compacts the source", func(t *testing.T) {
		require.NoError(t, store.MoveRecord(ctx, user.ID, c.ID, "", 0))
		assert.Equal(t, []string{b.ID, a.ID}, orderOf(t, store, models.RecordsIn(user.ID, work.ID)))
		assert.Equal(t, []string{c.ID, u.ID}, orderOf(t, store, models.RecordsIn(user.ID, "")))
		requireDense(t, store, models.RecordsIn(user.ID, work.ID))
		requireDense(t, store, models.RecordsIn(user.ID, ""))
	})

	t.Run("MoveRecord into a foreign group fails", func(t *testing.T) {
		assert.ErrorIs(t, store.MoveRecord(ctx, user.ID, c.ID, foreign.ID, 0), models.ErrInvalidGroup)
	})

	t.Run("UpdateRecord with new group appends at the end", func(t *testing.T) {
		got, err := store.GetRecord(ctx, user.ID, u.ID)
		require.NoError(t, err)
		got.GroupID = work.ID
		got.Minutes = 45
		got.CalculatedPay = 50
		require.NoError(t, store.UpdateRecord(ctx, got))
		assert.Equal(t, 2, got.SortOrder)

		assert.Equal(t, []string{b.ID, a.ID, u.ID}, orderOf(t, store, models.RecordsIn(user.ID, work.ID)))
		assert.Equal(t, []string{c.ID}, orderOf(t, store, models.RecordsIn(user.ID, "")))

		reread, err := store.GetRecord(ctx, user.ID, u.ID)
		require.NoError(t, err)
		assert.Equal(t, 45, reread.Minutes)
		assert.Equal(t, int64(50), reread.CalculatedPay)
	})

	t.Run("DeleteRecord compacts", func(t *testing.T) {
		require.NoError(t, store.DeleteRecord(ctx, user.ID, b.ID))
		assert.Equal(t, []string{a.ID, u.ID}, orderOf(t, store, models.RecordsIn(user.ID, work.ID)))
		requireDense(t, store, models.RecordsIn(user.ID, work.ID))

		assert.ErrorIs(t, store.DeleteRecord(ctx, user.ID, b.ID), models.ErrNotFound)
		assert.ErrorIs(t, store.DeleteRecord(ctx, other.ID, a.ID), models.ErrNotFound)
	})

	t.Run("ListRecords orders ungrouped first then by group position", func(t *testing.T) {
		records, err := store.ListRecords(ctx, user.ID)
		require.NoError(t, err)
		ids := make([]string, len(records))
		for i, r := range records {
			ids[i] = r.ID
		}
		assert.Equal(t, []string{c.ID, a.ID, u.ID}, ids)
		assert.Equal(t, "Work", records[1].GroupName)
		assert.Empty(t, records[0].GroupName)
	})
}
