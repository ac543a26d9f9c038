package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/overtime/internal/models"
)

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return newStore(db), mock
}

func TestMoveGroup_RollsBackOnFailedRenumber(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, sort_order FROM groups WHERE user_id = \?`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sort_order"}).
			AddRow("a", 0).AddRow("b", 1).AddRow("c", 2))
	mock.ExpectExec(`UPDATE groups SET sort_order = \? WHERE id = \?`).
		WithArgs(0, "c").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE groups SET sort_order = \? WHERE id = \?`).
		WithArgs(1, "a").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := store.MoveGroup(context.Background(), "u1", "c", 0)
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveGroup_UnknownItemRollsBack(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, sort_order FROM groups`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sort_order"}).AddRow("a", 0))
	mock.ExpectRollback()

	err := store.MoveGroup(context.Background(), "u1", "zzz", 0)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRecord_RollsBackWhenCompactionFails(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(group_id, ''\), sort_order FROM overtime_records`).
		WithArgs("r1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"group_id", "sort_order"}).AddRow("", 3))
	mock.ExpectExec(`DELETE FROM overtime_records WHERE id = \?`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE overtime_records SET sort_order = sort_order - 1`).
		WithArgs("u1", 3).
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := store.DeleteRecord(context.Background(), "u1", "r1")
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveGroup_CommitsOnlyChangedRows(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, sort_order FROM groups`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sort_order"}).
			AddRow("a", 0).AddRow("b", 1).AddRow("c", 2).AddRow("d", 3))
	mock.ExpectExec(`UPDATE groups SET sort_order`).WithArgs(1, "c").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE groups SET sort_order`).WithArgs(2, "b").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.MoveGroup(context.Background(), "u1", "c", 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
