package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/overtime/internal/models"
)

const recordSelect = `
	SELECT r.id, r.user_id, COALESCE(r.group_id, ''), COALESCE(g.name, ''), r.date, r.salary,
	       r.end_hour, r.minutes, r.calculated_pay, r.sort_order, r.created_at
	FROM overtime_records r
	LEFT JOIN groups g ON g.id = r.group_id`

// CreateRecord persists a new record at the end of its group scope.
func (s *SQLiteStore) CreateRecord(ctx context.Context, record *models.Record) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt == 0 {
		record.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := checkGroupOwner(ctx, tx, record.UserID, record.GroupID); err != nil {
			return err
		}

		order, err := appendOrder(ctx, tx, models.RecordsIn(record.UserID, record.GroupID))
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO overtime_records
			 (id, user_id, group_id, date, salary, end_hour, minutes, calculated_pay, sort_order, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			record.ID, record.UserID, nullable(record.GroupID), record.Date, record.Salary,
			record.EndHour, record.Minutes, record.CalculatedPay, order, record.CreatedAt,
		)
		if err != nil {
			return storageErr("insert record", err)
		}

		record.SortOrder = order
		return nil
	})
}

// GetRecord retrieves a record owned by userID.
func (s *SQLiteStore) GetRecord(ctx context.Context, userID, recordID string) (*models.Record, error) {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, recordSelect+" WHERE r.id = ? AND r.user_id = ?", recordID, userID)
	if err != nil {
		return nil, storageErr("get record", err)
	}
	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: record %s", models.ErrNotFound, recordID)
	}

	return records[0], nil
}

// UpdateRecord writes the record's fields. When GroupID changed, the record is
// appended to the new group scope and the old scope is compacted.
func (s *SQLiteStore) UpdateRecord(ctx context.Context, record *models.Record) error {
	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		groupID, order, err := recordPosition(ctx, tx, record.UserID, record.ID)
		if err != nil {
			return err
		}

		if groupID != record.GroupID {
			if err := checkGroupOwner(ctx, tx, record.UserID, record.GroupID); err != nil {
				return err
			}
			err := reassignScope(ctx, tx, record.ID,
				models.RecordsIn(record.UserID, groupID), order,
				models.RecordsIn(record.UserID, record.GroupID), atEnd,
			)
			if err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE overtime_records
			 SET date = ?, salary = ?, end_hour = ?, minutes = ?, calculated_pay = ?
			 WHERE id = ?`,
			record.Date, record.Salary, record.EndHour, record.Minutes, record.CalculatedPay, record.ID,
		)
		if err != nil {
			return storageErr("update record", err)
		}

		record.SortOrder, err = currentOrder(ctx, tx, record.ID)
		return err
	})
}

// DeleteRecord removes a record and compacts its scope.
func (s *SQLiteStore) DeleteRecord(ctx context.Context, userID, recordID string) error {
	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		groupID, order, err := recordPosition(ctx, tx, userID, recordID)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM overtime_records WHERE id = ?", recordID); err != nil {
			return storageErr("delete record", err)
		}

		return compactAfterRemoval(ctx, tx, models.RecordsIn(userID, groupID), order)
	})
}

// MoveRecord places a record at index inside groupID ("" for ungrouped).
func (s *SQLiteStore) MoveRecord(ctx context.Context, userID, recordID, groupID string, index int) error {
	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		currentGroup, order, err := recordPosition(ctx, tx, userID, recordID)
		if err != nil {
			return err
		}

		if currentGroup == groupID {
			return moveTo(ctx, tx, models.RecordsIn(userID, groupID), recordID, index)
		}

		if err := checkGroupOwner(ctx, tx, userID, groupID); err != nil {
			return err
		}
		return reassignScope(ctx, tx, recordID,
			models.RecordsIn(userID, currentGroup), order,
			models.RecordsIn(userID, groupID), max(index, 0),
		)
	})
}

// ListRecords retrieves all of a user's records, ungrouped first, then by
// group position, sort order and date descending.
func (s *SQLiteStore) ListRecords(ctx context.Context, userID string) ([]*models.Record, error) {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, recordSelect+`
		WHERE r.user_id = ?
		ORDER BY CASE WHEN r.group_id IS NULL THEN -1 ELSE g.sort_order END,
		         r.sort_order, r.date DESC, r.id`,
		userID,
	)
	if err != nil {
		return nil, storageErr("list records", err)
	}

	return scanRecords(rows)
}

// checkGroupOwner fails with ErrInvalidGroup unless groupID is empty or owned by userID.
func checkGroupOwner(ctx context.Context, q querier, userID, groupID string) error {
	if groupID == "" {
		return nil
	}

	var exists int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE id = ? AND user_id = ?", groupID, userID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: group %s does not belong to the user", models.ErrInvalidGroup, groupID)
	}
	if err != nil {
		return storageErr("check group owner", err)
	}
	return nil
}

// recordPosition returns the group and sort order of a record owned by userID.
func recordPosition(ctx context.Context, q querier, userID, recordID string) (string, int, error) {
	var groupID string
	var order int
	err := q.QueryRowContext(ctx,
		"SELECT COALESCE(group_id, ''), sort_order FROM overtime_records WHERE id = ? AND user_id = ?",
		recordID, userID,
	).Scan(&groupID, &order)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, fmt.Errorf("%w: record %s", models.ErrNotFound, recordID)
	}
	if err != nil {
		return "", 0, storageErr("get record position", err)
	}
	return groupID, order, nil
}

func currentOrder(ctx context.Context, q querier, recordID string) (int, error) {
	var order int
	if err := q.QueryRowContext(ctx, "SELECT sort_order FROM overtime_records WHERE id = ?", recordID).Scan(&order); err != nil {
		return 0, storageErr("get record order", err)
	}
	return order, nil
}

func scanRecords(rows *sql.Rows) ([]*models.Record, error) {
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		r := &models.Record{}
		if err := rows.Scan(&r.ID, &r.UserID, &r.GroupID, &r.GroupName, &r.Date, &r.Salary,
			&r.EndHour, &r.Minutes, &r.CalculatedPay, &r.SortOrder, &r.CreatedAt); err != nil {
			return nil, storageErr("scan record", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate records", err)
	}

	return records, nil
}
