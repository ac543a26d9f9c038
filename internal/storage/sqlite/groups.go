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

const groupColumns = "id, user_id, name, sort_order, collapsed, created_at"

// CreateGroup persists a new group at the end of the user's group list.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		order, err := appendOrder(ctx, tx, models.GroupsOf(group.UserID))
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO groups ("+groupColumns+") VALUES (?, ?, ?, ?, ?, ?)",
			group.ID, group.UserID, group.Name, order, boolToInt(group.Collapsed), group.CreatedAt,
		)
		if err != nil {
			return storageErr("insert group", err)
		}

		group.SortOrder = order
		return nil
	})
}

// GetGroup retrieves a group owned by userID.
func (s *SQLiteStore) GetGroup(ctx context.Context, userID, groupID string) (*models.Group, error) {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	group, err := scanGroup(s.db.QueryRowContext(ctx,
		"SELECT "+groupColumns+" FROM groups WHERE id = ? AND user_id = ?",
		groupID, userID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: group %s", models.ErrNotFound, groupID)
	}
	if err != nil {
		return nil, storageErr("get group", err)
	}

	return group, nil
}

// FindGroupByName returns the user's first group with the given name, or nil.
func (s *SQLiteStore) FindGroupByName(ctx context.Context, userID, name string) (*models.Group, error) {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	group, err := scanGroup(s.db.QueryRowContext(ctx,
		"SELECT "+groupColumns+" FROM groups WHERE user_id = ? AND name = ? ORDER BY sort_order LIMIT 1",
		userID, name,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("find group by name", err)
	}

	return group, nil
}

// ListGroups retrieves the user's groups in display order.
func (s *SQLiteStore) ListGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+groupColumns+" FROM groups WHERE user_id = ? ORDER BY sort_order, id",
		userID,
	)
	if err != nil {
		return nil, storageErr("list groups", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.UserID, &group.Name, &group.SortOrder, &group.Collapsed, &group.CreatedAt); err != nil {
			return nil, storageErr("scan group", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate groups", err)
	}

	return groups, nil
}

// UpdateGroup writes the group's name and collapsed flag.
func (s *SQLiteStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		"UPDATE groups SET name = ?, collapsed = ? WHERE id = ? AND user_id = ?",
		group.Name, boolToInt(group.Collapsed), group.ID, group.UserID,
	)
	if err != nil {
		return storageErr("update group", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: group %s", models.ErrNotFound, group.ID)
	}

	return nil
}

// MoveGroup places the group at index in the user's group list.
func (s *SQLiteStore) MoveGroup(ctx context.Context, userID, groupID string, index int) error {
	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return moveTo(ctx, tx, models.GroupsOf(userID), groupID, index)
	})
}

// DeleteGroup removes a group. Its records are appended, in their current
// order, to the end of the ungrouped scope; they are never deleted.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, userID, groupID string) error {
	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var order int
		err := tx.QueryRowContext(ctx,
			"SELECT sort_order FROM groups WHERE id = ? AND user_id = ?",
			groupID, userID,
		).Scan(&order)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: group %s", models.ErrNotFound, groupID)
		}
		if err != nil {
			return storageErr("get group", err)
		}

		records, err := orderedItems(ctx, tx, models.RecordsIn(userID, groupID))
		if err != nil {
			return err
		}
		next, err := appendOrder(ctx, tx, models.RecordsIn(userID, ""))
		if err != nil {
			return err
		}
		for i, r := range records {
			_, err := tx.ExecContext(ctx,
				"UPDATE overtime_records SET group_id = NULL, sort_order = ? WHERE id = ?",
				next+i, r.id,
			)
			if err != nil {
				return storageErr("ungroup record", err)
			}
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID); err != nil {
			return storageErr("delete group", err)
		}

		return compactAfterRemoval(ctx, tx, models.GroupsOf(userID), order)
	})
}

func scanGroup(row *sql.Row) (*models.Group, error) {
	group := &models.Group{}
	if err := row.Scan(&group.ID, &group.UserID, &group.Name, &group.SortOrder, &group.Collapsed, &group.CreatedAt); err != nil {
		return nil, err
	}
	return group, nil
}
