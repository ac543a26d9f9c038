package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/overtime/internal/models"
)

// atEnd asks reassignScope to leave the item at the end of the new scope.
const atEnd = -1

// scopeFilter returns the table and WHERE clause selecting the members of scope.
func scopeFilter(scope models.Scope) (table, where string, args []any) {
	if scope.Kind == models.GroupScope {
		return "groups", "user_id = ?", []any{scope.UserID}
	}
	if scope.GroupID == "" {
		return "overtime_records", "user_id = ? AND group_id IS NULL", []any{scope.UserID}
	}
	return "overtime_records", "user_id = ? AND group_id = ?", []any{scope.UserID, scope.GroupID}
}

// appendOrder returns the next free sort_order of scope, i.e. its size.
func appendOrder(ctx context.Context, q querier, scope models.Scope) (int, error) {
	table, where, args := scopeFilter(scope)

	var n int
	err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+" WHERE "+where, args...).Scan(&n)
	if err != nil {
		return 0, storageErr("count "+table, err)
	}
	return n, nil
}

type orderedItem struct {
	id    string
	order int
}

// orderedItems reads the members of scope in display order.
func orderedItems(ctx context.Context, q querier, scope models.Scope) ([]orderedItem, error) {
	table, where, args := scopeFilter(scope)

	rows, err := q.QueryContext(ctx,
		"SELECT id, sort_order FROM "+table+" WHERE "+where+" ORDER BY sort_order, id",
		args...,
	)
	if err != nil {
		return nil, storageErr("read "+table+" order", err)
	}
	defer rows.Close()

	var items []orderedItem
	for rows.Next() {
		var it orderedItem
		if err := rows.Scan(&it.id, &it.order); err != nil {
			return nil, storageErr("scan "+table+" order", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate "+table+" order", err)
	}
	return items, nil
}

// moveTo places itemID at target (clamped to the scope bounds) and renumbers
// the scope to 0..n-1. Only rows whose sort_order changes are written.
// Must run inside a transaction.
func moveTo(ctx context.Context, q querier, scope models.Scope, itemID string, target int) error {
	items, err := orderedItems(ctx, q, scope)
	if err != nil {
		return err
	}

	from := -1
	for i, it := range items {
		if it.id == itemID {
			from = i
			break
		}
	}
	if from < 0 {
		return fmt.Errorf("%w: %s is not in the requested scope", models.ErrNotFound, itemID)
	}

	ids := make([]string, 0, len(items))
	for i, it := range items {
		if i != from {
			ids = append(ids, it.id)
		}
	}
	target = max(0, min(target, len(ids)))
	ids = append(ids[:target], append([]string{itemID}, ids[target:]...)...)

	table, _, _ := scopeFilter(scope)
	return writeOrder(ctx, q, table, items, ids)
}

// writeOrder stores index i as the sort_order of ids[i] wherever it differs
// from the order read in items.
func writeOrder(ctx context.Context, q querier, table string, items []orderedItem, ids []string) error {
	current := make(map[string]int, len(items))
	for _, it := range items {
		current[it.id] = it.order
	}

	for i, id := range ids {
		if order, ok := current[id]; ok && order == i {
			continue
		}
		if _, err := q.ExecContext(ctx, "UPDATE "+table+" SET sort_order = ? WHERE id = ?", i, id); err != nil {
			return storageErr("renumber "+table, err)
		}
	}
	return nil
}

// compactAfterRemoval closes the gap left at removedIndex.
func compactAfterRemoval(ctx context.Context, q querier, scope models.Scope, removedIndex int) error {
	table, where, args := scopeFilter(scope)

	_, err := q.ExecContext(ctx,
		"UPDATE "+table+" SET sort_order = sort_order - 1 WHERE "+where+" AND sort_order > ?",
		append(args, removedIndex)...,
	)
	if err != nil {
		return storageErr("compact "+table, err)
	}
	return nil
}

// reassignScope moves a record from one group scope to another: the record is
// appended to the new scope, the old scope is compacted, and when index is not
// atEnd the record is then moved to index. Must run inside a transaction.
func reassignScope(ctx context.Context, q querier, recordID string, from models.Scope, fromIndex int, to models.Scope, index int) error {
	next, err := appendOrder(ctx, q, to)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx,
		"UPDATE overtime_records SET group_id = ?, sort_order = ? WHERE id = ?",
		nullable(to.GroupID), next, recordID,
	)
	if err != nil {
		return storageErr("reassign record group", err)
	}

	if err := compactAfterRemoval(ctx, q, from, fromIndex); err != nil {
		return err
	}

	if index == atEnd {
		return nil
	}
	return moveTo(ctx, q, to, recordID, index)
}
