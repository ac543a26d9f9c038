// Package overtime holds the business rules around overtime records, groups
// and user settings. Storage is reached only through the storage interfaces.
package overtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/overtime/internal/calculator"
	"github.com/mmynk/overtime/internal/models"
	"github.com/mmynk/overtime/internal/storage"
)

// RecordStore is the storage needed by RecordRepository.
type RecordStore interface {
	storage.RecordStore
	GetGroup(ctx context.Context, userID, groupID string) (*models.Group, error)
}

// RecordInput carries the user-editable fields of a record. Any computed pay a
// client may send is not part of it: pay is always derived server-side.
type RecordInput struct {
	GroupID string
	Date    string  `validate:"required,datetime=2006-01-02"`
	Salary  float64 `validate:"gte=0"`
	EndHour int     `validate:"gte=19,lte=47"`
	Minutes int     `validate:"gte=0,lte=59"`
}

// Validate checks in without touching storage. Group ownership is checked on write.
func (in RecordInput) Validate() error {
	if err := validateStruct(in); err != nil {
		return err
	}
	return calculator.Validate(in.Salary, in.EndHour, in.Minutes)
}

// RecordRepository validates and persists overtime records for their owner.
type RecordRepository struct {
	store RecordStore
}

// NewRecordRepository creates a RecordRepository on top of store.
func NewRecordRepository(store RecordStore) *RecordRepository {
	return &RecordRepository{store: store}
}

// Create validates in, computes pay and appends the record to its group.
func (r *RecordRepository) Create(ctx context.Context, userID string, in RecordInput) (*models.Record, error) {
	pay, err := r.check(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	record := &models.Record{
		UserID:        userID,
		GroupID:       in.GroupID,
		Date:          in.Date,
		Salary:        in.Salary,
		EndHour:       in.EndHour,
		Minutes:       in.Minutes,
		CalculatedPay: pay,
	}
	if err := r.store.CreateRecord(ctx, record); err != nil {
		return nil, err
	}

	// Re-read to resolve GroupName
	return r.store.GetRecord(ctx, userID, record.ID)
}

// Get returns one of the caller's records.
func (r *RecordRepository) Get(ctx context.Context, userID, recordID string) (*models.Record, error) {
	return r.store.GetRecord(ctx, userID, recordID)
}

// Update replaces the record's fields and recomputes its pay. Moving it to a
// different group appends it at the end of that group.
func (r *RecordRepository) Update(ctx context.Context, userID, recordID string, in RecordInput) (*models.Record, error) {
	record, err := r.store.GetRecord(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}

	pay, err := r.check(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	record.GroupID = in.GroupID
	record.Date = in.Date
	record.Salary = in.Salary
	record.EndHour = in.EndHour
	record.Minutes = in.Minutes
	record.CalculatedPay = pay

	if err := r.store.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}

	return r.store.GetRecord(ctx, userID, recordID)
}

// Delete removes one of the caller's records.
func (r *RecordRepository) Delete(ctx context.Context, userID, recordID string) error {
	return r.store.DeleteRecord(ctx, userID, recordID)
}

// Move places a record at index inside groupID ("" for ungrouped).
func (r *RecordRepository) Move(ctx context.Context, userID, recordID, groupID string, index int) error {
	if err := r.checkGroup(ctx, userID, groupID); err != nil {
		return err
	}
	return r.store.MoveRecord(ctx, userID, recordID, groupID, index)
}

// ListForUser returns the caller's records in display order.
func (r *RecordRepository) ListForUser(ctx context.Context, userID string) ([]*models.Record, error) {
	return r.store.ListRecords(ctx, userID)
}

// check validates in before any write and returns the pay for it.
func (r *RecordRepository) check(ctx context.Context, userID string, in RecordInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	pay, err := calculator.ComputePay(in.Salary, in.EndHour, in.Minutes)
	if err != nil {
		return 0, err
	}

	if err := r.checkGroup(ctx, userID, in.GroupID); err != nil {
		return 0, err
	}
	return pay, nil
}

func (r *RecordRepository) checkGroup(ctx context.Context, userID, groupID string) error {
	if groupID == "" {
		return nil
	}

	_, err := r.store.GetGroup(ctx, userID, groupID)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: group %s does not belong to the user", models.ErrInvalidGroup, groupID)
	}
	return err
}
