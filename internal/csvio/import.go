// Package csvio moves overtime records in and out of CSV and XLSX files.
package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/mmynk/overtime/internal/calculator"
	"github.com/mmynk/overtime/internal/metrics"
	"github.com/mmynk/overtime/internal/models"
	"github.com/mmynk/overtime/internal/overtime"
)

var requiredColumns = []string{"date", "salary", "end_hour", "minutes"}

const groupColumn = "group"

// RecordCreator stores one validated record.
type RecordCreator interface {
	Create(ctx context.Context, userID string, in overtime.RecordInput) (*models.Record, error)
}

// GroupResolver finds or creates a group by name.
type GroupResolver interface {
	Resolve(ctx context.Context, userID, name string) (*models.Group, error)
}

// RowError describes why one data row was not imported.
type RowError struct {
	// Row is the 1-based line of the row in the file; the header is line 1.
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}

// Importer turns CSV text into overtime records.
type Importer struct {
	records RecordCreator
	groups  GroupResolver
}

// NewImporter creates an Importer.
func NewImporter(records RecordCreator, groups GroupResolver) *Importer {
	return &Importer{records: records, groups: groups}
}

// ImportCSV imports every valid row of text for userID. Bad rows are reported
// in the result and never stop the batch. Only an unreadable file or header
// fails with models.ErrMalformedFile; a storage failure aborts the import.
func (im *Importer) ImportCSV(ctx context.Context, userID, text string) (*ImportResult, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: file is empty", models.ErrMalformedFile)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header: %v", models.ErrMalformedFile, err)
	}
	columns := indexHeader(header)
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", models.ErrMalformedFile, col)
		}
	}

	result := &ImportResult{Errors: []RowError{}}
	groupIDs := make(map[string]string)

	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: %v", models.ErrMalformedFile, err)
			}
			result.Errors = append(result.Errors, RowError{Row: parseErr.StartLine, Reason: parseErr.Err.Error()})
			continue
		}
		line, _ := r.FieldPos(0)

		in, groupName, reason := parseRow(fields, columns)
		if reason != "" {
			result.Errors = append(result.Errors, RowError{Row: line, Reason: reason})
			continue
		}

		if groupName != "" {
			id, ok := groupIDs[groupName]
			if !ok {
				group, err := im.groups.Resolve(ctx, userID, groupName)
				if err != nil {
					if errors.Is(err, models.ErrStorage) {
						return nil, err
					}
					result.Errors = append(result.Errors, RowError{Row: line, Reason: err.Error()})
					continue
				}
				id = group.ID
				groupIDs[groupName] = id
			}
			in.GroupID = id
		}

		if _, err := im.records.Create(ctx, userID, in); err != nil {
			if errors.Is(err, models.ErrStorage) {
				return nil, err
			}
			result.Errors = append(result.Errors, RowError{Row: line, Reason: err.Error()})
			continue
		}
		result.Imported++
	}

	metrics.ObserveImport(result.Imported, len(result.Errors))
	slog.Info("CSV import finished",
		"user_id", userID,
		"imported", result.Imported,
		"rejected", len(result.Errors),
	)

	return result, nil
}

// indexHeader maps normalized column names to their position. The first
// occurrence of a duplicated column wins.
func indexHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}
	return columns
}

func cell(fields []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// parseRow extracts a record from one row. A non-empty reason means the row is rejected.
func parseRow(fields []string, columns map[string]int) (overtime.RecordInput, string, string) {
	var in overtime.RecordInput

	for _, col := range requiredColumns {
		if cell(fields, columns, col) == "" {
			return in, "", "missing " + col
		}
	}

	salary, err := strconv.ParseFloat(cell(fields, columns, "salary"), 64)
	if err != nil || math.IsNaN(salary) || math.IsInf(salary, 0) {
		return in, "", "salary is not a number"
	}
	if salary <= 0 {
		return in, "", "salary must be greater than 0"
	}

	endHour, err := strconv.Atoi(cell(fields, columns, "end_hour"))
	if err != nil {
		return in, "", "end_hour is not an integer"
	}
	if endHour < calculator.ShiftEndHour {
		return in, "", fmt.Sprintf("end_hour must be at least %d", calculator.ShiftEndHour)
	}
	if endHour > calculator.MaxEndHour {
		return in, "", fmt.Sprintf("end_hour must be at most %d", calculator.MaxEndHour)
	}

	minutes, err := strconv.Atoi(cell(fields, columns, "minutes"))
	if err != nil {
		return in, "", "minutes is not an integer"
	}
	if minutes < 0 || minutes > 59 {
		return in, "", "minutes must be between 0 and 59"
	}

	in.Date = cell(fields, columns, "date")
	in.Salary = salary
	in.EndHour = endHour
	in.Minutes = minutes

	// Reject before the group is resolved so bad rows never create groups
	if err := in.Validate(); err != nil {
		return in, "", err.Error()
	}
	return in, cell(fields, columns, groupColumn), ""
}
