package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/overtime/internal/metrics"
	"github.com/mmynk/overtime/internal/models"
)

// SheetName is the worksheet holding records in XLSX exports.
const SheetName = "Overtime"

// ExportHeader is the fixed column order of every export.
var ExportHeader = []string{"Date", "Salary", "End Hour", "Minutes", "Calculated Pay", "Group"}

// RecordLister reads a user's records with resolved group names.
type RecordLister interface {
	ListRecords(ctx context.Context, userID string) ([]*models.Record, error)
}

// Exporter serializes a user's records.
type Exporter struct {
	records RecordLister
}

// NewExporter creates an Exporter reading from records.
func NewExporter(records RecordLister) *Exporter {
	return &Exporter{records: records}
}

// ExportCSV returns the user's records as CSV text with ExportHeader.
func (e *Exporter) ExportCSV(ctx context.Context, userID string) (string, error) {
	records, err := e.records.ListRecords(ctx, userID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(ExportHeader); err != nil {
		return "", err
	}
	for _, r := range records {
		if err := w.Write(exportRow(r)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	metrics.ObserveExport("csv", len(records))
	return sb.String(), nil
}

// ExportXLSX returns the user's records as an XLSX workbook with one sheet.
func (e *Exporter) ExportXLSX(ctx context.Context, userID string) ([]byte, error) {
	records, err := e.records.ListRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(ExportHeader))
	for i, h := range ExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range records {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{r.Date, r.Salary, r.EndHour, r.Minutes, r.CalculatedPay, r.GroupName}
		if err := f.SetSheetRow(SheetName, cellRef, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}

	metrics.ObserveExport("xlsx", len(records))
	return buf.Bytes(), nil
}

func exportRow(r *models.Record) []string {
	return []string{
		r.Date,
		strconv.FormatFloat(r.Salary, 'f', -1, 64),
		strconv.Itoa(r.EndHour),
		strconv.Itoa(r.Minutes),
		strconv.FormatInt(r.CalculatedPay, 10),
		r.GroupName,
	}
}
