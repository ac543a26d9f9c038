package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/overtime/internal/calculator"
	"github.com/mmynk/overtime/internal/csvio"
	"github.com/mmynk/overtime/internal/overtime"
	"github.com/mmynk/overtime/internal/storage"
	pb "github.com/mmynk/overtime/pkg/proto"
	"github.com/mmynk/overtime/pkg/proto/protoconnect"
)

// OvertimeService implements the Connect OvertimeService.
type OvertimeService struct {
	protoconnect.UnimplementedOvertimeServiceHandler
	records  *overtime.RecordRepository
	importer *csvio.Importer
	exporter *csvio.Exporter
}

// NewOvertimeService creates an OvertimeService on top of store.
func NewOvertimeService(store storage.Store) *OvertimeService {
	records := overtime.NewRecordRepository(store)
	return &OvertimeService{
		records:  records,
		importer: csvio.NewImporter(records, overtime.NewGroupRepository(store)),
		exporter: csvio.NewExporter(store),
	}
}

// CalculatePay previews the pay for a session without storing anything.
func (s *OvertimeService) CalculatePay(ctx context.Context, req *connect.Request[pb.CalculatePayRequest]) (*connect.Response[pb.CalculatePayResponse], error) {
	endHour, minutes := int(req.Msg.EndHour), int(req.Msg.Minutes)
	pay, err := calculator.ComputePay(req.Msg.Salary, endHour, minutes)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.CalculatePayResponse{
		OvertimeHours: calculator.OvertimeHours(endHour, minutes),
		Pay:           pay,
	}), nil
}

// CreateRecord stores a new record at the end of its group.
func (s *OvertimeService) CreateRecord(ctx context.Context, req *connect.Request[pb.CreateRecordRequest]) (*connect.Response[pb.CreateRecordResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateRecord request received",
		"user_id", userID,
		"date", req.Msg.GetRecord().GetDate(),
		"group_id", req.Msg.GetRecord().GetGroupId(),
	)

	record, err := s.records.Create(ctx, userID, recordInput(req.Msg.GetRecord()))
	if err != nil {
		slog.Warn("CreateRecord failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Record created", "record_id", record.ID, "pay", record.CalculatedPay)
	return connect.NewResponse(&pb.CreateRecordResponse{Record: toProtoRecord(record)}), nil
}

// UpdateRecord replaces a record's fields and recomputes its pay.
func (s *OvertimeService) UpdateRecord(ctx context.Context, req *connect.Request[pb.UpdateRecordRequest]) (*connect.Response[pb.UpdateRecordResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateRecord request received", "user_id", userID, "record_id", req.Msg.RecordId)

	record, err := s.records.Update(ctx, userID, req.Msg.RecordId, recordInput(req.Msg.GetRecord()))
	if err != nil {
		slog.Warn("UpdateRecord failed", "record_id", req.Msg.RecordId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.UpdateRecordResponse{Record: toProtoRecord(record)}), nil
}

// DeleteRecord removes a record.
func (s *OvertimeService) DeleteRecord(ctx context.Context, req *connect.Request[pb.DeleteRecordRequest]) (*connect.Response[pb.DeleteRecordResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteRecord request received", "user_id", userID, "record_id", req.Msg.RecordId)

	if err := s.records.Delete(ctx, userID, req.Msg.RecordId); err != nil {
		slog.Warn("DeleteRecord failed", "record_id", req.Msg.RecordId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.DeleteRecordResponse{}), nil
}

// ListRecords returns the caller's records in display order and their total pay.
func (s *OvertimeService) ListRecords(ctx context.Context, req *connect.Request[pb.ListRecordsRequest]) (*connect.Response[pb.ListRecordsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.records.ListForUser(ctx, userID)
	if err != nil {
		slog.Error("ListRecords failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &pb.ListRecordsResponse{Records: make([]*pb.Record, len(records))}
	for i, r := range records {
		resp.Records[i] = toProtoRecord(r)
		resp.TotalPay += r.CalculatedPay
	}

	slog.Debug("ListRecords successful", "user_id", userID, "count", len(records))
	return connect.NewResponse(resp), nil
}

// MoveRecord reorders a record, possibly into another group.
func (s *OvertimeService) MoveRecord(ctx context.Context, req *connect.Request[pb.MoveRecordRequest]) (*connect.Response[pb.MoveRecordResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("MoveRecord request received",
		"user_id", userID,
		"record_id", req.Msg.RecordId,
		"group_id", req.Msg.GroupId,
		"index", req.Msg.Index,
	)

	if err := s.records.Move(ctx, userID, req.Msg.RecordId, req.Msg.GroupId, int(req.Msg.Index)); err != nil {
		slog.Warn("MoveRecord failed", "record_id", req.Msg.RecordId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.MoveRecordResponse{}), nil
}

// ImportCSV imports the valid rows of a CSV file and reports the rest.
func (s *OvertimeService) ImportCSV(ctx context.Context, req *connect.Request[pb.ImportCSVRequest]) (*connect.Response[pb.ImportCSVResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ImportCSV request received", "user_id", userID, "bytes", len(req.Msg.Content))

	result, err := s.importer.ImportCSV(ctx, userID, req.Msg.Content)
	if err != nil {
		slog.Warn("ImportCSV failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &pb.ImportCSVResponse{
		Imported: int32(result.Imported),
		Errors:   make([]*pb.RowError, len(result.Errors)),
	}
	for i, e := range result.Errors {
		resp.Errors[i] = &pb.RowError{Row: int32(e.Row), Reason: e.Reason}
	}
	return connect.NewResponse(resp), nil
}

// ExportCSV returns the caller's records as CSV.
func (s *OvertimeService) ExportCSV(ctx context.Context, req *connect.Request[pb.ExportCSVRequest]) (*connect.Response[pb.ExportCSVResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	content, err := s.exporter.ExportCSV(ctx, userID)
	if err != nil {
		slog.Error("ExportCSV failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.ExportCSVResponse{
		Filename: exportFilename("csv"),
		Content:  content,
	}), nil
}

// ExportXLSX returns the caller's records as an XLSX workbook.
func (s *OvertimeService) ExportXLSX(ctx context.Context, req *connect.Request[pb.ExportXLSXRequest]) (*connect.Response[pb.ExportXLSXResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	content, err := s.exporter.ExportXLSX(ctx, userID)
	if err != nil {
		slog.Error("ExportXLSX failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.ExportXLSXResponse{
		Filename: exportFilename("xlsx"),
		Content:  content,
	}), nil
}

// recordInput tolerates a missing record; validation then rejects the empty date.
func recordInput(f *pb.RecordFields) overtime.RecordInput {
	return overtime.RecordInput{
		GroupID: f.GetGroupId(),
		Date:    f.GetDate(),
		Salary:  f.GetSalary(),
		EndHour: int(f.GetEndHour()),
		Minutes: int(f.GetMinutes()),
	}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("overtime-records-%s.%s", time.Now().Format(overtime.DateLayout), ext)
}
