package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/overtime/internal/models"
	"github.com/mmynk/overtime/internal/overtime"
	"github.com/mmynk/overtime/internal/storage"
	pb "github.com/mmynk/overtime/pkg/proto"
	"github.com/mmynk/overtime/pkg/proto/protoconnect"
)

// SettingsService implements the Connect SettingsService.
type SettingsService struct {
	protoconnect.UnimplementedSettingsServiceHandler
	settings *overtime.Settings
}

func NewSettingsService(store storage.UserStore) *SettingsService {
	return &SettingsService{settings: overtime.NewSettings(store)}
}

func (s *SettingsService) GetSettings(ctx context.Context, req *connect.Request[pb.GetSettingsRequest]) (*connect.Response[pb.GetSettingsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetSettingsResponse{Settings: toProtoSettings(settings)}), nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, req *connect.Request[pb.UpdateSettingsRequest]) (*connect.Response[pb.UpdateSettingsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	in := req.Msg.GetSettings()
	if in == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("settings are required"))
	}
	slog.Info("UpdateSettings request received", "user_id", userID, "monthly_salary", in.MonthlySalary)

	settings := models.Settings{
		MonthlySalary:      in.MonthlySalary,
		UngroupedCollapsed: in.UngroupedCollapsed,
	}
	if err := s.settings.Update(ctx, userID, settings); err != nil {
		slog.Warn("UpdateSettings failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.UpdateSettingsResponse{Settings: toProtoSettings(settings)}), nil
}
