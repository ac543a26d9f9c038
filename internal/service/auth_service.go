package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/overtime/internal/auth"
	"github.com/mmynk/overtime/internal/overtime"
	"github.com/mmynk/overtime/internal/storage"
	pb "github.com/mmynk/overtime/pkg/proto"
	"github.com/mmynk/overtime/pkg/proto/protoconnect"
)

// AuthService implements the Connect AuthService. Register and Login are
// public; the profile calls need the identity set by middleware.OptionalAuth.
type AuthService struct {
	protoconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	profile       *overtime.Profile
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, users storage.UserStore, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		profile:       overtime.NewProfile(users),
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a new user account and signs it in.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[pb.RegisterRequest]) (*connect.Response[pb.RegisterResponse], error) {
	s.logger.Info("Register request", "email", req.Msg.Email)

	user, err := s.authenticator.Register(ctx, req.Msg.Email, req.Msg.DisplayName, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", req.Msg.Email, "error", err)
		return nil, authError(err)
	}

	// Generate JWT token
	token, expiresAt, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered", "user_id", user.ID)
	return connect.NewResponse(&pb.RegisterResponse{
		User:      toProtoUser(user),
		Token:     token,
		ExpiresAt: timestamppb.New(expiresAt),
	}), nil
}

// Login authenticates a user and returns a JWT.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, authError(err)
	}

	// Generate JWT token
	token, expiresAt, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in", "user_id", user.ID)
	return connect.NewResponse(&pb.LoginResponse{
		User:      toProtoUser(user),
		Token:     token,
		ExpiresAt: timestamppb.New(expiresAt),
	}), nil
}

// GetProfile returns the currently authenticated user's account.
func (s *AuthService) GetProfile(ctx context.Context, req *connect.Request[pb.GetProfileRequest]) (*connect.Response[pb.GetProfileResponse], error) {
	// Get user ID from context (set by auth middleware)
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetProfile request", "user_id", userID)

	user, err := s.profile.Get(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetProfileResponse{User: toProtoUser(user)}), nil
}

// UpdateProfile changes the caller's display name.
func (s *AuthService) UpdateProfile(ctx context.Context, req *connect.Request[pb.UpdateProfileRequest]) (*connect.Response[pb.UpdateProfileResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateProfile request", "user_id", userID)

	user, err := s.profile.UpdateDisplayName(ctx, userID, req.Msg.DisplayName)
	if err != nil {
		s.logger.Warn("UpdateProfile failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.UpdateProfileResponse{User: toProtoUser(user)}), nil
}

// ChangePassword replaces the caller's password. Issued tokens stay valid.
func (s *AuthService) ChangePassword(ctx context.Context, req *connect.Request[pb.ChangePasswordRequest]) (*connect.Response[pb.ChangePasswordResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ChangePassword request", "user_id", userID)

	if err := s.authenticator.ChangePassword(ctx, userID, req.Msg.CurrentPassword, req.Msg.NewPassword); err != nil {
		s.logger.Warn("ChangePassword failed", "user_id", userID, "error", err)
		return nil, authError(err)
	}

	s.logger.Info("Password changed", "user_id", userID)
	return connect.NewResponse(&pb.ChangePasswordResponse{}), nil
}

func authError(err error) error {
	switch {
	case errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidAccount):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrIncorrectPassword):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	default:
		return toConnectError(err)
	}
}
