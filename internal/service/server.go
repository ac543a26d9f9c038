package service

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/overtime/internal/auth"
	"github.com/mmynk/overtime/internal/middleware"
	"github.com/mmynk/overtime/internal/storage"
	"github.com/mmynk/overtime/pkg/proto/protoconnect"
)

// RegisterHandlers mounts every RPC service on mux. AuthService accepts
// anonymous calls; the others require a valid session token.
func RegisterHandlers(mux *http.ServeMux, store storage.Store, jwtManager *auth.JWTManager, logger *slog.Logger) {
	public := connect.WithInterceptors(
		middleware.MetricsInterceptor(),
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)
	private := connect.WithInterceptors(
		middleware.MetricsInterceptor(),
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)

	authSvc := NewAuthService(auth.NewPasswordAuthenticator(store), store, jwtManager, logger)
	mux.Handle(protoconnect.NewAuthServiceHandler(authSvc, public))
	mux.Handle(protoconnect.NewOvertimeServiceHandler(NewOvertimeService(store), private))
	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(store), private))
	mux.Handle(protoconnect.NewSettingsServiceHandler(NewSettingsService(store), private))
}
