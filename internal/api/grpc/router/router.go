package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/tasktracker-server/internal/api/grpc/middleware"
	"github.com/dtroode/tasktracker-server/internal/logger"
)

// Router represents the gRPC router for operational services.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	healthServer *health.Server
	logger       *logger.Logger
}

// New creates new gRPC Router instance.
//
// Parameters:
//   - healthServer: The health server whose statuses are published
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	healthServer *health.Server,
	logger *logger.Logger,
) *Router {
	return &Router{
		healthServer: healthServer,
		logger:       logger,
	}
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging and panic recovery interceptors.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoveryOpt := recovery.WithRecoveryHandler(r.recoverPanic)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	healthpb.RegisterHealthServer(s, r.healthServer)
	reflection.Register(s)

	return s
}

func (r *Router) recoverPanic(p any) error {
	r.logger.Error("gRPC handler panicked",
		"panic", p)
	return status.Error(codes.Internal, "internal server error")
}
