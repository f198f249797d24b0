package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/health"

	grpchealth "github.com/dtroode/tasktracker-server/internal/api/grpc/health"
	grpcrouter "github.com/dtroode/tasktracker-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/tasktracker-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/tasktracker-server/internal/api/http/context"
	httprouter "github.com/dtroode/tasktracker-server/internal/api/http/router"
	httpserver "github.com/dtroode/tasktracker-server/internal/api/http/server"
	"github.com/dtroode/tasktracker-server/database"
	"github.com/dtroode/tasktracker-server/internal/config"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/password"
	"github.com/dtroode/tasktracker-server/internal/repository/postgres"
	"github.com/dtroode/tasktracker-server/internal/server"
	"github.com/dtroode/tasktracker-server/internal/service"
	"github.com/dtroode/tasktracker-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

type runningServer struct {
	server        model.Server
	securityLayer model.SecurityLayer
	name          string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	if version, err := database.Version(ctx, db.DB); err == nil {
		logger.Info("database schema is up to date", "version", version)
	}

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	hasher := password.NewArgon2(password.Params{
		Time:    cfg.KDF.Time,
		MemKiB:  cfg.KDF.MemKiB,
		Par:     cfg.KDF.Par,
		KeyLen:  cfg.KDF.KeyLen,
		SaltLen: cfg.KDF.SaltLen,
	})
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	taskService := service.NewTask(taskRepo, logger)

	httpRouter := httprouter.New(httprouter.Services{
		Auth:          authService,
		Task:          taskService,
		Authenticator: authService,
		Pinger:        db,
	}, httpctx.NewManager(), cfg.HTTP.CORSOrigins, logger)

	servers := []runningServer{{
		server:        httpserver.NewHTTPServer(httpRouter.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port)),
		securityLayer: newSecurityLayer(cfg, server.HTTPProtocols),
		name:          "HTTP",
	}}

	var wg sync.WaitGroup

	if cfg.GRPC.Enabled {
		healthServer := health.NewServer()
		checker := grpchealth.NewChecker(db, healthServer, cfg.GRPC.HealthInterval, logger)

		wg.Add(1)
		go func() {
			defer wg.Done()
			checker.Run(ctx)
		}()

		grpcRouter := grpcrouter.New(healthServer, logger)
		servers = append(servers, runningServer{
			server:        grpcserver.NewGRPCServer(grpcRouter.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port)),
			securityLayer: newSecurityLayer(cfg, server.GRPCProtocols),
			name:          "gRPC",
		})
	}

	for _, rs := range servers {
		wg.Add(1)
		go func(rs runningServer) {
			defer wg.Done()
			logger.Info("Starting server on", "server", rs.name, "address", rs.server.Address())
			if err := rs.server.Start(rs.securityLayer); err != nil {
				logger.Error("failed to start server", "server", rs.name, "error", err)
				stop()
			}
		}(rs)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, rs := range servers {
		if err := rs.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "server", rs.name, "error", err, "address", rs.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newSecurityLayer(cfg *config.Config, nextProtos []string) model.SecurityLayer {
	return server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName, nextProtos)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
