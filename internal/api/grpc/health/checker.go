// Package health keeps the gRPC health statuses in line with the database.
package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// ServiceName is the health service name reported next to the overall "" entry.
const ServiceName = "tasktracker"

const (
	pingTimeout = 2 * time.Second
	// DefaultInterval is used when a non-positive interval is configured.
	DefaultInterval = 15 * time.Second
)

// Checker pings the database and publishes the result on a health server.
type Checker struct {
	pinger   model.Pinger
	server   *health.Server
	interval time.Duration
	logger   *logger.Logger

	last healthpb.HealthCheckResponse_ServingStatus
}

func NewChecker(pinger model.Pinger, server *health.Server, interval time.Duration, logger *logger.Logger) *Checker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Checker{
		pinger:   pinger,
		server:   server,
		interval: interval,
		logger:   logger,
		last:     healthpb.HealthCheckResponse_UNKNOWN,
	}
}

// Check pings once and publishes the resulting status.
func (c *Checker) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	servingStatus := healthpb.HealthCheckResponse_SERVING
	if err := c.pinger.Ping(ctx); err != nil {
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
		if c.last != servingStatus {
			c.logger.Warn("Health checker: database unreachable",
				"error", err.Error())
		}
	} else if c.last != servingStatus {
		c.logger.Info("Health checker: database reachable")
	}

	c.server.SetServingStatus("", servingStatus)
	c.server.SetServingStatus(ServiceName, servingStatus)
	c.last = servingStatus

	return servingStatus
}

// Run checks immediately and then every interval until ctx is done.
// On return every service is marked NOT_SERVING.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}
