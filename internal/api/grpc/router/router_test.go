package router

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dtroode/tasktracker-server/internal/testutil"
)

func dialBufconn(t *testing.T, s *grpc.Server) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(health.NewServer(), testutil.MakeNoopLogger())
	s := r.Register()
	require.NotNil(t, s)

	services := s.GetServiceInfo()
	assert.Contains(t, services, "grpc.health.v1.Health")
	assert.Contains(t, services, "grpc.reflection.v1.ServerReflection")
}

func TestRouter_HealthCheck(t *testing.T) {
	t.Parallel()

	hs := health.NewServer()
	hs.SetServingStatus("tasktracker", healthpb.HealthCheckResponse_NOT_SERVING)

	conn := dialBufconn(t, New(hs, testutil.MakeNoopLogger()).Register())
	client := healthpb.NewHealthClient(conn)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	resp, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "tasktracker"})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestRouter_RecoverPanic(t *testing.T) {
	r := New(health.NewServer(), testutil.MakeNoopLogger())

	err := r.recoverPanic("boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal server error")
	assert.NotContains(t, err.Error(), "boom")
}
