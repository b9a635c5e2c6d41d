// Package health は gRPC ヘルスチェックサービスを提供します。
package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName はヘルスチェックで公開するサービス名です。
const ServiceName = "opsgraph"

const defaultInterval = 10 * time.Second

// Pinger はバックエンドの疎通確認を行います。
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server はバックエンドの疎通状況を gRPC ヘルスチェックとして公開します。
type Server struct {
	listenAddr string
	pinger     Pinger
	interval   time.Duration
	timeout    time.Duration
	logger     *zap.Logger
	health     *grpchealth.Server
	grpcServer *grpc.Server
}

// New は Server を生成します。interval が 0 以下の場合は既定値を使います。
func New(listenAddr string, pinger Pinger, interval, timeout time.Duration, logger *zap.Logger) *Server {
	if interval <= 0 {
		interval = defaultInterval
	}
	if timeout <= 0 || timeout > interval {
		timeout = interval
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	hs := grpchealth.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	return &Server{
		listenAddr: listenAddr,
		pinger:     pinger,
		interval:   interval,
		timeout:    timeout,
		logger:     logger,
		health:     hs,
		grpcServer: srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は lis 上でヘルスチェックを提供します。ステータスの更新は Watch が行います。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC health: %w", err)
	}

	return nil
}

// Probe はバックエンドへ 1 回疎通確認を行い、結果をステータスへ反映します。
func (s *Server) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(pingCtx); err != nil {
		s.logger.Warn("docstore ping failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return status
}

// HTTPHandler は現在のステータスを返す /healthz 用ハンドラです。
func (s *Server) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := s.health.Check(r.Context(), &healthpb.HealthCheckRequest{Service: ServiceName})
		if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			http.Error(w, "NOT_SERVING", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("SERVING"))
	})
}

// Watch は interval ごとに Probe を実行し、コンテキストがキャンセルされるまでブロックします。
// gRPC リスナーの有無に関わらず /healthz のステータスを更新します。
func (s *Server) Watch(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Probe(ctx)
		}
	}
}
