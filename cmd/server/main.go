package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/artfriendly/go-api-server/internal/bootstrap"
	"github.com/artfriendly/go-api-server/internal/config"
	"github.com/artfriendly/go-api-server/internal/router"
	"github.com/artfriendly/go-api-server/internal/shared/cache"
	"github.com/artfriendly/go-api-server/internal/shared/database"
	"github.com/artfriendly/go-api-server/internal/shared/logger"
	"github.com/artfriendly/go-api-server/internal/shared/metrics"
	"github.com/artfriendly/go-api-server/internal/shared/scheduler"
	"github.com/artfriendly/go-api-server/internal/shared/storage"
	"github.com/artfriendly/go-api-server/internal/shared/validator"
)

func main() {
	// Parse command line flags
	env := parseFlags()

	// Initialize logger
	logger.Setup(env)
	slog.Info("서버 초기화 시작", "env", env)

	// Run application
	if err := run(env); err != nil {
		slog.Error("서버 초기화 실패", "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	flag.Parse()
	return *env
}

// run contains the main application logic
func run(env string) error {
	// Create root context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	slog.Info("환경 변수 로드 성공")

	// Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	rdb, err := cache.New(cfg)
	if err != nil {
		return fmt.Errorf("Redis 연결 실패: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Redis 종료 실패", "error", err)
		}
	}()

	objectStorage, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		return fmt.Errorf("S3 초기화 실패: %w", err)
	}

	infra := router.Infra{
		DB:        db,
		Redis:     rdb,
		Storage:   objectStorage,
		Metrics:   metrics.New(),
		Scheduler: scheduler.New(),
	}

	// Setup server
	srv, app, err := setupServer(cfg, infra)
	if err != nil {
		return err
	}

	if err := app.MemberService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		return fmt.Errorf("관리자 계정 준비 실패: %w", err)
	}

	// 첫 스케줄 전에도 랭킹을 조회할 수 있도록 기동 시 한 번 계산
	infra.Scheduler.RunNow(app.RankingJob)
	infra.Scheduler.Start()
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer stopCancel()
		if err := infra.Scheduler.Stop(stopCtx); err != nil {
			slog.Error("스케줄러 종료 실패", "error", err)
		}
	}()

	// Start server with graceful shutdown
	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, infra router.Infra) (*bootstrap.Server, *router.App, error) {
	// Bootstrap server with common setup
	boot := bootstrap.NewBootstrap(cfg, infra.Metrics)
	ginEngine := boot.SetupEngine()

	// Register common validators
	if err := validator.RegisterAll(); err != nil {
		return nil, nil, fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	// Setup application-specific routes
	app, err := router.Setup(ginEngine, cfg, infra)
	if err != nil {
		return nil, nil, fmt.Errorf("라우터 설정 실패: %w", err)
	}

	slog.Info("서버 설정 완료",
		"env", cfg.App.Env,
	)

	return bootstrap.New(cfg, ginEngine), app, nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		serverErrors <- srv.Start()
	}()

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either server error or interrupt signal
	select {
	case err := <-serverErrors:
		// Server failed to start or stopped unexpectedly
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil

	case sig := <-quit:
		// Received shutdown signal
		slog.Info("종료 신호 수신됨", "signal", sig.String())

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		// Attempt graceful shutdown
		slog.Info("서버 종료 중...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("서버 강제 종료: %w", err)
		}
		return nil
	}
}
