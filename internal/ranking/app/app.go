// Package app: 랭킹 서비스의 의존성 조립과 실행 단위 구성.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"

	"github.com/sinseon-market/seller-ranking-go/internal/common/bootstrap"
	"github.com/sinseon-market/seller-ranking-go/internal/common/clock"
	"github.com/sinseon-market/seller-ranking-go/internal/common/dbutil"
	"github.com/sinseon-market/seller-ranking-go/internal/common/httpserver"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/cache"
	rankingconfig "github.com/sinseon-market/seller-ranking-go/internal/ranking/config"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/httpapi"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/repository"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/service"
)

const shutdownTimeout = 10 * time.Second

// Core: 두 바이너리가 공유하는 핵심 의존성 묶음
type Core struct {
	Repo        *repository.Repository
	Leaderboard *cache.Leaderboard // nil 가능 (캐시 비활성/연결 실패)
	Pipeline    *service.Pipeline
}

// setupCore: 트레이싱, DB, 캐시, 파이프라인 순으로 초기화한다.
// Valkey 연결 실패는 경고 후 캐시 없이 계속한다. (읽기 경로는 DB 폴백)
func setupCore(
	ctx context.Context,
	cfg *rankingconfig.Config,
	logger *slog.Logger,
) (*Core, func(), error) {
	shutdownTracing, err := bootstrap.SetupTracing(ctx, cfg.Otel, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("setup tracing failed: %w", err)
	}

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}

	db, sqlDB, err := dbutil.OpenWithRetry(ctx,
		func(openCtx context.Context) (*gorm.DB, *sql.DB, error) {
			return dbutil.OpenPostgres(openCtx, cfg.DB)
		},
		dbutil.DefaultRetryConfig(), logger)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("open db failed: %w", err)
	}
	cleanups = append(cleanups, func() { _ = sqlDB.Close() })

	repo := repository.New(db)
	if err := repo.AutoMigrate(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("auto migrate failed: %w", err)
	}

	if err := seedTierCriteria(ctx, cfg, repo, logger); err != nil {
		cleanup()
		return nil, nil, err
	}

	var leaderboard *cache.Leaderboard
	if cfg.CacheEnabled {
		client, closeValkey, valkeyErr := bootstrap.NewAndPingValkeyClient(ctx, cfg.Redis, logger)
		if valkeyErr != nil {
			logger.Warn("valkey_unavailable_cache_disabled", "err", valkeyErr)
		} else {
			cleanups = append(cleanups, closeValkey)
			leaderboard = cache.NewLeaderboard(client, cfg.CachePrefix, cfg.CacheTTL)
		}
	}

	// typed-nil 인터페이스가 되지 않도록 명시적으로 분기한다
	var lbCache service.LeaderboardCache
	if leaderboard != nil {
		lbCache = leaderboard
	}

	pipeline := service.NewPipeline(repo, lbCache, logger, clock.Real{}, service.Options{
		SalesPerPoint:         cfg.Pipeline.SalesPerPoint,
		OrdersPerPoint:        cfg.Pipeline.OrdersPerPoint,
		SellerConcurrency:     cfg.Pipeline.SellerConcurrency,
		EvaluationSalesTarget: cfg.Pipeline.EvaluationSalesTarget,
		EvaluationOrderTarget: cfg.Pipeline.EvaluationOrderTarget,
		StageTimeout:          cfg.Pipeline.StageTimeout,
	})

	return &Core{Repo: repo, Leaderboard: leaderboard, Pipeline: pipeline}, cleanup, nil
}

// seedTierCriteria: TIER_CRITERIA_FILE이 지정된 경우 등급 기준을 DB에 upsert 한다.
func seedTierCriteria(
	ctx context.Context,
	cfg *rankingconfig.Config,
	repo *repository.Repository,
	logger *slog.Logger,
) error {
	if cfg.TierCriteriaFile == "" {
		return nil
	}

	seeds, err := rankingconfig.LoadTierCriteriaFile(cfg.TierCriteriaFile)
	if err != nil {
		return fmt.Errorf("load tier criteria seed failed: %w", err)
	}

	for _, seed := range seeds {
		if err := repo.UpsertTierCriterion(ctx, &repository.TierCriterion{
			Tier:          seed.Tier,
			MinOrderCount: seed.MinOrderCount,
			MinTotalSales: seed.MinTotalSales,
			IsActive:      seed.IsActive(),
		}); err != nil {
			return fmt.Errorf("seed tier criterion failed tier=%s: %w", seed.Tier, err)
		}
	}

	logger.Info("tier_criteria_seeded", "file", cfg.TierCriteriaFile, "count", len(seeds))
	return nil
}

// Initialize: rankingd 데몬을 조립한다. (읽기 API + 내장 일일 스케줄러)
func Initialize(
	ctx context.Context,
	cfg *rankingconfig.Config,
	logger *slog.Logger,
) (*bootstrap.ServerApp, func(), error) {
	core, cleanup, err := setupCore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	httpapi.Register(mux, httpapi.Deps{
		Repo:        core.Repo,
		Cache:       core.Leaderboard,
		Runner:      core.Pipeline,
		Clock:       clock.Real{},
		AdminAPIKey: cfg.AdminAPIKey,
		Logger:      logger,
	})

	handler := otelhttp.NewHandler(mux, "rankingd")
	server := httpserver.NewServer(
		fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		handler,
		httpserver.ServerOptions{
			UseH2C:            cfg.Tuning.UseH2C,
			ReadHeaderTimeout: cfg.Tuning.ReadHeaderTimeout,
			IdleTimeout:       cfg.Tuning.IdleTimeout,
			MaxHeaderBytes:    cfg.Tuning.MaxHeaderBytes,
		},
	)

	var tasks []bootstrap.BackgroundTask
	if cfg.SchedulerHour >= 0 {
		tasks = append(tasks, NewDailyScheduler(core.Pipeline, cfg.SchedulerHour, clock.Real{}, logger))
	}

	serverApp := bootstrap.NewServerApp("rankingd", logger, server, shutdownTimeout, tasks...)
	return serverApp, cleanup, nil
}

// RunBatch: rankbatch의 1회 실행 경로.
// 기간이 통째로 중단되었거나 과반 셀러가 실패하면 에러를 반환해 비정상 종료시킨다.
func RunBatch(ctx context.Context, cfg *rankingconfig.Config, logger *slog.Logger) error {
	core, cleanup, err := setupCore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	summary := core.Pipeline.Run(ctx)
	if !summary.Success() {
		return fmt.Errorf("ranking batch did not complete cleanly")
	}
	return nil
}
