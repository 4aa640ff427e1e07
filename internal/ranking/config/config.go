// Package config: 랭킹 서비스의 도메인 설정.
// 공용 config 패키지의 리더를 조합해 env-first로 구성된다.
package config

import (
	"fmt"
	"time"

	common "github.com/sinseon-market/seller-ranking-go/internal/common/config"
)

// PipelineConfig: 배치 파이프라인 동작 파라미터
type PipelineConfig struct {
	SalesPerPoint     int64 // 매출 점수 환산 기준 (원/점)
	OrdersPerPoint    int64 // 주문당 포인트
	SellerConcurrency int   // 셀러 단위 병렬 워커 수

	EvaluationSalesTarget int64 // 월간 평가 매출 달성 기준값 (원)
	EvaluationOrderTarget int   // 월간 평가 주문 달성 기준값 (건)

	StageTimeout time.Duration // 스테이지 단위 타임아웃
}

// Config: 랭킹 서비스 전체 설정
type Config struct {
	Server common.ServerConfig
	Tuning common.ServerTuningConfig
	DB     common.DBConfig
	Redis  common.RedisConfig
	Log    common.LogConfig
	Otel   common.OtelConfig

	Pipeline PipelineConfig

	AdminAPIKey string // POST /admin/run 보호 키 (비어 있으면 관리 라우트 비활성)

	CacheEnabled bool          // Valkey 리더보드 캐시 사용 여부
	CachePrefix  string        // 캐시 키 prefix
	CacheTTL     time.Duration // 리더보드 캐시 TTL

	SchedulerHour    int    // 데몬 내장 스케줄러 실행 시각 (0–23, 음수면 비활성)
	TierCriteriaFile string // 등급 기준 yaml 시드 파일 경로 (비어 있으면 생략)
}

// LoadFromEnv: 환경 변수에서 전체 설정을 읽어온다. .env 로딩은 호출자 책임이다.
func LoadFromEnv(defaultPort int, serviceName string) (*Config, error) {
	server, err := common.ReadServerConfigFromEnv(defaultPort)
	if err != nil {
		return nil, err
	}
	tuning, err := common.ReadServerTuningConfigFromEnv()
	if err != nil {
		return nil, err
	}
	db, err := common.ReadDBConfigFromEnv()
	if err != nil {
		return nil, err
	}
	redis, err := common.ReadRedisConfigFromEnv()
	if err != nil {
		return nil, err
	}
	logCfg, err := common.ReadLogConfigFromEnv()
	if err != nil {
		return nil, err
	}
	otel, err := common.ReadOtelConfigFromEnv(serviceName)
	if err != nil {
		return nil, err
	}

	pipeline, err := readPipelineConfigFromEnv()
	if err != nil {
		return nil, err
	}

	cacheEnabled, err := common.BoolFromEnv("CACHE_ENABLED", true)
	if err != nil {
		return nil, fmt.Errorf("read CACHE_ENABLED failed: %w", err)
	}
	cacheTTL, err := common.DurationSecondsFromEnv("LEADERBOARD_CACHE_TTL_SECONDS", common.LeaderboardCacheTTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("read LEADERBOARD_CACHE_TTL_SECONDS failed: %w", err)
	}

	schedulerHour, err := common.IntFromEnv("SCHEDULER_HOUR", 2)
	if err != nil {
		return nil, fmt.Errorf("read SCHEDULER_HOUR failed: %w", err)
	}
	if schedulerHour > 23 {
		return nil, fmt.Errorf("invalid SCHEDULER_HOUR: %d", schedulerHour)
	}

	return &Config{
		Server:   server,
		Tuning:   tuning,
		DB:       db,
		Redis:    redis,
		Log:      logCfg,
		Otel:     otel,
		Pipeline: pipeline,

		AdminAPIKey: common.StringFromEnv("ADMIN_API_KEY", ""),

		CacheEnabled: cacheEnabled,
		CachePrefix:  common.StringFromEnv("CACHE_PREFIX", "ranking:"),
		CacheTTL:     cacheTTL,

		SchedulerHour:    schedulerHour,
		TierCriteriaFile: common.StringFromEnv("TIER_CRITERIA_FILE", ""),
	}, nil
}

func readPipelineConfigFromEnv() (PipelineConfig, error) {
	salesPerPoint, err := common.Int64FromEnv("SCORE_SALES_PER_POINT", common.DefaultSalesPerPoint)
	if err != nil {
		return PipelineConfig{}, fmt.Errorf("read SCORE_SALES_PER_POINT failed: %w", err)
	}
	ordersPerPoint, err := common.Int64FromEnv("SCORE_ORDERS_PER_POINT", common.DefaultOrdersPerPoint)
	if err != nil {
		return PipelineConfig{}, fmt.Errorf("read SCORE_ORDERS_PER_POINT failed: %w", err)
	}
	concurrency, err := common.IntFromEnv("PIPELINE_SELLER_CONCURRENCY", common.DefaultSellerConcurrency)
	if err != nil {
		return PipelineConfig{}, fmt.Errorf("read PIPELINE_SELLER_CONCURRENCY failed: %w", err)
	}
	salesTarget, err := common.Int64FromEnv("EVALUATION_SALES_TARGET", 50_000_000)
	if err != nil {
		return PipelineConfig{}, fmt.Errorf("read EVALUATION_SALES_TARGET failed: %w", err)
	}
	orderTarget, err := common.IntFromEnv("EVALUATION_ORDER_TARGET", 1_000)
	if err != nil {
		return PipelineConfig{}, fmt.Errorf("read EVALUATION_ORDER_TARGET failed: %w", err)
	}
	stageTimeout, err := common.DurationSecondsFromEnv("PIPELINE_STAGE_TIMEOUT_SECONDS", common.DefaultStageTimeoutSeconds)
	if err != nil {
		return PipelineConfig{}, fmt.Errorf("read PIPELINE_STAGE_TIMEOUT_SECONDS failed: %w", err)
	}

	return PipelineConfig{
		SalesPerPoint:         salesPerPoint,
		OrdersPerPoint:        ordersPerPoint,
		SellerConcurrency:     concurrency,
		EvaluationSalesTarget: salesTarget,
		EvaluationOrderTarget: orderTarget,
		StageTimeout:          stageTimeout,
	}, nil
}
