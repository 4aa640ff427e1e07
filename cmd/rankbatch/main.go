package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sinseon-market/seller-ranking-go/internal/common/bootstrap"
	commonconfig "github.com/sinseon-market/seller-ranking-go/internal/common/config"
	"github.com/sinseon-market/seller-ranking-go/internal/common/health"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/app"
	rankingconfig "github.com/sinseon-market/seller-ranking-go/internal/ranking/config"
)

// Version: 빌드 시 -ldflags로 주입된다.
var Version = "dev"

// rankbatch: cron에서 매일 1회 실행되는 일괄 랭킹 배치.
// 전 기간 성공 시 0, 기간 중단 또는 과반 실패 시 1로 종료한다.
func main() {
	logger := bootstrap.NewLogger()
	slog.SetDefault(logger)
	health.Init(Version)

	finalLogger, err := bootstrap.RunBatchEntrypoint(
		context.Background(),
		logger,
		"rankbatch.log",
		func() (*rankingconfig.Config, error) {
			return rankingconfig.LoadFromEnv(0, "rankbatch")
		},
		func(cfg *rankingconfig.Config) commonconfig.LogConfig { return cfg.Log },
		app.RunBatch,
	)
	if err != nil {
		logger = finalLogger
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}
