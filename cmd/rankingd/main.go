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

const defaultPort = 8084

func main() {
	logger := bootstrap.NewLogger()
	slog.SetDefault(logger)
	health.Init(Version)

	finalLogger, err := bootstrap.RunServiceEntrypoint(
		context.Background(),
		logger,
		"rankingd.log",
		func() (*rankingconfig.Config, error) {
			return rankingconfig.LoadFromEnv(defaultPort, "rankingd")
		},
		func(cfg *rankingconfig.Config) commonconfig.LogConfig { return cfg.Log },
		app.Initialize,
	)
	if err != nil {
		logger = finalLogger
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}
