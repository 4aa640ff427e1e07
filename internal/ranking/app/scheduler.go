package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/sinseon-market/seller-ranking-go/internal/common/bootstrap"
	"github.com/sinseon-market/seller-ranking-go/internal/common/clock"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/service"
)

// NewDailyScheduler: 매일 지정 시각(로컬 기준)에 파이프라인을 실행하는 백그라운드 작업.
// cron 없이 데몬 단독으로 배치를 굴릴 때 사용한다. 실행 실패는 로그만 남기고
// 다음 실행을 기다린다. (정상 복구 수단은 rankbatch 수동 재실행)
func NewDailyScheduler(
	pipeline *service.Pipeline,
	hour int,
	clk clock.Clock,
	logger *slog.Logger,
) bootstrap.BackgroundTask {
	return bootstrap.BackgroundTask{
		Name:        "daily_ranking_scheduler",
		ErrorLogKey: "daily_scheduler_failed",
		Run: func(ctx context.Context) error {
			for {
				wait := untilNextRun(clk.Now(), hour)
				logger.Info("scheduler_sleep", "next_run_in", wait.Round(time.Second).String())

				timer := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					timer.Stop()
					return nil
				case <-timer.C:
				}

				logger.Info("scheduled_run_start")
				summary := pipeline.Run(ctx)
				if !summary.Success() {
					logger.Error("scheduled_run_incomplete", "badges_awarded", summary.BadgesAwarded)
				}
			}
		},
	}
}

// untilNextRun: 다음 실행 시각까지의 대기 시간을 계산한다.
// 오늘 실행 시각이 이미 지났으면 내일 같은 시각이다.
func untilNextRun(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
