package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sinseon-market/seller-ranking-go/internal/common/clock"
	"github.com/sinseon-market/seller-ranking-go/internal/common/config"
	cerrors "github.com/sinseon-market/seller-ranking-go/internal/common/errors"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/period"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/repository"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/score"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/tier"
)

// LeaderboardCache: 기간 파티션의 상위 랭킹을 캐시에 반영하는 인터페이스.
// 캐시 실패는 파이프라인 성패에 영향을 주지 않는다.
type LeaderboardCache interface {
	Refresh(ctx context.Context, periodType model.PeriodType, periodStart time.Time, snaps []repository.RankingSnapshot) error
}

// Options: 파이프라인 동작 파라미터
type Options struct {
	SalesPerPoint     int64
	OrdersPerPoint    int64
	SellerConcurrency int

	// 월간 가중 합성 점수의 매출/주문 달성 기준값
	EvaluationSalesTarget int64
	EvaluationOrderTarget int

	// 기간 1개 처리의 타임아웃 (0 이하면 무제한)
	StageTimeout time.Duration
}

// DefaultOptions: 기본 파라미터를 반환한다.
func DefaultOptions() Options {
	return Options{
		SalesPerPoint:         config.DefaultSalesPerPoint,
		OrdersPerPoint:        config.DefaultOrdersPerPoint,
		SellerConcurrency:     config.DefaultSellerConcurrency,
		EvaluationSalesTarget: 50_000_000,
		EvaluationOrderTarget: 1_000,
		StageTimeout:          config.DefaultStageTimeoutSeconds * time.Second,
	}
}

// PeriodResult: 기간 1개 처리 결과
type PeriodResult struct {
	Type      model.PeriodType
	Start     time.Time
	End       time.Time
	Sellers   int
	Persisted int
	Failed    int
	Aborted   bool
	Err       error
}

// RunSummary: 파이프라인 1회 실행의 요약.
// 종료 코드 정책: 기간이 통째로 중단되었거나 과반 셀러가 실패한 기간이 있으면 실패.
type RunSummary struct {
	Periods       []PeriodResult
	BadgesAwarded int
	BadgeFailures int
}

// Success: 실행이 성공 종료 기준을 충족하는지 판단한다.
func (s *RunSummary) Success() bool {
	for _, p := range s.Periods {
		if p.Aborted {
			return false
		}
		if p.Failed > p.Persisted {
			return false
		}
	}
	return true
}

// Pipeline: 일/주/월 랭킹 배치의 오케스트레이터.
// 기간들은 서로 독립적이다: 한 기간의 업스트림 조회 실패는 해당 기간만 중단시킨다.
type Pipeline struct {
	repo    *repository.Repository
	tracker *RankTracker
	awarder *BadgeAwarder
	cache   LeaderboardCache // nil이면 캐시 생략
	logger  *slog.Logger
	clk     clock.Clock
	tracer  trace.Tracer

	summed score.SummedPoints
	opts   Options
}

// NewPipeline: Pipeline을 생성한다. cache는 nil일 수 있다.
func NewPipeline(
	repo *repository.Repository,
	cache LeaderboardCache,
	logger *slog.Logger,
	clk clock.Clock,
	opts Options,
) *Pipeline {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Pipeline{
		repo:    repo,
		tracker: NewRankTracker(repo, logger, opts.SellerConcurrency),
		awarder: NewBadgeAwarder(repo, logger),
		cache:   cache,
		logger:  logger,
		clk:     clk,
		tracer:  otel.Tracer("seller-ranking/pipeline"),
		summed:  score.NewSummedPoints(opts.SalesPerPoint, opts.OrdersPerPoint),
		opts:    opts,
	}
}

// Run: 세 기간 전체에 대해 랭킹 배치를 수행하고, 월간 처리 후 배지를 발급한다.
// 같은 날 재실행은 updated_at 외에 동일한 결과로 수렴한다.
func (p *Pipeline) Run(ctx context.Context) *RunSummary {
	ctx, span := p.tracer.Start(ctx, "pipeline.run")
	defer span.End()

	now := p.clk.Now()
	assigner := p.loadAssigner(ctx)
	summary := &RunSummary{}

	for _, periodType := range model.AllPeriodTypes() {
		window := period.WindowFor(periodType, now)
		result, monthlySnaps := p.runPeriod(ctx, window, assigner)
		summary.Periods = append(summary.Periods, result)

		if periodType == model.PeriodMonthly && !result.Aborted {
			awardResult := p.awarder.Award(ctx, window.Month(), monthlySnaps, now)
			summary.BadgesAwarded = awardResult.Awarded
			summary.BadgeFailures = awardResult.Failed
		}
	}

	p.logSummary(summary)
	return summary
}

// loadAssigner: 등급 기준을 리로드해 Assigner를 구성한다.
// 조회 실패나 빈 결과는 하드코딩 기본값으로 폴백하고 경고를 남긴다.
func (p *Pipeline) loadAssigner(ctx context.Context) *tier.Assigner {
	criteria, err := p.repo.ListActiveTierCriteria(ctx)
	if err != nil {
		p.logger.Warn("tier_criteria_load_failed", "error", err)
		criteria = nil
	}
	if tier.UsingFallback(criteria) {
		p.logger.Warn("tier_criteria_fallback",
			"error", cerrors.ConfigMissingError{What: "active tier criteria"}.Error())
	}
	return tier.NewAssigner(criteria)
}

// runPeriod: 기간 1개에 대해 조회 → 집계 → 채점 → 순위/영속화를 수행한다.
// 월간이면 등급 판정과 평가 점수 산출이 스냅샷 구성에 포함된다.
func (p *Pipeline) runPeriod(
	ctx context.Context,
	window period.Window,
	assigner *tier.Assigner,
) (PeriodResult, []repository.RankingSnapshot) {
	ctx, span := p.tracer.Start(ctx, "pipeline.period",
		trace.WithAttributes(attribute.String("period_type", string(window.Type))))
	defer span.End()

	if p.opts.StageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.StageTimeout)
		defer cancel()
	}

	result := PeriodResult{Type: window.Type, Start: window.Start, End: window.End}

	records, err := p.repo.ListPerformanceRecords(ctx, window.Start, window.End)
	if err != nil {
		result.Aborted = true
		result.Err = err
		p.logger.Error("period_aborted",
			"period_type", window.Type, "error", err)
		return result, nil
	}

	if dropped := countMalformed(records); dropped > 0 {
		p.logger.Warn("malformed_records_dropped",
			"period_type", window.Type,
			"count", dropped,
			"error", cerrors.MalformedRecordError{Reason: "empty seller_id"}.Error())
	}

	aggregates := period.Aggregate(window, records)
	result.Sellers = len(aggregates)
	if len(aggregates) == 0 {
		p.logger.Info("period_empty", "period_type", window.Type)
		return result, nil
	}

	snaps := p.buildSnapshots(window, aggregates, assigner)

	persistResult := p.tracker.Persist(ctx, snaps)
	result.Persisted = persistResult.Persisted
	result.Failed = persistResult.Failed

	// 후속 단계(캐시, 배지)는 실제로 저장된 스냅샷만 본다
	persisted := persistResult.Snapshots
	p.refreshCache(ctx, window, persisted)

	p.logger.Info("period_done",
		"period_type", window.Type,
		"sellers", result.Sellers,
		"persisted", result.Persisted,
		"failed", result.Failed)
	return result, persisted
}

// buildSnapshots: 집계를 채점해 순위가 부여된 스냅샷 목록(순위 오름차순)을 만든다.
func (p *Pipeline) buildSnapshots(
	window period.Window,
	aggregates []model.SellerAggregate,
	assigner *tier.Assigner,
) []*repository.RankingSnapshot {
	aggBySeller := make(map[string]model.SellerAggregate, len(aggregates))
	scores := make([]model.SellerScore, 0, len(aggregates))

	for _, agg := range aggregates {
		aggBySeller[agg.SellerID] = agg

		calc := p.summed.Calculate(score.Input{
			TotalSales:    agg.TotalSales,
			OrderCount:    agg.OrderCount,
			ActivityScore: agg.ActivityScore,
		})
		scores = append(scores, model.SellerScore{
			SellerID:        agg.SellerID,
			SalesScore:      calc.SalesScore,
			OrderCountScore: calc.OrderCountScore,
			ActivityScore:   calc.ActivityScore,
			TotalScore:      calc.TotalScore,
		})
	}

	ranked := AssignRanks(scores)

	snaps := make([]*repository.RankingSnapshot, 0, len(ranked))
	for _, s := range ranked {
		agg := aggBySeller[s.SellerID]

		snap := &repository.RankingSnapshot{
			SellerID:        s.SellerID,
			PeriodType:      string(window.Type),
			PeriodStart:     window.Start,
			PeriodEnd:       window.End,
			TotalSales:      agg.TotalSales,
			OrderCount:      agg.OrderCount,
			SalesScore:      s.SalesScore,
			OrderCountScore: s.OrderCountScore,
			ActivityScore:   s.ActivityScore,
			TotalScore:      s.TotalScore,
			Rank:            s.Rank,
			Tier:            string(model.TierBronze),
			AvgConfirmHours: agg.AvgConfirmHours,
			CancelRate:      agg.CancelRate,
			DataQualityRate: agg.DataQualityRate,
		}

		// 등급과 평가 점수는 월간 집계에서만 의미를 가진다
		if window.Type == model.PeriodMonthly {
			snap.Tier = string(assigner.Assign(agg.OrderCount, agg.TotalSales))

			components := score.ComponentsFromAggregate(
				agg, p.opts.EvaluationSalesTarget, p.opts.EvaluationOrderTarget)
			evaluation := score.WeightedComposite{}.
				Calculate(score.Input{Components: &components}).TotalScore
			snap.EvaluationScore = &evaluation
		}

		snaps = append(snaps, snap)
	}
	return snaps
}

// countMalformed: 식별자가 없어 집계에서 버려질 레코드 수를 센다.
func countMalformed(records []model.PerformanceRecord) int {
	dropped := 0
	for _, rec := range records {
		if rec.SellerID == "" {
			dropped++
		}
	}
	return dropped
}

// refreshCache: 기간 파티션의 리더보드 캐시를 갱신한다. 실패는 경고만 남긴다.
func (p *Pipeline) refreshCache(ctx context.Context, window period.Window, snaps []repository.RankingSnapshot) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Refresh(ctx, window.Type, window.Start, snaps); err != nil {
		p.logger.Warn("leaderboard_cache_refresh_failed",
			"period_type", window.Type, "error", err)
	}
}

func (p *Pipeline) logSummary(summary *RunSummary) {
	for _, pr := range summary.Periods {
		if pr.Aborted {
			p.logger.Error("run_period_aborted", "period_type", pr.Type, "error", pr.Err)
		}
	}
	p.logger.Info("run_summary",
		"success", summary.Success(),
		"badges_awarded", summary.BadgesAwarded,
		"badge_failures", summary.BadgeFailures)
}
