// Package service: 랭킹 파이프라인의 오케스트레이션 계층.
// 점수 계산 → 순위 부여 → 변동 추적 → upsert 영속화 → 배지 발급 순으로 진행된다.
package service

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/repository"
)

// AssignRanks: 점수 목록을 total_score 내림차순으로 정렬하고 1..N 순위를 부여한다.
// 동점은 입력 순서(셀러 ID 오름차순 집계 순서)를 유지한 채 연속된 순위를 받는다.
// 원본 슬라이스는 수정하지 않는다.
func AssignRanks(scores []model.SellerScore) []model.SellerScore {
	ranked := make([]model.SellerScore, len(scores))
	copy(ranked, scores)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// RankTracker: 이전 스냅샷 대비 순위/점수 변동을 계산하고 upsert 하는 추적기
type RankTracker struct {
	repo        *repository.Repository
	logger      *slog.Logger
	concurrency int
}

// NewRankTracker: RankTracker를 생성한다.
func NewRankTracker(repo *repository.Repository, logger *slog.Logger, concurrency int) *RankTracker {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &RankTracker{repo: repo, logger: logger, concurrency: concurrency}
}

// PersistResult: 한 기간 파티션 영속화 결과 집계.
// Snapshots는 upsert에 성공한 행만 담으며 입력 순서(순위 오름차순)를 유지한다.
type PersistResult struct {
	Persisted int
	Failed    int
	Snapshots []repository.RankingSnapshot
}

// Persist: 스냅샷 목록에 이전 스냅샷 대비 변동 필드를 채워 upsert 한다.
// 셀러 단위 작업은 errgroup으로 제한된 동시성 하에 병렬 수행되며,
// 개별 셀러의 실패는 로그 후 스킵하고 나머지 배치는 계속 진행한다.
// 실패한 셀러의 스냅샷은 결과에서 제외되어 후속 단계(배지, 캐시)에 전달되지 않는다.
func (t *RankTracker) Persist(ctx context.Context, snaps []*repository.RankingSnapshot) PersistResult {
	// 인덱스별로 단일 고루틴만 기록하므로 동기화가 필요 없다
	succeeded := make([]bool, len(snaps))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(t.concurrency)

	for i, snap := range snaps {
		group.Go(func() error {
			if err := t.persistOne(groupCtx, snap); err != nil {
				t.logger.Error("snapshot_persist_failed",
					"seller_id", snap.SellerID,
					"period_type", snap.PeriodType,
					"error", err)
				return nil // 셀러 단위 실패는 배치를 중단시키지 않는다
			}
			succeeded[i] = true
			return nil
		})
	}
	_ = group.Wait()

	result := PersistResult{Snapshots: make([]repository.RankingSnapshot, 0, len(snaps))}
	for i, snap := range snaps {
		if !succeeded[i] {
			result.Failed++
			continue
		}
		result.Persisted++
		result.Snapshots = append(result.Snapshots, *snap)
	}
	return result
}

// persistOne: 셀러 1명의 스냅샷에 변동 필드를 채우고 upsert 한다.
func (t *RankTracker) persistOne(ctx context.Context, snap *repository.RankingSnapshot) error {
	prev, err := t.repo.FindPreviousSnapshot(
		ctx, snap.SellerID, model.PeriodType(snap.PeriodType), snap.PeriodStart)
	if err != nil {
		return err
	}

	if prev != nil {
		prevRank := prev.Rank
		prevScore := prev.TotalScore
		scoreChange := snap.TotalScore - prevScore

		snap.PrevRank = &prevRank
		// 양수 = 순위 상승 (5위 → 2위면 +3)
		snap.RankChange = prevRank - snap.Rank
		snap.PrevTotalScore = &prevScore
		snap.ScoreChange = &scoreChange
	} else {
		// 첫 등장: 변동 없음으로 기록하고 이전 값 필드는 비워 둔다
		snap.PrevRank = nil
		snap.RankChange = 0
		snap.PrevTotalScore = nil
		snap.ScoreChange = nil
	}

	return t.repo.UpsertSnapshot(ctx, snap)
}
