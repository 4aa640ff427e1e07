package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/repository"
)

// 배지 판정 임계값.
const (
	fastConfirmerMaxHours = 1.0  // 평균 확정 시간 상한
	noCancelMaxRate       = 1.0  // 취소율 상한 (미만)
	volumeKingMinOrders   = 1000 // 월 주문 수 하한
	perfectDataRate       = 100  // 데이터 품질 요구치
)

// BadgeAwarder: 월간 스냅샷을 평가해 업적 배지를 발급하는 컴포넌트.
// 4개 배지는 서로 독립적으로 판정되며, 같은 달 재발급은 메타데이터 갱신으로 수렴한다.
type BadgeAwarder struct {
	repo   *repository.Repository
	logger *slog.Logger
}

// NewBadgeAwarder: BadgeAwarder를 생성한다.
func NewBadgeAwarder(repo *repository.Repository, logger *slog.Logger) *BadgeAwarder {
	return &BadgeAwarder{repo: repo, logger: logger}
}

// AwardResult: 배지 발급 결과 집계
type AwardResult struct {
	Awarded int
	Failed  int
}

// Award: 월간 스냅샷 목록에 대해 배지 조건을 평가하고 충족 건을 upsert 한다.
// 월간 스냅샷이 없는 셀러는 애초에 목록에 없으므로 자연히 평가 대상에서 빠진다.
func (a *BadgeAwarder) Award(
	ctx context.Context,
	month string,
	snaps []repository.RankingSnapshot,
	awardedAt time.Time,
) AwardResult {
	var result AwardResult

	for _, snap := range snaps {
		for _, badgeID := range earnedBadges(snap) {
			badge := &repository.SellerBadge{
				SellerID:    snap.SellerID,
				BadgeID:     string(badgeID),
				PeriodMonth: month,
				Rank:        snap.Rank,
				TotalScore:  snap.TotalScore,
				Tier:        snap.Tier,
				AwardedAt:   awardedAt,
			}
			if err := a.repo.UpsertBadge(ctx, badge); err != nil {
				result.Failed++
				a.logger.Error("badge_award_failed",
					"seller_id", snap.SellerID,
					"badge_id", badgeID,
					"month", month,
					"error", err)
				continue
			}
			result.Awarded++
		}
	}

	return result
}

// earnedBadges: 스냅샷의 원시 품질 지표로 충족한 배지 목록을 반환한다.
// 지표가 nil(미측정)이면 해당 배지는 충족하지 않은 것으로 본다.
func earnedBadges(snap repository.RankingSnapshot) []model.BadgeID {
	var earned []model.BadgeID

	if snap.AvgConfirmHours != nil && *snap.AvgConfirmHours <= fastConfirmerMaxHours {
		earned = append(earned, model.BadgeFastConfirmer)
	}
	if snap.CancelRate != nil && *snap.CancelRate < noCancelMaxRate {
		earned = append(earned, model.BadgeNoCancel)
	}
	if snap.OrderCount >= volumeKingMinOrders {
		earned = append(earned, model.BadgeVolumeKing)
	}
	if snap.DataQualityRate != nil && *snap.DataQualityRate == perfectDataRate {
		earned = append(earned, model.BadgePerfectData)
	}

	return earned
}
