// Package cache: Valkey 기반 리더보드 읽기 캐시.
// 파이프라인 실행 직후 갱신되며, API 읽기 경로에서 DB 대신 먼저 조회된다.
// 캐시 계층의 장애는 읽기 경로에서 DB 폴백으로 흡수된다.
package cache

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	"github.com/sinseon-market/seller-ranking-go/internal/common/config"
	"github.com/sinseon-market/seller-ranking-go/internal/common/valkeyx"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/repository"
)

// LeaderboardEntry: 캐시에 저장되는 리더보드 1행
type LeaderboardEntry struct {
	SellerID   string  `json:"seller_id"`
	Rank       int     `json:"rank"`
	TotalScore float64 `json:"total_score"`
	Tier       string  `json:"tier"`
	RankChange int     `json:"rank_change"`
	TotalSales int64   `json:"total_sales"`
	OrderCount int     `json:"order_count"`
}

// Leaderboard: 기간 파티션별 상위 랭킹 JSON 캐시
type Leaderboard struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewLeaderboard: Leaderboard 캐시를 생성한다. ttl이 0 이하면 기본 TTL을 사용한다.
func NewLeaderboard(client valkey.Client, prefix string, ttl time.Duration) *Leaderboard {
	if ttl <= 0 {
		ttl = config.LeaderboardCacheTTLSeconds * time.Second
	}
	return &Leaderboard{client: client, prefix: prefix, ttl: ttl}
}

func (l *Leaderboard) key(periodType model.PeriodType, periodStart time.Time) string {
	return valkeyx.BuildKey2(l.prefix+"leaderboard", string(periodType), periodStart.Format("2006-01-02"))
}

// Refresh: 기간 파티션의 상위 랭킹을 직렬화해 캐시에 덮어쓴다.
// 입력은 순위 오름차순이라고 가정하며 최대 보관 건수까지만 저장한다.
func (l *Leaderboard) Refresh(
	ctx context.Context,
	periodType model.PeriodType,
	periodStart time.Time,
	snaps []repository.RankingSnapshot,
) error {
	if len(snaps) > config.LeaderboardMaxLimit {
		snaps = snaps[:config.LeaderboardMaxLimit]
	}

	entries := make([]LeaderboardEntry, 0, len(snaps))
	for _, snap := range snaps {
		entries = append(entries, LeaderboardEntry{
			SellerID:   snap.SellerID,
			Rank:       snap.Rank,
			TotalScore: snap.TotalScore,
			Tier:       snap.Tier,
			RankChange: snap.RankChange,
			TotalSales: snap.TotalSales,
			OrderCount: snap.OrderCount,
		})
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return valkeyx.WrapRedisError("leaderboard_marshal", err)
	}

	cmd := l.client.B().Set().
		Key(l.key(periodType, periodStart)).
		Value(string(payload)).
		ExSeconds(int64(l.ttl.Seconds())).
		Build()
	if err := l.client.Do(ctx, cmd).Error(); err != nil {
		return valkeyx.WrapRedisError("leaderboard_set", err)
	}
	return nil
}

// Get: 캐시된 리더보드를 조회한다. 캐시 미스면 (nil, false, nil).
// limit이 양수면 상위 limit건으로 자른다.
func (l *Leaderboard) Get(
	ctx context.Context,
	periodType model.PeriodType,
	periodStart time.Time,
	limit int,
) ([]LeaderboardEntry, bool, error) {
	cmd := l.client.B().Get().Key(l.key(periodType, periodStart)).Build()
	raw, err := l.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkeyx.IsNil(err) {
			return nil, false, nil
		}
		return nil, false, valkeyx.WrapRedisError("leaderboard_get", err)
	}

	var entries []LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, valkeyx.WrapRedisError("leaderboard_unmarshal", err)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, true, nil
}

// Invalidate: 기간 파티션 캐시를 삭제한다. (명시적 리셋 경로용)
func (l *Leaderboard) Invalidate(ctx context.Context, periodType model.PeriodType, periodStart time.Time) error {
	cmd := l.client.B().Del().Key(l.key(periodType, periodStart)).Build()
	if err := l.client.Do(ctx, cmd).Error(); err != nil {
		return valkeyx.WrapRedisError("leaderboard_del", err)
	}
	return nil
}
