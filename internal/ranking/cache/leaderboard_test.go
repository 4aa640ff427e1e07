package cache

import (
	"context"
	"testing"
	"time"

	"github.com/sinseon-market/seller-ranking-go/internal/common/testhelper"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/repository"
)

func TestLeaderboardRoundTrip(t *testing.T) {
	client := testhelper.NewTestValkeyClient(t)
	lb := NewLeaderboard(client, testhelper.UniqueTestPrefix(t), time.Minute)
	ctx := context.Background()

	start := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)
	snaps := []repository.RankingSnapshot{
		{SellerID: "s1", Rank: 1, TotalScore: 550, Tier: "gold", RankChange: 2, TotalSales: 2_000_000, OrderCount: 30},
		{SellerID: "s2", Rank: 2, TotalScore: 120, Tier: "bronze", RankChange: -1, TotalSales: 500_000, OrderCount: 10},
	}

	if err := lb.Refresh(ctx, model.PeriodDaily, start, snaps); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	t.Run("hit", func(t *testing.T) {
		entries, hit, err := lb.Get(ctx, model.PeriodDaily, start, 0)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !hit {
			t.Fatal("expected cache hit")
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].SellerID != "s1" || entries[0].Rank != 1 || entries[0].RankChange != 2 {
			t.Errorf("unexpected first entry: %+v", entries[0])
		}
	})

	t.Run("limit", func(t *testing.T) {
		entries, hit, err := lb.Get(ctx, model.PeriodDaily, start, 1)
		if err != nil || !hit {
			t.Fatalf("get failed: hit=%v err=%v", hit, err)
		}
		if len(entries) != 1 {
			t.Errorf("expected 1 entry with limit, got %d", len(entries))
		}
	})

	t.Run("miss_on_other_partition", func(t *testing.T) {
		_, hit, err := lb.Get(ctx, model.PeriodWeekly, start, 0)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if hit {
			t.Error("expected cache miss for different period type")
		}
	})

	t.Run("refresh_overwrites", func(t *testing.T) {
		if err := lb.Refresh(ctx, model.PeriodDaily, start, snaps[:1]); err != nil {
			t.Fatalf("refresh failed: %v", err)
		}
		entries, hit, err := lb.Get(ctx, model.PeriodDaily, start, 0)
		if err != nil || !hit {
			t.Fatalf("get failed: hit=%v err=%v", hit, err)
		}
		if len(entries) != 1 {
			t.Errorf("expected overwritten single entry, got %d", len(entries))
		}
	})

	t.Run("invalidate", func(t *testing.T) {
		if err := lb.Invalidate(ctx, model.PeriodDaily, start); err != nil {
			t.Fatalf("invalidate failed: %v", err)
		}
		_, hit, err := lb.Get(ctx, model.PeriodDaily, start, 0)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if hit {
			t.Error("expected miss after invalidate")
		}
	})
}
