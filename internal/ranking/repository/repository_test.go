package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sinseon-market/seller-ranking-go/internal/common/testhelper"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	repo := New(testhelper.NewTestDB(t))
	if err := repo.AutoMigrate(context.Background()); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return repo
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestListPerformanceRecords(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	quality := 99.5
	rows := []PerformanceRecord{
		{SellerID: "s1", Date: day(2026, 3, 1), TotalSales: 100_000, OrderCount: 5, ActivityScore: 10},
		{SellerID: "s1", Date: day(2026, 3, 2), TotalSales: 200_000, OrderCount: 3, DataQualityRate: &quality},
		{SellerID: "s2", Date: day(2026, 3, 2), TotalSales: -500, OrderCount: -1},
		{SellerID: "s1", Date: day(2026, 3, 5), TotalSales: 999_999, OrderCount: 1},
	}
	for i := range rows {
		if err := repo.db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	t.Run("inclusive_range", func(t *testing.T) {
		got, err := repo.ListPerformanceRecords(ctx, day(2026, 3, 1), day(2026, 3, 2))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 records, got %d", len(got))
		}
	})

	t.Run("negative_metrics_floor_to_zero", func(t *testing.T) {
		got, err := repo.ListPerformanceRecords(ctx, day(2026, 3, 2), day(2026, 3, 2))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, rec := range got {
			if rec.SellerID != "s2" {
				continue
			}
			if rec.TotalSales != 0 || rec.OrderCount != 0 {
				t.Errorf("expected negative metrics coerced to 0, got sales=%d orders=%d", rec.TotalSales, rec.OrderCount)
			}
		}
	})

	t.Run("empty_range", func(t *testing.T) {
		got, err := repo.ListPerformanceRecords(ctx, day(2026, 4, 1), day(2026, 4, 30))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no records, got %d", len(got))
		}
	})
}

func TestUpsertSnapshotIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	snap := &RankingSnapshot{
		SellerID:    "s1",
		PeriodType:  string(model.PeriodDaily),
		PeriodStart: day(2026, 3, 2),
		PeriodEnd:   day(2026, 3, 2),
		TotalSales:  300_000,
		OrderCount:  8,
		TotalScore:  118,
		Rank:        1,
		Tier:        string(model.TierBronze),
	}
	if err := repo.UpsertSnapshot(ctx, snap); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// 같은 키로 재실행: 행이 늘지 않고 값만 갱신되어야 한다
	again := &RankingSnapshot{
		SellerID:    "s1",
		PeriodType:  string(model.PeriodDaily),
		PeriodStart: day(2026, 3, 2),
		PeriodEnd:   day(2026, 3, 2),
		TotalSales:  450_000,
		OrderCount:  12,
		TotalScore:  165,
		Rank:        2,
		Tier:        string(model.TierBronze),
	}
	if err := repo.UpsertSnapshot(ctx, again); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	var count int64
	if err := repo.db.Model(&RankingSnapshot{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after re-run, got %d", count)
	}

	var stored RankingSnapshot
	if err := repo.db.First(&stored).Error; err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if stored.TotalSales != 450_000 || stored.Rank != 2 {
		t.Errorf("expected updated values, got sales=%d rank=%d", stored.TotalSales, stored.Rank)
	}
}

func TestFindPreviousSnapshot(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, snap := range []*RankingSnapshot{
		{SellerID: "s1", PeriodType: string(model.PeriodDaily), PeriodStart: day(2026, 3, 1), PeriodEnd: day(2026, 3, 1), Rank: 5, TotalScore: 90},
		{SellerID: "s1", PeriodType: string(model.PeriodDaily), PeriodStart: day(2026, 3, 2), PeriodEnd: day(2026, 3, 2), Rank: 3, TotalScore: 110},
		{SellerID: "s1", PeriodType: string(model.PeriodWeekly), PeriodStart: day(2026, 3, 2), PeriodEnd: day(2026, 3, 2), Rank: 1, TotalScore: 300},
	} {
		if err := repo.UpsertSnapshot(ctx, snap); err != nil {
			t.Fatalf("seed upsert failed: %v", err)
		}
	}

	t.Run("latest_before", func(t *testing.T) {
		prev, err := repo.FindPreviousSnapshot(ctx, "s1", model.PeriodDaily, day(2026, 3, 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prev == nil {
			t.Fatal("expected a previous snapshot")
		}
		if !prev.PeriodStart.Equal(day(2026, 3, 2)) || prev.Rank != 3 {
			t.Errorf("expected 03-02 rank 3, got %v rank %d", prev.PeriodStart, prev.Rank)
		}
	})

	t.Run("period_type_isolated", func(t *testing.T) {
		prev, err := repo.FindPreviousSnapshot(ctx, "s1", model.PeriodWeekly, day(2026, 3, 9))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prev == nil || prev.Rank != 1 {
			t.Fatalf("expected weekly snapshot rank 1, got %+v", prev)
		}
	})

	t.Run("none_found", func(t *testing.T) {
		prev, err := repo.FindPreviousSnapshot(ctx, "first_timer", model.PeriodDaily, day(2026, 3, 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prev != nil {
			t.Errorf("expected nil for first appearance, got %+v", prev)
		}
	})
}

func TestListSnapshotsByPeriod(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	start := day(2026, 3, 2)
	for _, snap := range []*RankingSnapshot{
		{SellerID: "s3", PeriodType: string(model.PeriodDaily), PeriodStart: start, PeriodEnd: start, Rank: 3, TotalScore: 50},
		{SellerID: "s1", PeriodType: string(model.PeriodDaily), PeriodStart: start, PeriodEnd: start, Rank: 1, TotalScore: 200},
		{SellerID: "s2", PeriodType: string(model.PeriodDaily), PeriodStart: start, PeriodEnd: start, Rank: 2, TotalScore: 120},
	} {
		if err := repo.UpsertSnapshot(ctx, snap); err != nil {
			t.Fatalf("seed upsert failed: %v", err)
		}
	}

	got, err := repo.ListSnapshotsByPeriod(ctx, model.PeriodDaily, start, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected limit 2, got %d", len(got))
	}
	if got[0].SellerID != "s1" || got[1].SellerID != "s2" {
		t.Errorf("expected rank order s1,s2 got %s,%s", got[0].SellerID, got[1].SellerID)
	}
}

func TestUpsertBadgeNoDuplicates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	badge := &SellerBadge{
		SellerID:    "s1",
		BadgeID:     string(model.BadgeFastConfirmer),
		PeriodMonth: "2026-03",
		Rank:        4,
		TotalScore:  88,
		Tier:        string(model.TierGold),
		AwardedAt:   day(2026, 3, 15),
	}
	if err := repo.UpsertBadge(ctx, badge); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// 같은 달 재실행: 메타데이터만 갱신
	refresh := &SellerBadge{
		SellerID:    "s1",
		BadgeID:     string(model.BadgeFastConfirmer),
		PeriodMonth: "2026-03",
		Rank:        2,
		TotalScore:  95,
		Tier:        string(model.TierPlatinum),
		AwardedAt:   day(2026, 3, 16),
	}
	if err := repo.UpsertBadge(ctx, refresh); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	badges, err := repo.ListSellerBadges(ctx, "s1", "2026-03")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(badges) != 1 {
		t.Fatalf("expected 1 badge after re-run, got %d", len(badges))
	}
	if badges[0].Rank != 2 || badges[0].Tier != string(model.TierPlatinum) {
		t.Errorf("expected refreshed metadata, got rank=%d tier=%s", badges[0].Rank, badges[0].Tier)
	}

	t.Run("next_month_is_separate", func(t *testing.T) {
		next := &SellerBadge{
			SellerID:    "s1",
			BadgeID:     string(model.BadgeFastConfirmer),
			PeriodMonth: "2026-04",
			AwardedAt:   day(2026, 4, 10),
		}
		if err := repo.UpsertBadge(ctx, next); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		all, err := repo.ListSellerBadges(ctx, "s1", "")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("expected 2 badges across months, got %d", len(all))
		}
	})
}

func TestTierCriteriaRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	rows := []*TierCriterion{
		{Tier: string(model.TierDiamond), MinOrderCount: 500, MinTotalSales: 50_000_000, IsActive: true},
		{Tier: string(model.TierGold), MinOrderCount: 150, MinTotalSales: 15_000_000, IsActive: true},
		{Tier: string(model.TierSilver), MinOrderCount: 50, MinTotalSales: 5_000_000, IsActive: false},
	}
	for _, row := range rows {
		if err := repo.UpsertTierCriterion(ctx, row); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	criteria, err := repo.ListActiveTierCriteria(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(criteria) != 2 {
		t.Fatalf("expected 2 active criteria, got %d", len(criteria))
	}

	t.Run("seed_update_in_place", func(t *testing.T) {
		if err := repo.UpsertTierCriterion(ctx, &TierCriterion{
			Tier: string(model.TierGold), MinOrderCount: 200, MinTotalSales: 20_000_000, IsActive: true,
		}); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		criteria, err := repo.ListActiveTierCriteria(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		for _, c := range criteria {
			if c.Tier == model.TierGold && c.MinOrderCount != 200 {
				t.Errorf("expected updated gold threshold 200, got %d", c.MinOrderCount)
			}
		}
	})
}

func TestResetPeriod(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	start := day(2026, 3, 2)
	for _, sellerID := range []string{"s1", "s2"} {
		if err := repo.UpsertSnapshot(ctx, &RankingSnapshot{
			SellerID: sellerID, PeriodType: string(model.PeriodDaily),
			PeriodStart: start, PeriodEnd: start, Rank: 1,
		}); err != nil {
			t.Fatalf("seed upsert failed: %v", err)
		}
	}

	deleted, err := repo.ResetPeriod(ctx, model.PeriodDaily, start)
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 rows deleted, got %d", deleted)
	}

	remaining, err := repo.ListSnapshotsByPeriod(ctx, model.PeriodDaily, start, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected empty partition after reset, got %d rows", len(remaining))
	}
}
