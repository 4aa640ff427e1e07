package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/sinseon-market/seller-ranking-go/internal/common/clock"
	"github.com/sinseon-market/seller-ranking-go/internal/common/ptr"
	"github.com/sinseon-market/seller-ranking-go/internal/common/testhelper"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/repository"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/service"
)

var apiTestNow = time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)

type stubRunner struct {
	summary *service.RunSummary
	calls   int
}

func (s *stubRunner) Run(_ context.Context) *service.RunSummary {
	s.calls++
	return s.summary
}

func newTestMux(t *testing.T, runner PipelineRunner, apiKey string) (*http.ServeMux, *repository.Repository) {
	t.Helper()

	repo := repository.New(testhelper.NewTestDB(t))
	if err := repo.AutoMigrate(context.Background()); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	mux := http.NewServeMux()
	Register(mux, Deps{
		Repo:        repo,
		Runner:      runner,
		Clock:       clock.Fixed{T: apiTestNow},
		AdminAPIKey: apiKey,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return mux, repo
}

func seedSnapshot(t *testing.T, repo *repository.Repository, snap *repository.RankingSnapshot) {
	t.Helper()
	if err := repo.UpsertSnapshot(context.Background(), snap); err != nil {
		t.Fatalf("seed snapshot failed: %v", err)
	}
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHealthRoute(t *testing.T) {
	mux, _ := newTestMux(t, nil, "")

	rec := doRequest(t, mux, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLeaderboardRoute(t *testing.T) {
	mux, repo := newTestMux(t, nil, "")

	today := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)
	seedSnapshot(t, repo, &repository.RankingSnapshot{
		SellerID: "s1", PeriodType: string(model.PeriodDaily),
		PeriodStart: today, PeriodEnd: today, Rank: 1, TotalScore: 550, Tier: "bronze",
	})
	seedSnapshot(t, repo, &repository.RankingSnapshot{
		SellerID: "s2", PeriodType: string(model.PeriodDaily),
		PeriodStart: today, PeriodEnd: today, Rank: 2, TotalScore: 120, Tier: "bronze",
	})

	t.Run("ok", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodGet, "/rankings/daily", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp LeaderboardResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if resp.Source != "db" {
			t.Errorf("expected db source without cache, got %s", resp.Source)
		}
		if len(resp.Entries) != 2 || resp.Entries[0].SellerID != "s1" {
			t.Errorf("unexpected entries: %+v", resp.Entries)
		}
		if resp.PeriodStart != "2026-03-18" {
			t.Errorf("expected period start 2026-03-18, got %s", resp.PeriodStart)
		}
	})

	t.Run("limit", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodGet, "/rankings/daily?limit=1", nil)
		var resp LeaderboardResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if len(resp.Entries) != 1 {
			t.Errorf("expected 1 entry, got %d", len(resp.Entries))
		}
	})

	t.Run("unknown_period", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodGet, "/rankings/hourly", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSellerRankingRoute(t *testing.T) {
	mux, repo := newTestMux(t, nil, "")

	monthStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	seedSnapshot(t, repo, &repository.RankingSnapshot{
		SellerID: "s1", PeriodType: string(model.PeriodMonthly),
		PeriodStart: monthStart, PeriodEnd: time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
		Rank: 2, PrevRank: ptr.Int(4), RankChange: 2,
		TotalScore: 900, EvaluationScore: ptr.Float64(84.5), Tier: "gold",
	})

	t.Run("ok", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodGet, "/sellers/s1/rankings/monthly", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp SellerRankingResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if resp.Rank != 2 || resp.PrevRank == nil || *resp.PrevRank != 4 {
			t.Errorf("unexpected rank fields: %+v", resp)
		}
		if resp.EvaluationScore == nil || *resp.EvaluationScore != 84.5 {
			t.Errorf("expected evaluation score 84.5, got %v", resp.EvaluationScore)
		}
		if resp.Tier != "gold" {
			t.Errorf("expected gold, got %s", resp.Tier)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodGet, "/sellers/ghost/rankings/daily", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func TestSellerBadgesRoute(t *testing.T) {
	mux, repo := newTestMux(t, nil, "")
	ctx := context.Background()

	for _, badge := range []*repository.SellerBadge{
		{SellerID: "s1", BadgeID: "fast_confirmer", PeriodMonth: "2026-03", Tier: "gold", AwardedAt: apiTestNow},
		{SellerID: "s1", BadgeID: "no_cancel", PeriodMonth: "2026-02", Tier: "silver", AwardedAt: apiTestNow},
	} {
		if err := repo.UpsertBadge(ctx, badge); err != nil {
			t.Fatalf("seed badge failed: %v", err)
		}
	}

	t.Run("all", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodGet, "/sellers/s1/badges", nil)
		var resp SellerBadgesResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if resp.Count != 2 {
			t.Errorf("expected 2 badges, got %d", resp.Count)
		}
	})

	t.Run("month_filter", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodGet, "/sellers/s1/badges?month=2026-03", nil)
		var resp SellerBadgesResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if resp.Count != 1 || resp.Badges[0].BadgeID != "fast_confirmer" {
			t.Errorf("unexpected badges: %+v", resp.Badges)
		}
	})

	t.Run("bad_month", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodGet, "/sellers/s1/badges?month=March", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAdminRunRoute(t *testing.T) {
	runner := &stubRunner{summary: &service.RunSummary{
		Periods: []service.PeriodResult{
			{Type: model.PeriodDaily, Sellers: 10, Persisted: 10},
			{Type: model.PeriodWeekly, Sellers: 10, Persisted: 10},
			{Type: model.PeriodMonthly, Sellers: 10, Persisted: 10},
		},
		BadgesAwarded: 3,
	}}
	mux, _ := newTestMux(t, runner, "secret-key")

	t.Run("unauthorized", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodPost, "/admin/run", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
		if runner.calls != 0 {
			t.Error("runner must not run without valid key")
		}
	})

	t.Run("authorized", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodPost, "/admin/run", map[string]string{"X-API-Key": "secret-key"})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if runner.calls != 1 {
			t.Errorf("expected 1 run, got %d", runner.calls)
		}

		var resp RunResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !resp.Success || resp.BadgesAwarded != 3 || len(resp.Periods) != 3 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("not_registered_without_key", func(t *testing.T) {
		muxNoKey, _ := newTestMux(t, runner, "")
		rec := doRequest(t, muxNoKey, http.MethodPost, "/admin/run", nil)
		if rec.Code == http.StatusUnauthorized || rec.Code == http.StatusOK {
			t.Errorf("expected route absent (404/405), got %d", rec.Code)
		}
	})
}
