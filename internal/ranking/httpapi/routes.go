// Package httpapi: 랭킹 조회 API와 관리용 수동 실행 라우트.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sinseon-market/seller-ranking-go/internal/common/clock"
	commonconfig "github.com/sinseon-market/seller-ranking-go/internal/common/config"
	"github.com/sinseon-market/seller-ranking-go/internal/common/health"
	commonhttputil "github.com/sinseon-market/seller-ranking-go/internal/common/httputil"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/cache"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/period"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/repository"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/service"
)

const (
	apiErrorInvalidRequest  = "INVALID_REQUEST"
	apiErrorRankingNotFound = "RANKING_NOT_FOUND"
	apiErrorUnauthorized    = "UNAUTHORIZED"
	apiErrorInternalError   = "INTERNAL_ERROR"
)

const dateFormat = "2006-01-02"

// PipelineRunner: 수동 실행 트리거가 호출하는 파이프라인 인터페이스
type PipelineRunner interface {
	Run(ctx context.Context) *service.RunSummary
}

// Deps: 랭킹 API 핸들러 의존성
type Deps struct {
	Repo        *repository.Repository
	Cache       *cache.Leaderboard // nil이면 항상 DB 조회
	Runner      PipelineRunner
	Clock       clock.Clock
	AdminAPIKey string // 비어 있으면 관리 라우트 미등록
	Logger      *slog.Logger
}

// Register: 랭킹 API 라우트를 등록한다.
func Register(mux *http.ServeMux, deps Deps) {
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		_ = commonhttputil.WriteJSON(w, http.StatusOK, health.Get())
	})

	mux.HandleFunc("GET /rankings/{periodType}", func(w http.ResponseWriter, r *http.Request) {
		handleLeaderboard(w, r, deps)
	})
	mux.HandleFunc("GET /sellers/{id}/rankings/{periodType}", func(w http.ResponseWriter, r *http.Request) {
		handleSellerRanking(w, r, deps)
	})
	mux.HandleFunc("GET /sellers/{id}/badges", func(w http.ResponseWriter, r *http.Request) {
		handleSellerBadges(w, r, deps)
	})

	routes := 4
	if deps.AdminAPIKey != "" && deps.Runner != nil {
		mux.HandleFunc("POST /admin/run", func(w http.ResponseWriter, r *http.Request) {
			handleAdminRun(w, r, deps)
		})
		routes++
	}

	deps.Logger.Info("ranking_api_registered", "routes", routes)
}

// handleLeaderboard: 현재 롤링 윈도우의 상위 랭킹을 조회한다.
// 캐시 히트 시 캐시에서, 실패/미스 시 DB에서 읽는다.
func handleLeaderboard(w http.ResponseWriter, r *http.Request, deps Deps) {
	periodType := model.PeriodType(strings.TrimSpace(r.PathValue("periodType")))
	if !periodType.Valid() {
		_ = commonhttputil.WriteErrorJSON(w, http.StatusBadRequest, apiErrorInvalidRequest, "unknown period type")
		return
	}

	limit := parseLimit(r.URL.Query().Get("limit"))
	window := period.WindowFor(periodType, deps.Clock.Now())

	if deps.Cache != nil {
		entries, hit, err := deps.Cache.Get(r.Context(), periodType, window.Start, limit)
		if err != nil {
			// 캐시 장애는 DB 폴백으로 흡수한다
			deps.Logger.Warn("leaderboard_cache_read_failed", "period_type", periodType, "err", err)
		} else if hit {
			_ = commonhttputil.WriteJSON(w, http.StatusOK, LeaderboardResponse{
				PeriodType:  string(periodType),
				PeriodStart: window.Start.Format(dateFormat),
				PeriodEnd:   window.End.Format(dateFormat),
				Source:      "cache",
				Entries:     cacheEntriesToResponse(entries),
			})
			return
		}
	}

	snaps, err := deps.Repo.ListSnapshotsByPeriod(r.Context(), periodType, window.Start, limit)
	if err != nil {
		deps.Logger.Error("leaderboard_query_failed", "period_type", periodType, "err", err)
		_ = commonhttputil.WriteErrorJSON(w, http.StatusInternalServerError, apiErrorInternalError, "failed to query rankings")
		return
	}

	entries := make([]RankingEntryResponse, 0, len(snaps))
	for _, snap := range snaps {
		entries = append(entries, RankingEntryResponse{
			SellerID:   snap.SellerID,
			Rank:       snap.Rank,
			TotalScore: snap.TotalScore,
			Tier:       snap.Tier,
			RankChange: snap.RankChange,
			TotalSales: snap.TotalSales,
			OrderCount: snap.OrderCount,
		})
	}

	_ = commonhttputil.WriteJSON(w, http.StatusOK, LeaderboardResponse{
		PeriodType:  string(periodType),
		PeriodStart: window.Start.Format(dateFormat),
		PeriodEnd:   window.End.Format(dateFormat),
		Source:      "db",
		Entries:     entries,
	})
}

func handleSellerRanking(w http.ResponseWriter, r *http.Request, deps Deps) {
	sellerID := strings.TrimSpace(r.PathValue("id"))
	if sellerID == "" {
		_ = commonhttputil.WriteErrorJSON(w, http.StatusBadRequest, apiErrorInvalidRequest, "seller id is required")
		return
	}
	periodType := model.PeriodType(strings.TrimSpace(r.PathValue("periodType")))
	if !periodType.Valid() {
		_ = commonhttputil.WriteErrorJSON(w, http.StatusBadRequest, apiErrorInvalidRequest, "unknown period type")
		return
	}

	snap, err := deps.Repo.GetLatestSellerSnapshot(r.Context(), sellerID, periodType)
	if err != nil {
		deps.Logger.Error("seller_ranking_query_failed", "seller_id", sellerID, "err", err)
		_ = commonhttputil.WriteErrorJSON(w, http.StatusInternalServerError, apiErrorInternalError, "failed to query seller ranking")
		return
	}
	if snap == nil {
		_ = commonhttputil.WriteErrorJSON(w, http.StatusNotFound, apiErrorRankingNotFound, "no ranking snapshot for seller")
		return
	}

	_ = commonhttputil.WriteJSON(w, http.StatusOK, SellerRankingResponse{
		SellerID:        snap.SellerID,
		PeriodType:      snap.PeriodType,
		PeriodStart:     snap.PeriodStart.Format(dateFormat),
		PeriodEnd:       snap.PeriodEnd.Format(dateFormat),
		Rank:            snap.Rank,
		PrevRank:        snap.PrevRank,
		RankChange:      snap.RankChange,
		TotalScore:      snap.TotalScore,
		ScoreChange:     snap.ScoreChange,
		EvaluationScore: snap.EvaluationScore,
		Tier:            snap.Tier,
		TotalSales:      snap.TotalSales,
		OrderCount:      snap.OrderCount,
	})
}

func handleSellerBadges(w http.ResponseWriter, r *http.Request, deps Deps) {
	sellerID := strings.TrimSpace(r.PathValue("id"))
	if sellerID == "" {
		_ = commonhttputil.WriteErrorJSON(w, http.StatusBadRequest, apiErrorInvalidRequest, "seller id is required")
		return
	}

	month := strings.TrimSpace(r.URL.Query().Get("month"))
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			_ = commonhttputil.WriteErrorJSON(w, http.StatusBadRequest, apiErrorInvalidRequest, "month must be YYYY-MM")
			return
		}
	}

	badges, err := deps.Repo.ListSellerBadges(r.Context(), sellerID, month)
	if err != nil {
		deps.Logger.Error("seller_badges_query_failed", "seller_id", sellerID, "err", err)
		_ = commonhttputil.WriteErrorJSON(w, http.StatusInternalServerError, apiErrorInternalError, "failed to query badges")
		return
	}

	items := make([]SellerBadgeResponse, 0, len(badges))
	for _, badge := range badges {
		items = append(items, SellerBadgeResponse{
			BadgeID:     badge.BadgeID,
			PeriodMonth: badge.PeriodMonth,
			Rank:        badge.Rank,
			TotalScore:  badge.TotalScore,
			Tier:        badge.Tier,
			AwardedAt:   badge.AwardedAt.UTC().Format(time.RFC3339),
		})
	}

	_ = commonhttputil.WriteJSON(w, http.StatusOK, SellerBadgesResponse{
		SellerID: sellerID,
		Badges:   items,
		Count:    len(items),
	})
}

// handleAdminRun: 파이프라인을 즉시 1회 실행한다. X-API-Key 인증 필수.
func handleAdminRun(w http.ResponseWriter, r *http.Request, deps Deps) {
	if r.Header.Get(commonhttputil.HeaderAPIKey) != deps.AdminAPIKey {
		_ = commonhttputil.WriteErrorJSON(w, http.StatusUnauthorized, apiErrorUnauthorized, "invalid api key")
		return
	}

	start := time.Now()
	deps.Logger.Info("admin_run_requested")

	summary := deps.Runner.Run(r.Context())

	periods := make([]RunPeriodResponse, 0, len(summary.Periods))
	for _, p := range summary.Periods {
		periods = append(periods, RunPeriodResponse{
			PeriodType: string(p.Type),
			Sellers:    p.Sellers,
			Persisted:  p.Persisted,
			Failed:     p.Failed,
			Aborted:    p.Aborted,
		})
	}

	status := http.StatusOK
	if !summary.Success() {
		status = http.StatusInternalServerError
	}

	deps.Logger.Info("admin_run_done",
		"success", summary.Success(),
		"duration_ms", time.Since(start).Milliseconds())
	_ = commonhttputil.WriteJSON(w, status, RunResponse{
		Success:       summary.Success(),
		Periods:       periods,
		BadgesAwarded: summary.BadgesAwarded,
	})
}

func cacheEntriesToResponse(entries []cache.LeaderboardEntry) []RankingEntryResponse {
	out := make([]RankingEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, RankingEntryResponse{
			SellerID:   e.SellerID,
			Rank:       e.Rank,
			TotalScore: e.TotalScore,
			Tier:       e.Tier,
			RankChange: e.RankChange,
			TotalSales: e.TotalSales,
			OrderCount: e.OrderCount,
		})
	}
	return out
}

func parseLimit(raw string) int {
	if raw == "" {
		return commonconfig.LeaderboardDefaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return commonconfig.LeaderboardDefaultLimit
	}
	if limit > commonconfig.LeaderboardMaxLimit {
		return commonconfig.LeaderboardMaxLimit
	}
	return limit
}
