package httpapi

// RankingEntryResponse: 리더보드 1행 응답 DTO
type RankingEntryResponse struct {
	SellerID   string  `json:"sellerId"`
	Rank       int     `json:"rank"`
	TotalScore float64 `json:"totalScore"`
	Tier       string  `json:"tier"`
	RankChange int     `json:"rankChange"`
	TotalSales int64   `json:"totalSales"`
	OrderCount int     `json:"orderCount"`
}

// LeaderboardResponse: 기간 리더보드 응답 DTO
type LeaderboardResponse struct {
	PeriodType  string                 `json:"periodType"`
	PeriodStart string                 `json:"periodStart"`
	PeriodEnd   string                 `json:"periodEnd"`
	Source      string                 `json:"source"` // "cache" | "db"
	Entries     []RankingEntryResponse `json:"entries"`
}

// SellerRankingResponse: 셀러 1명의 최신 스냅샷 응답 DTO
type SellerRankingResponse struct {
	SellerID        string   `json:"sellerId"`
	PeriodType      string   `json:"periodType"`
	PeriodStart     string   `json:"periodStart"`
	PeriodEnd       string   `json:"periodEnd"`
	Rank            int      `json:"rank"`
	PrevRank        *int     `json:"prevRank"`
	RankChange      int      `json:"rankChange"`
	TotalScore      float64  `json:"totalScore"`
	ScoreChange     *float64 `json:"scoreChange"`
	EvaluationScore *float64 `json:"evaluationScore"`
	Tier            string   `json:"tier"`
	TotalSales      int64    `json:"totalSales"`
	OrderCount      int      `json:"orderCount"`
}

// SellerBadgeResponse: 배지 1건 응답 DTO
type SellerBadgeResponse struct {
	BadgeID     string  `json:"badgeId"`
	PeriodMonth string  `json:"periodMonth"`
	Rank        int     `json:"rank"`
	TotalScore  float64 `json:"totalScore"`
	Tier        string  `json:"tier"`
	AwardedAt   string  `json:"awardedAt"`
}

// SellerBadgesResponse: 셀러 배지 목록 응답 DTO
type SellerBadgesResponse struct {
	SellerID string                `json:"sellerId"`
	Badges   []SellerBadgeResponse `json:"badges"`
	Count    int                   `json:"count"`
}

// RunPeriodResponse: 수동 실행 결과의 기간별 요약
type RunPeriodResponse struct {
	PeriodType string `json:"periodType"`
	Sellers    int    `json:"sellers"`
	Persisted  int    `json:"persisted"`
	Failed     int    `json:"failed"`
	Aborted    bool   `json:"aborted"`
}

// RunResponse: 수동 실행 응답 DTO
type RunResponse struct {
	Success       bool                `json:"success"`
	Periods       []RunPeriodResponse `json:"periods"`
	BadgesAwarded int                 `json:"badgesAwarded"`
}
