package repository

import "time"

// PerformanceRecord: 셀러 일별 실적 행 (업스트림 지표 시스템 소유, 읽기 전용)
// 복합 인덱스: idx_performance_records_date_seller (date, seller_id)
type PerformanceRecord struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	SellerID      string    `gorm:"column:seller_id;not null;index:idx_performance_records_date_seller,priority:2"`
	Date          time.Time `gorm:"column:date;not null;index:idx_performance_records_date_seller,priority:1"`
	TotalSales    int64     `gorm:"column:total_sales;not null;default:0"`
	OrderCount    int       `gorm:"column:order_count;not null;default:0"`
	ActivityScore int       `gorm:"column:activity_score;not null;default:0"`

	AvgConfirmHours *float64 `gorm:"column:avg_confirm_hours"`
	CancelRate      *float64 `gorm:"column:cancel_rate"`
	DataQualityRate *float64 `gorm:"column:data_quality_rate"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (PerformanceRecord) TableName() string { return "performance_records" }

// RankingSnapshot: 기간별 랭킹 스냅샷 (파이프라인의 영속화 단위)
// 복합 유니크: (seller_id, period_type, period_start) — upsert 키
type RankingSnapshot struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	SellerID    string    `gorm:"column:seller_id;not null;uniqueIndex:idx_ranking_snapshots_key,priority:1"`
	PeriodType  string    `gorm:"column:period_type;not null;uniqueIndex:idx_ranking_snapshots_key,priority:2"`
	PeriodStart time.Time `gorm:"column:period_start;not null;uniqueIndex:idx_ranking_snapshots_key,priority:3;index"`
	PeriodEnd   time.Time `gorm:"column:period_end;not null"`

	TotalSales      int64    `gorm:"column:total_sales;not null;default:0"`
	OrderCount      int      `gorm:"column:order_count;not null;default:0"`
	SalesScore      int64    `gorm:"column:sales_score;not null;default:0"`
	OrderCountScore int64    `gorm:"column:order_count_score;not null;default:0"`
	ActivityScore   int64    `gorm:"column:activity_score;not null;default:0"`
	EvaluationScore *float64 `gorm:"column:evaluation_score"` // 월간 가중 합성 점수 (0–100)
	TotalScore      float64  `gorm:"column:total_score;not null;default:0;index"`

	Rank int    `gorm:"column:rank;not null"`
	Tier string `gorm:"column:tier;not null;default:'bronze'"`

	PrevRank       *int     `gorm:"column:prev_rank"`
	RankChange     int      `gorm:"column:rank_change;not null;default:0"`
	PrevTotalScore *float64 `gorm:"column:prev_total_score"`
	ScoreChange    *float64 `gorm:"column:score_change"`

	AvgConfirmHours *float64 `gorm:"column:avg_confirm_hours"`
	CancelRate      *float64 `gorm:"column:cancel_rate"`
	DataQualityRate *float64 `gorm:"column:data_quality_rate"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (RankingSnapshot) TableName() string { return "ranking_snapshots" }

// SellerBadge: 월 단위 업적 배지 발급 기록
// 복합 유니크: (seller_id, badge_id, period_month) — 같은 달 중복 발급 방지
type SellerBadge struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	SellerID    string `gorm:"column:seller_id;not null;uniqueIndex:idx_seller_badges_key,priority:1;index"`
	BadgeID     string `gorm:"column:badge_id;not null;uniqueIndex:idx_seller_badges_key,priority:2"`
	PeriodMonth string `gorm:"column:period_month;not null;uniqueIndex:idx_seller_badges_key,priority:3"` // "YYYY-MM"

	// 발급 시점 메타데이터 스냅샷 (재실행 시 갱신됨)
	Rank       int     `gorm:"column:rank;not null;default:0"`
	TotalScore float64 `gorm:"column:total_score;not null;default:0"`
	Tier       string  `gorm:"column:tier;not null;default:'bronze'"`

	AwardedAt time.Time `gorm:"column:awarded_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (SellerBadge) TableName() string { return "seller_badges" }

// TierCriterion: 등급 판정 기준 설정 행 (운영자가 관리, 실행마다 리로드)
type TierCriterion struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Tier          string    `gorm:"column:tier;not null;uniqueIndex"`
	MinOrderCount int       `gorm:"column:min_order_count;not null;default:0"`
	MinTotalSales int64     `gorm:"column:min_total_sales;not null;default:0"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (TierCriterion) TableName() string { return "tier_criteria" }
