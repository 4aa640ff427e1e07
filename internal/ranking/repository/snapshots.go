package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cerrors "github.com/sinseon-market/seller-ranking-go/internal/common/errors"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
)

// snapshotUpdateColumns: upsert 시 갱신되는 컬럼 목록.
// 키 컬럼(seller_id, period_type, period_start)과 created_at은 유지된다.
var snapshotUpdateColumns = []string{
	"period_end",
	"total_sales", "order_count",
	"sales_score", "order_count_score", "activity_score",
	"evaluation_score", "total_score",
	"rank", "tier",
	"prev_rank", "rank_change", "prev_total_score", "score_change",
	"avg_confirm_hours", "cancel_rate", "data_quality_rate",
	"updated_at",
}

// UpsertSnapshot: (seller_id, period_type, period_start) 키로 스냅샷을 upsert 한다.
// 같은 기간 재실행 시 중복 행 없이 덮어쓴다.
func (r *Repository) UpsertSnapshot(ctx context.Context, snap *RankingSnapshot) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if snap == nil || snap.SellerID == "" {
		return nil
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "seller_id"},
			{Name: "period_type"},
			{Name: "period_start"},
		},
		DoUpdates: clause.AssignmentColumns(snapshotUpdateColumns),
	}).Create(snap).Error; err != nil {
		return cerrors.PersistenceError{SellerID: snap.SellerID, Operation: "upsert_snapshot", Err: err}
	}

	return nil
}

// FindPreviousSnapshot: 같은 (seller_id, period_type)의 직전 스냅샷을 조회한다.
// period_start 내림차순 첫 행. 없으면 (nil, nil).
func (r *Repository) FindPreviousSnapshot(
	ctx context.Context,
	sellerID string,
	periodType model.PeriodType,
	before time.Time,
) (*RankingSnapshot, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	var snap RankingSnapshot
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND period_type = ? AND period_start < ?", sellerID, string(periodType), before).
		Order("period_start DESC").
		First(&snap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, cerrors.UpstreamQueryError{Operation: "find_previous_snapshot", Err: err}
	}

	return &snap, nil
}

// ListSnapshotsByPeriod: 한 기간 파티션의 스냅샷을 rank 오름차순으로 조회한다.
// limit이 0 이하면 전체를 반환한다.
func (r *Repository) ListSnapshotsByPeriod(
	ctx context.Context,
	periodType model.PeriodType,
	periodStart time.Time,
	limit int,
) ([]RankingSnapshot, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	query := r.db.WithContext(ctx).
		Where("period_type = ? AND period_start = ?", string(periodType), periodStart).
		Order("rank ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var snaps []RankingSnapshot
	if err := query.Find(&snaps).Error; err != nil {
		return nil, cerrors.UpstreamQueryError{Operation: "list_snapshots_by_period", Err: err}
	}
	return snaps, nil
}

// GetLatestSellerSnapshot: 셀러의 가장 최근 스냅샷을 조회한다. 없으면 (nil, nil).
func (r *Repository) GetLatestSellerSnapshot(
	ctx context.Context,
	sellerID string,
	periodType model.PeriodType,
) (*RankingSnapshot, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	var snap RankingSnapshot
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND period_type = ?", sellerID, string(periodType)).
		Order("period_start DESC").
		First(&snap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, cerrors.UpstreamQueryError{Operation: "get_latest_seller_snapshot", Err: err}
	}

	return &snap, nil
}

// ResetPeriod: 한 기간 파티션의 스냅샷을 전부 삭제한다.
// 정상 운영 경로가 아닌 명시적 리셋 전용.
func (r *Repository) ResetPeriod(
	ctx context.Context,
	periodType model.PeriodType,
	periodStart time.Time,
) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("db is nil")
	}

	result := r.db.WithContext(ctx).
		Where("period_type = ? AND period_start = ?", string(periodType), periodStart).
		Delete(&RankingSnapshot{})
	if result.Error != nil {
		return 0, cerrors.PersistenceError{Operation: "reset_period", Err: result.Error}
	}
	return result.RowsAffected, nil
}
