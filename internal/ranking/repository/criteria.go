package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	cerrors "github.com/sinseon-market/seller-ranking-go/internal/common/errors"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/tier"
)

// ListActiveTierCriteria: 활성 등급 기준을 조회해 도메인 타입으로 변환한다.
// 실행마다 호출되며, 결과가 비어 있으면 호출 측이 폴백 기준으로 대체한다.
func (r *Repository) ListActiveTierCriteria(ctx context.Context) ([]tier.Criterion, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	var rows []TierCriterion
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&rows).Error; err != nil {
		return nil, cerrors.UpstreamQueryError{Operation: "list_active_tier_criteria", Err: err}
	}

	criteria := make([]tier.Criterion, 0, len(rows))
	for _, row := range rows {
		criteria = append(criteria, tier.Criterion{
			Tier:          model.Tier(row.Tier),
			MinOrderCount: row.MinOrderCount,
			MinTotalSales: row.MinTotalSales,
			Active:        row.IsActive,
		})
	}
	return criteria, nil
}

// UpsertTierCriterion: 등급 기준을 tier 키로 upsert 한다. (yaml 시드 반영용)
func (r *Repository) UpsertTierCriterion(ctx context.Context, row *TierCriterion) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if row == nil || row.Tier == "" {
		return nil
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tier"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"min_order_count", "min_total_sales", "is_active", "updated_at",
		}),
	}).Create(row).Error; err != nil {
		return cerrors.PersistenceError{Operation: "upsert_tier_criterion", Err: err}
	}

	return nil
}
