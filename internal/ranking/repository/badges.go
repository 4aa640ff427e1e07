package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	cerrors "github.com/sinseon-market/seller-ranking-go/internal/common/errors"
)

// UpsertBadge: (seller_id, badge_id, period_month) 키로 배지를 upsert 한다.
// 같은 달 재실행 시 메타데이터만 갱신되고 중복 행은 생기지 않는다.
func (r *Repository) UpsertBadge(ctx context.Context, badge *SellerBadge) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if badge == nil || badge.SellerID == "" || badge.BadgeID == "" {
		return nil
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "seller_id"},
			{Name: "badge_id"},
			{Name: "period_month"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"rank", "total_score", "tier", "awarded_at", "updated_at",
		}),
	}).Create(badge).Error; err != nil {
		return cerrors.PersistenceError{SellerID: badge.SellerID, Operation: "upsert_badge", Err: err}
	}

	return nil
}

// ListSellerBadges: 셀러의 배지 목록을 조회한다.
// month가 비어 있지 않으면 해당 "YYYY-MM" 달로 한정한다.
func (r *Repository) ListSellerBadges(ctx context.Context, sellerID string, month string) ([]SellerBadge, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	query := r.db.WithContext(ctx).Where("seller_id = ?", sellerID)
	if month != "" {
		query = query.Where("period_month = ?", month)
	}

	var badges []SellerBadge
	if err := query.Order("period_month DESC, badge_id ASC").Find(&badges).Error; err != nil {
		return nil, cerrors.UpstreamQueryError{Operation: "list_seller_badges", Err: err}
	}
	return badges, nil
}

// CountBadgesForMonth: 특정 달에 발급된 배지 수를 반환한다. (실행 요약 로그용)
func (r *Repository) CountBadgesForMonth(ctx context.Context, month string) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("db is nil")
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&SellerBadge{}).
		Where("period_month = ?", month).
		Count(&count).Error; err != nil {
		return 0, cerrors.UpstreamQueryError{Operation: "count_badges_for_month", Err: err}
	}
	return count, nil
}
