package repository

import (
	"context"
	"fmt"
	"time"

	cerrors "github.com/sinseon-market/seller-ranking-go/internal/common/errors"
	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
)

// ListPerformanceRecords: [start, end] 양끝 포함 범위의 일별 실적을 조회한다.
// 피드는 읽기 전용이며 파이프라인은 절대 수정하지 않는다.
func (r *Repository) ListPerformanceRecords(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]model.PerformanceRecord, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	var rows []PerformanceRecord
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end.AddDate(0, 0, 1)).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, cerrors.UpstreamQueryError{Operation: "list_performance_records", Err: err}
	}

	records := make([]model.PerformanceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toDomainRecord(row))
	}
	return records, nil
}

// toDomainRecord: DB 행을 도메인 레코드로 변환한다.
// 음수로 들어온 가산 지표는 0으로 보정한다. (결측치 "|| 0" 방어 패턴)
func toDomainRecord(row PerformanceRecord) model.PerformanceRecord {
	totalSales := row.TotalSales
	if totalSales < 0 {
		totalSales = 0
	}
	orderCount := row.OrderCount
	if orderCount < 0 {
		orderCount = 0
	}
	activityScore := row.ActivityScore
	if activityScore < 0 {
		activityScore = 0
	}

	return model.PerformanceRecord{
		SellerID:        row.SellerID,
		Date:            row.Date,
		TotalSales:      totalSales,
		OrderCount:      orderCount,
		ActivityScore:   activityScore,
		AvgConfirmHours: row.AvgConfirmHours,
		CancelRate:      row.CancelRate,
		DataQualityRate: row.DataQualityRate,
	}
}
