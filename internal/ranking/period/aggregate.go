package period

import (
	"sort"

	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
)

// Aggregate: 윈도우에 속한 일별 실적을 셀러 단위로 합산한다.
//   - 가산 지표(total_sales, order_count, activity_score)는 합산
//   - 품질 지표는 지표별로 윈도우 내 가장 최근 날짜의 non-nil 값을 유지
//   - 윈도우 밖 레코드는 무시, 레코드가 없는 셀러는 결과에서 제외 (0행 미생성)
//
// 입력 레코드의 순서에 의존하지 않으며,
// 결과는 seller_id 오름차순으로 정렬되어 실행 간 순서가 결정적이다.
func Aggregate(w Window, records []model.PerformanceRecord) []model.SellerAggregate {
	type sellerAcc struct {
		agg model.SellerAggregate

		// 지표별로 값이 채워진 가장 최근 레코드의 unix time.
		// 최신 레코드에 없는 지표가 앞선 날짜의 값을 덮어쓰지 않게 분리 추적한다.
		confirmDay int64
		cancelDay  int64
		qualityDay int64
	}

	bySeller := make(map[string]*sellerAcc)

	for _, rec := range records {
		if rec.SellerID == "" {
			continue
		}
		if rec.Date.Before(w.Start) || rec.Date.After(w.End.AddDate(0, 0, 1).Add(-1)) {
			continue
		}

		acc, ok := bySeller[rec.SellerID]
		if !ok {
			acc = &sellerAcc{
				agg:        model.SellerAggregate{SellerID: rec.SellerID},
				confirmDay: -1,
				cancelDay:  -1,
				qualityDay: -1,
			}
			bySeller[rec.SellerID] = acc
		}

		// 누락된 수치는 0으로 취급 (가산 지표는 음수 방어 포함)
		if rec.TotalSales > 0 {
			acc.agg.TotalSales += rec.TotalSales
		}
		if rec.OrderCount > 0 {
			acc.agg.OrderCount += rec.OrderCount
		}
		if rec.ActivityScore > 0 {
			acc.agg.ActivityScore += rec.ActivityScore
		}

		recDay := rec.Date.Unix()
		if rec.AvgConfirmHours != nil && recDay >= acc.confirmDay {
			acc.agg.AvgConfirmHours = rec.AvgConfirmHours
			acc.confirmDay = recDay
		}
		if rec.CancelRate != nil && recDay >= acc.cancelDay {
			acc.agg.CancelRate = rec.CancelRate
			acc.cancelDay = recDay
		}
		if rec.DataQualityRate != nil && recDay >= acc.qualityDay {
			acc.agg.DataQualityRate = rec.DataQualityRate
			acc.qualityDay = recDay
		}
	}

	aggregates := make([]model.SellerAggregate, 0, len(bySeller))
	for _, acc := range bySeller {
		aggregates = append(aggregates, acc.agg)
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].SellerID < aggregates[j].SellerID
	})

	return aggregates
}
