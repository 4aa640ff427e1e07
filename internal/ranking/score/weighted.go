package score

import "github.com/sinseon-market/seller-ranking-go/internal/ranking/model"

// 가중 합성 점수의 고정 가중치.
const (
	weightSales        = 0.30
	weightOrderCount   = 0.20
	weightConfirmSpeed = 0.20
	weightCancelRate   = 0.20
	weightDataQuality  = 0.10
)

// WeightedComposite: 이미 산출된 5개 구성 점수(각 0–100)를 가중 합산하는 전략.
// 결과는 항상 [0,100] 구간에 속한다.
type WeightedComposite struct{}

// Name: 전략 이름을 반환한다.
func (WeightedComposite) Name() string { return "weighted_composite" }

// Calculate: 가중 합성 점수를 계산한다. 구성 점수는 [0,100]으로 클램프된다.
// Components가 nil이면 0점을 반환한다.
func (WeightedComposite) Calculate(in Input) Result {
	if in.Components == nil {
		return Result{}
	}

	c := *in.Components
	total := weightSales*clamp(c.Sales) +
		weightOrderCount*clamp(c.OrderCount) +
		weightConfirmSpeed*clamp(c.ConfirmSpeed) +
		weightCancelRate*clamp(c.CancelRate) +
		weightDataQuality*clamp(c.DataQuality)

	return Result{TotalScore: total}
}

// ComponentsFromAggregate: 월간 집계로부터 구성 점수를 유도한다.
//   - 매출/주문: 합산 점수를 100점 만점으로 환산하지 않고, 기준값 대비 달성률(%)로 계산
//   - 확정 속도: 24시간 이내면 선형 감점 (1시간 이내 = 100점)
//   - 취소율/품질: 퍼센트 값을 그대로 점수화 (취소율은 역산)
//
// 품질 지표가 없는 셀러는 해당 구성 점수 0점으로 평가된다.
func ComponentsFromAggregate(agg model.SellerAggregate, salesTarget int64, orderTarget int) model.ComponentScores {
	var c model.ComponentScores

	if salesTarget > 0 {
		c.Sales = clamp(float64(agg.TotalSales) / float64(salesTarget) * 100)
	}
	if orderTarget > 0 {
		c.OrderCount = clamp(float64(agg.OrderCount) / float64(orderTarget) * 100)
	}
	if agg.AvgConfirmHours != nil {
		hours := *agg.AvgConfirmHours
		switch {
		case hours <= 1:
			c.ConfirmSpeed = 100
		case hours >= 24:
			c.ConfirmSpeed = 0
		default:
			c.ConfirmSpeed = (24 - hours) / 23 * 100
		}
	}
	if agg.CancelRate != nil {
		c.CancelRate = clamp(100 - *agg.CancelRate)
	}
	if agg.DataQualityRate != nil {
		c.DataQuality = clamp(*agg.DataQualityRate)
	}

	return c
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
