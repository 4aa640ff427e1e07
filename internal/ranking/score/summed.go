package score

// SummedPoints: 포인트 합산 방식 채점 전략.
//
//	sales_score      = floor(total_sales / SalesPerPoint)
//	order_count_score = order_count * OrdersPerPoint
//	total_score      = sales_score + order_count_score + activity_score
//
// 점수 상한이 없으며 거래량에 단조 증가한다. 정규화/감쇠 없음.
type SummedPoints struct {
	SalesPerPoint  int64 // 매출 환산 기준 (기본 10,000원 = 1점)
	OrdersPerPoint int64 // 주문당 포인트 (기본 10점)
}

// NewSummedPoints: 기본 환산율을 적용한 SummedPoints 전략을 생성한다.
func NewSummedPoints(salesPerPoint int64, ordersPerPoint int64) SummedPoints {
	if salesPerPoint <= 0 {
		salesPerPoint = 10_000
	}
	if ordersPerPoint <= 0 {
		ordersPerPoint = 10
	}
	return SummedPoints{SalesPerPoint: salesPerPoint, OrdersPerPoint: ordersPerPoint}
}

// Name: 전략 이름을 반환한다.
func (SummedPoints) Name() string { return "summed_points" }

// Calculate: 합산 포인트 점수를 계산한다. 음수 입력은 0으로 처리한다.
func (s SummedPoints) Calculate(in Input) Result {
	totalSales := in.TotalSales
	if totalSales < 0 {
		totalSales = 0
	}
	orderCount := int64(in.OrderCount)
	if orderCount < 0 {
		orderCount = 0
	}
	activity := int64(in.ActivityScore)
	if activity < 0 {
		activity = 0
	}

	salesScore := totalSales / s.SalesPerPoint
	orderScore := orderCount * s.OrdersPerPoint

	return Result{
		SalesScore:      salesScore,
		OrderCountScore: orderScore,
		ActivityScore:   activity,
		TotalScore:      float64(salesScore + orderScore + activity),
	}
}
