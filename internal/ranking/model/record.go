package model

import "time"

// PerformanceRecord: 셀러 1명의 하루치 실적 지표.
// 업스트림 지표 시스템이 생성하며 파이프라인은 읽기만 한다.
type PerformanceRecord struct {
	SellerID      string
	Date          time.Time
	TotalSales    int64 // KRW, ≥0
	OrderCount    int
	ActivityScore int // 로그인/게시/연속접속 이벤트 누적 점수

	// 품질 지표 (업스트림이 아직 측정하지 않은 날은 nil)
	AvgConfirmHours *float64
	CancelRate      *float64 // 0–100 (%)
	DataQualityRate *float64 // 0–100 (%)
}

// SellerAggregate: 하나의 기간 윈도우로 합산된 셀러 실적.
// 가산 지표는 합산, 품질 지표는 윈도우 내 최신 값을 유지한다.
type SellerAggregate struct {
	SellerID      string
	TotalSales    int64
	OrderCount    int
	ActivityScore int

	AvgConfirmHours *float64
	CancelRate      *float64
	DataQualityRate *float64
}
