// Package score: 원시 실적 지표를 비교 가능한 점수로 환산하는 전략들.
//
// 두 가지 채점 방식이 존재하며 호출자가 반드시 명시적으로 선택한다:
//   - SummedPoints: 상한 없는 포인트 합산 (일/주/월 롤링 랭킹용)
//   - WeightedComposite: 0–100 구간의 가중 합성 점수 (월간 평가 점수용)
//
// 두 방식은 서로 호환되지 않는 척도이므로 절대 암묵적으로 혼용하지 않는다.
package score

import "github.com/sinseon-market/seller-ranking-go/internal/ranking/model"

// Input: 채점 전략 입력.
// Components는 WeightedComposite 전용이며 SummedPoints는 무시한다.
type Input struct {
	TotalSales    int64
	OrderCount    int
	ActivityScore int

	Components *model.ComponentScores
}

// Result: 채점 결과. 구성 점수는 SummedPoints에서만 채워진다.
type Result struct {
	SalesScore      int64
	OrderCountScore int64
	ActivityScore   int64
	TotalScore      float64
}

// Strategy: 채점 전략 인터페이스
type Strategy interface {
	// Name: 전략 식별 이름 (로그/스냅샷 기록용)
	Name() string
	// Calculate: 입력 지표를 점수로 환산한다.
	Calculate(in Input) Result
}
