// Package tier: 집계된 (주문 수, 매출액)을 절대 기준 다중 조건으로 등급화한다.
// 등급은 다른 셀러의 성과와 무관한 절대 분류다.
package tier

import (
	"cmp"
	"slices"

	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
)

// Criterion: 등급 판정 기준 행.
// 주문 수와 매출액 둘 다 충족해야 해당 등급이다. (AND 조건)
type Criterion struct {
	Tier          model.Tier
	MinOrderCount int
	MinTotalSales int64
	Active        bool
}

// FallbackCriteria: 활성 기준이 하나도 없을 때 사용하는 하드코딩 기본값.
// 설정 부재로 파이프라인이 실패하지 않도록 한다.
func FallbackCriteria() []Criterion {
	return []Criterion{
		{Tier: model.TierDiamond, MinOrderCount: 500, MinTotalSales: 50_000_000, Active: true},
		{Tier: model.TierPlatinum, MinOrderCount: 300, MinTotalSales: 30_000_000, Active: true},
		{Tier: model.TierGold, MinOrderCount: 150, MinTotalSales: 15_000_000, Active: true},
		{Tier: model.TierSilver, MinOrderCount: 50, MinTotalSales: 5_000_000, Active: true},
	}
}

// Assigner: 정렬된 기준 목록을 보유한 등급 판정기
type Assigner struct {
	criteria []Criterion
}

// NewAssigner: 기준 목록으로 Assigner를 생성한다.
// 비활성 기준은 제외하고, (매출 기준 내림차순, 주문 기준 내림차순, 등급 서열 내림차순)으로
// 정렬해 실행 간 판정 순서를 결정적으로 만든다.
func NewAssigner(criteria []Criterion) *Assigner {
	active := make([]Criterion, 0, len(criteria))
	for _, c := range criteria {
		if c.Active && c.Tier.Valid() {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		active = FallbackCriteria()
	}

	slices.SortFunc(active, func(a, b Criterion) int {
		if c := cmp.Compare(b.MinTotalSales, a.MinTotalSales); c != 0 {
			return c
		}
		if c := cmp.Compare(b.MinOrderCount, a.MinOrderCount); c != 0 {
			return c
		}
		return cmp.Compare(b.Tier.Rank(), a.Tier.Rank())
	})

	return &Assigner{criteria: active}
}

// UsingFallback: 하드코딩 기본 기준으로 동작 중인지 여부 (경고 로그용)
func UsingFallback(criteria []Criterion) bool {
	for _, c := range criteria {
		if c.Active && c.Tier.Valid() {
			return false
		}
	}
	return true
}

// Assign: 주문 수와 매출액 모두 기준을 충족하는 첫 번째(가장 높은) 등급을 반환한다.
// 어느 기준도 충족하지 못하면 bronze.
func (a *Assigner) Assign(orderCount int, totalSales int64) model.Tier {
	for _, c := range a.criteria {
		if orderCount >= c.MinOrderCount && totalSales >= c.MinTotalSales {
			return c.Tier
		}
	}
	return model.TierBronze
}
