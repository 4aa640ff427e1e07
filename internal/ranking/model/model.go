// Package model: 셀러 랭킹 파이프라인의 도메인 타입 정의.
package model

// PeriodType: 랭킹 집계 기간 종류
type PeriodType string

// PeriodDaily 는 집계 기간 상수 목록이다.
const (
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
)

// AllPeriodTypes: 파이프라인이 처리하는 기간 목록 (처리 순서 고정)
func AllPeriodTypes() []PeriodType {
	return []PeriodType{PeriodDaily, PeriodWeekly, PeriodMonthly}
}

// Valid: 알려진 기간 종류인지 확인한다.
func (p PeriodType) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	default:
		return false
	}
}

// Tier: 절대 기준 다중 조건으로 결정되는 셀러 등급
type Tier string

// TierBronze 는 셀러 등급 상수 목록이다.
const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

// Rank: 등급의 서열을 반환한다. (bronze=1 .. diamond=5)
// 티어 기준 정렬의 결정적 tie-break 키로 사용된다.
func (t Tier) Rank() int {
	switch t {
	case TierDiamond:
		return 5
	case TierPlatinum:
		return 4
	case TierGold:
		return 3
	case TierSilver:
		return 2
	case TierBronze:
		return 1
	default:
		return 0
	}
}

// Valid: 알려진 등급인지 확인한다.
func (t Tier) Valid() bool {
	return t.Rank() > 0
}
