// Package period: 집계 기간 윈도우 계산과 일별 실적 합산.
package period

import (
	"time"

	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
)

// Window: [Start, End] 양끝 포함 집계 구간
type Window struct {
	Type  model.PeriodType
	Start time.Time
	End   time.Time
}

// Month: 윈도우가 속한 달을 "YYYY-MM" 형식으로 반환한다. (배지 키용)
func (w Window) Month() string {
	return w.Start.Format("2006-01")
}

// truncateDay: 시각 정보를 제거하고 날짜만 남긴다.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Daily: 오늘 하루짜리 윈도우를 계산한다.
func Daily(now time.Time) Window {
	today := truncateDay(now)
	return Window{Type: model.PeriodDaily, Start: today, End: today}
}

// Weekly: 이번 주 월요일부터 오늘까지의 롤링 윈도우를 계산한다.
// ISO 주 시작(월요일) 기준: 일요일이면 date-6일, 그 외는 date-(요일-1)일.
func Weekly(now time.Time) Window {
	today := truncateDay(now)

	var offset int
	if today.Weekday() == time.Sunday {
		offset = 6
	} else {
		offset = int(today.Weekday()) - 1
	}

	return Window{
		Type:  model.PeriodWeekly,
		Start: today.AddDate(0, 0, -offset),
		End:   today,
	}
}

// MonthlyRolling: 이번 달 1일부터 오늘까지의 롤링 윈도우를 계산한다.
// 마감된 지난달이 아니라 진행 중인 현재 달이다.
func MonthlyRolling(now time.Time) Window {
	today := truncateDay(now)
	return Window{
		Type:  model.PeriodMonthly,
		Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()),
		End:   today,
	}
}

// ClosedMonth: 특정 달 전체(1일~말일)의 마감 윈도우를 계산한다.
// 배지 평가 등 닫힌 달 단위 조회에 사용한다.
func ClosedMonth(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Window{
		Type:  model.PeriodMonthly,
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// WindowFor: 기간 종류에 해당하는 롤링 윈도우를 계산한다.
func WindowFor(periodType model.PeriodType, now time.Time) Window {
	switch periodType {
	case model.PeriodWeekly:
		return Weekly(now)
	case model.PeriodMonthly:
		return MonthlyRolling(now)
	default:
		return Daily(now)
	}
}
