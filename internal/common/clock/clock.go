// Package clock: 파이프라인의 "오늘" 기준 시각을 주입 가능하게 만든다.
// 롤링 주간/월간 윈도우 계산이 벽시계에 직접 의존하지 않도록 한다.
package clock

import "time"

// Clock: 현재 시각 제공자 인터페이스
type Clock interface {
	Now() time.Time
}

// Real: 실제 벽시계를 사용하는 Clock 구현
type Real struct{}

// Now: 현재 시각을 반환한다.
func (Real) Now() time.Time { return time.Now() }

// Fixed: 고정된 시각을 반환하는 테스트용 Clock 구현
type Fixed struct {
	T time.Time
}

// Now: 고정된 시각을 반환한다.
func (f Fixed) Now() time.Time { return f.T }
