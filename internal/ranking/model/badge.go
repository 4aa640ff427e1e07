package model

// BadgeID: 월간 스냅샷 조건 충족 시 발급되는 업적 배지 식별자
type BadgeID string

// BadgeFastConfirmer 는 배지 식별자 상수 목록이다.
const (
	BadgeFastConfirmer BadgeID = "fast_confirmer" // 평균 확정 1시간 이내
	BadgeNoCancel      BadgeID = "no_cancel"      // 취소율 1% 미만
	BadgeVolumeKing    BadgeID = "volume_king"    // 월 주문 1,000건 이상
	BadgePerfectData   BadgeID = "perfect_data"   // 데이터 품질 100%
)

// AllBadgeIDs: 평가 대상 배지 전체 목록
func AllBadgeIDs() []BadgeID {
	return []BadgeID{BadgeFastConfirmer, BadgeNoCancel, BadgeVolumeKing, BadgePerfectData}
}
