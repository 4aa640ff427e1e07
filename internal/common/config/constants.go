package config

// 랭킹 점수 환산 기본값.
const (
	// DefaultSalesPerPoint: 매출 점수 환산 기준 (10,000원 = 1점)
	DefaultSalesPerPoint = 10_000
	// DefaultOrdersPerPoint: 주문 점수 환산 기준 (주문 1건 = 10점)
	DefaultOrdersPerPoint = 10
)

// 배치 실행 관련 상수.
const (
	// DefaultStageTimeoutSeconds: 스테이지 단위 타임아웃(초)
	DefaultStageTimeoutSeconds = 300
	// DefaultSellerConcurrency: 셀러 단위 병렬 처리 워커 수
	DefaultSellerConcurrency = 8
)

// 리더보드 캐시 상수.
const (
	// LeaderboardCacheTTLSeconds: 리더보드 캐시 TTL (10분)
	LeaderboardCacheTTLSeconds = 600
	// LeaderboardDefaultLimit: 리더보드 기본 조회 건수
	LeaderboardDefaultLimit = 20
	// LeaderboardMaxLimit: 리더보드 최대 조회 건수
	LeaderboardMaxLimit = 100
)
