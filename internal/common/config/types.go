package config

import "time"

// ServerConfig: HTTP 서버 주소/포트 설정입니다.
type ServerConfig struct {
	Host string // 서버 바인딩 호스트
	Port int    // 서버 리스닝 포트
}

// ServerTuningConfig: HTTP 서버 튜닝 설정(Timeouts, Limits)입니다.
type ServerTuningConfig struct {
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	UseH2C            bool // 리버스 프록시 뒤에서 HTTP/2 cleartext 허용
}

// DBConfig: PostgreSQL 연결 설정입니다.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int           // 최대 커넥션 수
	MaxIdleConns    int           // 최대 유휴 커넥션 수
	ConnMaxLifetime time.Duration // 커넥션 최대 수명
}

// RedisConfig: Redis/Valkey 캐시 연결 설정입니다.
type RedisConfig struct {
	Host     string // 서버 호스트
	Port     int    // 서버 포트
	Password string // 인증 패스워드
	DB       int    // 사용할 DB 번호

	DialTimeout  time.Duration // 연결 타임아웃
	ReadTimeout  time.Duration // 읽기 타임아웃
	WriteTimeout time.Duration // 쓰기 타임아웃

	PoolSize     int // 커넥션 풀 크기
	MinIdleConns int // 최소 유휴 커넥션 수
}

// LogConfig: 파일 로그 로테이션 설정입니다.
type LogConfig struct {
	Dir string // 로그 파일 디렉터리

	MaxSizeMB  int  // 단일 파일 최대 크기 (MB)
	MaxBackups int  // 보관할 백업 파일 수
	MaxAgeDays int  // 백업 파일 보관 일수
	Compress   bool // 백업 파일 압축 여부
}

// OtelConfig: OpenTelemetry 트레이싱 설정입니다.
// Endpoint가 비어있으면 트레이싱은 비활성화됩니다.
type OtelConfig struct {
	Endpoint    string // OTLP gRPC 엔드포인트 (host:port)
	ServiceName string // 서비스 이름 (resource attribute)
	Insecure    bool   // TLS 비활성화 여부
}
