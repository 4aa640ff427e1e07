package config

import (
	"fmt"
)

// ReadServerConfigFromEnv: HTTP 서버 호스트와 포트 설정을 환경 변수에서 읽어옵니다.
func ReadServerConfigFromEnv(defaultPort int) (ServerConfig, error) {
	serverPort, err := IntFromEnv("SERVER_PORT", defaultPort)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("read SERVER_PORT failed: %w", err)
	}

	return ServerConfig{
		Host: StringFromEnv("SERVER_HOST", "0.0.0.0"),
		Port: serverPort,
	}, nil
}

// ReadServerTuningConfigFromEnv: HTTP 서버 튜닝 설정(Timeouts, Limits)을 환경 변수에서 읽어옵니다.
func ReadServerTuningConfigFromEnv() (ServerTuningConfig, error) {
	readHeaderTimeout, err := DurationSecondsFromEnv("SERVER_READ_HEADER_TIMEOUT_SECONDS", 5)
	if err != nil {
		return ServerTuningConfig{}, fmt.Errorf(
			"read SERVER_READ_HEADER_TIMEOUT_SECONDS failed: %w",
			err,
		)
	}

	idleTimeout, err := DurationSecondsFromEnv("SERVER_IDLE_TIMEOUT_SECONDS", 90)
	if err != nil {
		return ServerTuningConfig{}, fmt.Errorf("read SERVER_IDLE_TIMEOUT_SECONDS failed: %w", err)
	}

	maxHeaderBytes, err := IntFromEnv("SERVER_MAX_HEADER_BYTES", 1<<20) // 1MiB
	if err != nil {
		return ServerTuningConfig{}, fmt.Errorf("read SERVER_MAX_HEADER_BYTES failed: %w", err)
	}
	if maxHeaderBytes < 0 {
		return ServerTuningConfig{}, fmt.Errorf("invalid SERVER_MAX_HEADER_BYTES: %d", maxHeaderBytes)
	}

	useH2C, err := BoolFromEnv("SERVER_USE_H2C", false)
	if err != nil {
		return ServerTuningConfig{}, fmt.Errorf("read SERVER_USE_H2C failed: %w", err)
	}

	return ServerTuningConfig{
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
		UseH2C:            useH2C,
	}, nil
}

// ReadDBConfigFromEnv: PostgreSQL 연결 설정을 환경 변수에서 읽어옵니다.
func ReadDBConfigFromEnv() (DBConfig, error) {
	dbPort, err := IntFromEnv("DB_PORT", 5432)
	if err != nil {
		return DBConfig{}, fmt.Errorf("read DB_PORT failed: %w", err)
	}

	maxOpenConns, err := IntFromEnv("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return DBConfig{}, fmt.Errorf("read DB_MAX_OPEN_CONNS failed: %w", err)
	}

	maxIdleConns, err := IntFromEnv("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return DBConfig{}, fmt.Errorf("read DB_MAX_IDLE_CONNS failed: %w", err)
	}

	connMaxLifetime, err := DurationSecondsFromEnv("DB_CONN_MAX_LIFETIME_SECONDS", 1800)
	if err != nil {
		return DBConfig{}, fmt.Errorf("read DB_CONN_MAX_LIFETIME_SECONDS failed: %w", err)
	}

	return DBConfig{
		Host:            StringFromEnv("DB_HOST", "localhost"),
		Port:            dbPort,
		User:            StringFromEnv("DB_USER", "ranking"),
		Password:        StringFromEnv("DB_PASSWORD", ""),
		Name:            StringFromEnv("DB_NAME", "sinseon_market"),
		SSLMode:         StringFromEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
	}, nil
}

// ReadRedisConfigFromEnv: Redis(Valkey) 연결 설정을 환경 변수에서 읽어옵니다.
// 여러 환경 변수 키 중 첫 번째로 값이 존재하는 것을 사용합니다.
func ReadRedisConfigFromEnv() (RedisConfig, error) {
	redisPort, err := IntFromEnv("REDIS_PORT", 6379)
	if err != nil {
		return RedisConfig{}, fmt.Errorf("read REDIS_PORT failed: %w", err)
	}

	redisDB, err := IntFromEnv("REDIS_DB", 0)
	if err != nil {
		return RedisConfig{}, fmt.Errorf("read REDIS_DB failed: %w", err)
	}

	dialTimeout, err := DurationSecondsFromEnv("REDIS_DIAL_TIMEOUT_SECONDS", 5)
	if err != nil {
		return RedisConfig{}, fmt.Errorf("read REDIS_DIAL_TIMEOUT_SECONDS failed: %w", err)
	}

	readTimeout, err := DurationSecondsFromEnv("REDIS_READ_TIMEOUT_SECONDS", 3)
	if err != nil {
		return RedisConfig{}, fmt.Errorf("read REDIS_READ_TIMEOUT_SECONDS failed: %w", err)
	}

	writeTimeout, err := DurationSecondsFromEnv("REDIS_WRITE_TIMEOUT_SECONDS", 3)
	if err != nil {
		return RedisConfig{}, fmt.Errorf("read REDIS_WRITE_TIMEOUT_SECONDS failed: %w", err)
	}

	poolSize, err := IntFromEnv("REDIS_POOL_SIZE", 10)
	if err != nil {
		return RedisConfig{}, fmt.Errorf("read REDIS_POOL_SIZE failed: %w", err)
	}

	minIdleConns, err := IntFromEnv("REDIS_MIN_IDLE_CONNS", 2)
	if err != nil {
		return RedisConfig{}, fmt.Errorf("read REDIS_MIN_IDLE_CONNS failed: %w", err)
	}

	return RedisConfig{
		Host:         StringFromEnvFirstNonEmpty([]string{"REDIS_HOST", "VALKEY_HOST"}, "localhost"),
		Port:         redisPort,
		Password:     StringFromEnvFirstNonEmpty([]string{"REDIS_PASSWORD", "VALKEY_PASSWORD"}, ""),
		DB:           redisDB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		PoolSize:     poolSize,
		MinIdleConns: minIdleConns,
	}, nil
}

// ReadLogConfigFromEnv: 파일 로그 로테이션 설정을 환경 변수에서 읽어옵니다.
// LOG_DIR이 비어있으면 파일 로깅은 비활성화됩니다.
func ReadLogConfigFromEnv() (LogConfig, error) {
	maxSizeMB, err := IntFromEnv("LOG_MAX_SIZE_MB", 50)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_MAX_SIZE_MB failed: %w", err)
	}

	maxBackups, err := IntFromEnv("LOG_MAX_BACKUPS", 5)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_MAX_BACKUPS failed: %w", err)
	}

	maxAgeDays, err := IntFromEnv("LOG_MAX_AGE_DAYS", 14)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_MAX_AGE_DAYS failed: %w", err)
	}

	compress, err := BoolFromEnv("LOG_COMPRESS", true)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_COMPRESS failed: %w", err)
	}

	return LogConfig{
		Dir:        StringFromEnv("LOG_DIR", ""),
		MaxSizeMB:  maxSizeMB,
		MaxBackups: maxBackups,
		MaxAgeDays: maxAgeDays,
		Compress:   compress,
	}, nil
}

// ReadOtelConfigFromEnv: OpenTelemetry 설정을 환경 변수에서 읽어옵니다.
func ReadOtelConfigFromEnv(defaultServiceName string) (OtelConfig, error) {
	insecure, err := BoolFromEnv("OTEL_EXPORTER_OTLP_INSECURE", true)
	if err != nil {
		return OtelConfig{}, fmt.Errorf("read OTEL_EXPORTER_OTLP_INSECURE failed: %w", err)
	}

	return OtelConfig{
		Endpoint:    StringFromEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName: StringFromEnv("OTEL_SERVICE_NAME", defaultServiceName),
		Insecure:    insecure,
	}, nil
}
