package dbutil

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	commonconfig "github.com/sinseon-market/seller-ranking-go/internal/common/config"
)

// BuildDSN: DBConfig로부터 PostgreSQL DSN 문자열을 생성한다.
func BuildDSN(cfg commonconfig.DBConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}

// OpenPostgres: PostgreSQL 연결을 생성하고 커넥션 풀을 설정한다.
func OpenPostgres(ctx context.Context, cfg commonconfig.DBConfig) (*gorm.DB, *sql.DB, error) {
	db, err := gorm.Open(postgres.Open(BuildDSN(cfg)), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql db failed: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("ping postgres failed: %w", err)
	}

	return db, sqlDB, nil
}
