// Package repository: 랭킹 파이프라인의 GORM 기반 영속 계층.
// 메서드들은 도메인별 파일로 분리됨:
//   - metrics.go: 실적 피드 범위 조회
//   - snapshots.go: 랭킹 스냅샷 upsert/조회
//   - badges.go: 배지 upsert/조회
//   - criteria.go: 등급 기준 조회/시드
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository: DB 접근을 위한 GORM 기반 리포지토리
type Repository struct {
	db *gorm.DB
}

// New: 새로운 Repository 인스턴스를 생성한다.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AutoMigrate: 파이프라인이 사용하는 테이블 스키마를 마이그레이션한다.
// performance_records는 업스트림 소유지만 로컬/테스트 환경 기동을 위해 포함한다.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := r.db.WithContext(ctx).AutoMigrate(
		&PerformanceRecord{},
		&RankingSnapshot{},
		&SellerBadge{},
		&TierCriterion{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
