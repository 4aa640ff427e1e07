package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
)

// TierCriterionSeed: yaml 시드 파일의 등급 기준 1행.
// active 생략 시 활성으로 취급한다.
type TierCriterionSeed struct {
	Tier          string `yaml:"tier"`
	MinOrderCount int    `yaml:"min_order_count"`
	MinTotalSales int64  `yaml:"min_total_sales"`
	Active        *bool  `yaml:"active"`
}

// IsActive: 시드 행의 활성 여부를 반환한다.
func (s TierCriterionSeed) IsActive() bool {
	return s.Active == nil || *s.Active
}

type tierCriteriaFile struct {
	Criteria []TierCriterionSeed `yaml:"criteria"`
}

// LoadTierCriteriaFile: 등급 기준 yaml 시드 파일을 읽고 검증한다.
// 실행 시작 시 tier_criteria 테이블에 upsert 되는 운영자 관리 입력이다.
func LoadTierCriteriaFile(path string) ([]TierCriterionSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tier criteria file failed path=%s: %w", path, err)
	}

	var parsed tierCriteriaFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse tier criteria file failed path=%s: %w", path, err)
	}

	for i, seed := range parsed.Criteria {
		if !model.Tier(seed.Tier).Valid() {
			return nil, fmt.Errorf("invalid tier %q at criteria[%d] in %s", seed.Tier, i, path)
		}
		if seed.MinOrderCount < 0 || seed.MinTotalSales < 0 {
			return nil, fmt.Errorf("negative threshold at criteria[%d] in %s", i, path)
		}
	}

	return parsed.Criteria, nil
}
