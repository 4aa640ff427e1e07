package tier

import (
	"testing"

	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
)

func TestAssignWithFallbackCriteria(t *testing.T) {
	a := NewAssigner(nil)

	tests := []struct {
		name       string
		orderCount int
		totalSales int64
		want       model.Tier
	}{
		// 시나리오 A: 600건 / 6천만원 → diamond
		{"diamond", 600, 60_000_000, model.TierDiamond},
		{"platinum", 300, 30_000_000, model.TierPlatinum},
		{"gold", 200, 20_000_000, model.TierGold},
		{"silver", 50, 5_000_000, model.TierSilver},
		{"bronze_below_everything", 10, 100_000, model.TierBronze},
		{"zero", 0, 0, model.TierBronze},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Assign(tt.orderCount, tt.totalSales)
			if got != tt.want {
				t.Errorf("Assign(%d, %d): expected %s, got %s", tt.orderCount, tt.totalSales, tt.want, got)
			}
		})
	}
}

// P2: 주문 수만 충족하고 매출이 미달이면 해당 등급을 받을 수 없다 (AND 조건)
func TestAssignRequiresBothThresholds(t *testing.T) {
	a := NewAssigner(nil)

	t.Run("orders_met_sales_below", func(t *testing.T) {
		got := a.Assign(600, 40_000_000) // 주문은 diamond, 매출은 platinum 수준
		if got == model.TierDiamond {
			t.Error("diamond must not be assigned when sales threshold is unmet")
		}
		if got != model.TierPlatinum {
			t.Errorf("expected platinum, got %s", got)
		}
	})

	t.Run("sales_met_orders_below", func(t *testing.T) {
		got := a.Assign(100, 60_000_000) // 매출은 diamond, 주문은 silver 수준
		if got != model.TierSilver {
			t.Errorf("expected silver, got %s", got)
		}
	})
}

func TestAssignWithConfiguredCriteria(t *testing.T) {
	a := NewAssigner([]Criterion{
		{Tier: model.TierGold, MinOrderCount: 10, MinTotalSales: 1_000_000, Active: true},
		{Tier: model.TierSilver, MinOrderCount: 5, MinTotalSales: 500_000, Active: true},
		{Tier: model.TierDiamond, MinOrderCount: 100, MinTotalSales: 10_000_000, Active: false}, // 비활성
	})

	if got := a.Assign(100, 10_000_000); got != model.TierGold {
		t.Errorf("inactive criterion must be skipped: expected gold, got %s", got)
	}
	if got := a.Assign(7, 600_000); got != model.TierSilver {
		t.Errorf("expected silver, got %s", got)
	}
}

// 동일 매출 기준의 기준 행들은 등급 서열로 tie-break 되어 순서가 결정적이다
func TestAssignDeterministicTieBreak(t *testing.T) {
	criteria := []Criterion{
		{Tier: model.TierGold, MinOrderCount: 100, MinTotalSales: 1_000_000, Active: true},
		{Tier: model.TierPlatinum, MinOrderCount: 100, MinTotalSales: 1_000_000, Active: true},
	}

	// 입력 순서를 뒤집어도 같은 결과
	a1 := NewAssigner(criteria)
	a2 := NewAssigner([]Criterion{criteria[1], criteria[0]})

	got1 := a1.Assign(100, 1_000_000)
	got2 := a2.Assign(100, 1_000_000)
	if got1 != got2 {
		t.Errorf("tie-break not deterministic: %s vs %s", got1, got2)
	}
	if got1 != model.TierPlatinum {
		t.Errorf("expected higher tier to win the tie, got %s", got1)
	}
}

func TestUsingFallback(t *testing.T) {
	if !UsingFallback(nil) {
		t.Error("expected fallback for empty criteria")
	}
	if !UsingFallback([]Criterion{{Tier: model.TierGold, Active: false}}) {
		t.Error("expected fallback when all criteria inactive")
	}
	if UsingFallback([]Criterion{{Tier: model.TierGold, Active: true}}) {
		t.Error("did not expect fallback with an active criterion")
	}
}
