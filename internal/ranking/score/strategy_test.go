package score

import (
	"math"
	"testing"

	"github.com/sinseon-market/seller-ranking-go/internal/ranking/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummedPointsCalculate(t *testing.T) {
	s := NewSummedPoints(10_000, 10)

	t.Run("basic", func(t *testing.T) {
		got := s.Calculate(Input{TotalSales: 123_456, OrderCount: 7, ActivityScore: 30})
		if got.SalesScore != 12 {
			t.Errorf("sales_score: expected 12, got %d", got.SalesScore)
		}
		if got.OrderCountScore != 70 {
			t.Errorf("order_count_score: expected 70, got %d", got.OrderCountScore)
		}
		if got.ActivityScore != 30 {
			t.Errorf("activity_score: expected 30, got %d", got.ActivityScore)
		}
		if got.TotalScore != 112 {
			t.Errorf("total_score: expected 112, got %f", got.TotalScore)
		}
	})

	t.Run("floor_division", func(t *testing.T) {
		got := s.Calculate(Input{TotalSales: 9_999})
		if got.SalesScore != 0 {
			t.Errorf("expected 0 for sales below one point unit, got %d", got.SalesScore)
		}
	})

	t.Run("negative_inputs_floor_to_zero", func(t *testing.T) {
		got := s.Calculate(Input{TotalSales: -1, OrderCount: -5, ActivityScore: -3})
		if got.TotalScore != 0 {
			t.Errorf("expected 0, got %f", got.TotalScore)
		}
	})

	// P1: sales_score는 total_sales에 대해 단조 비감소
	t.Run("monotonic_sales_score", func(t *testing.T) {
		prev := int64(-1)
		for _, sales := range []int64{0, 1, 9_999, 10_000, 10_001, 55_000, 1_000_000} {
			got := s.Calculate(Input{TotalSales: sales})
			if got.SalesScore < prev {
				t.Errorf("sales_score decreased at total_sales=%d: %d < %d", sales, got.SalesScore, prev)
			}
			if got.SalesScore != sales/10_000 {
				t.Errorf("sales_score(%d): expected %d, got %d", sales, sales/10_000, got.SalesScore)
			}
			prev = got.SalesScore
		}
	})

	t.Run("default_rates_on_zero_config", func(t *testing.T) {
		def := NewSummedPoints(0, 0)
		if def.SalesPerPoint != 10_000 || def.OrdersPerPoint != 10 {
			t.Errorf("expected defaults 10000/10, got %d/%d", def.SalesPerPoint, def.OrdersPerPoint)
		}
	})
}

func TestWeightedCompositeCalculate(t *testing.T) {
	w := WeightedComposite{}

	t.Run("weighted_sum", func(t *testing.T) {
		got := w.Calculate(Input{Components: &model.ComponentScores{
			Sales:        100,
			OrderCount:   50,
			ConfirmSpeed: 80,
			CancelRate:   90,
			DataQuality:  100,
		}})
		// 0.30*100 + 0.20*50 + 0.20*80 + 0.20*90 + 0.10*100 = 84
		if !almostEqual(got.TotalScore, 84) {
			t.Errorf("expected 84, got %f", got.TotalScore)
		}
	})

	t.Run("bounded", func(t *testing.T) {
		got := w.Calculate(Input{Components: &model.ComponentScores{
			Sales:        500,
			OrderCount:   500,
			ConfirmSpeed: 500,
			CancelRate:   500,
			DataQuality:  500,
		}})
		if !almostEqual(got.TotalScore, 100) {
			t.Errorf("expected clamp to 100, got %f", got.TotalScore)
		}
	})

	t.Run("nil_components", func(t *testing.T) {
		got := w.Calculate(Input{TotalSales: 1_000_000})
		if got.TotalScore != 0 {
			t.Errorf("expected 0 without components, got %f", got.TotalScore)
		}
	})
}

func TestComponentsFromAggregate(t *testing.T) {
	confirm := 1.0
	cancel := 2.5
	quality := 98.0

	agg := model.SellerAggregate{
		SellerID:        "s1",
		TotalSales:      25_000_000,
		OrderCount:      300,
		AvgConfirmHours: &confirm,
		CancelRate:      &cancel,
		DataQualityRate: &quality,
	}

	c := ComponentsFromAggregate(agg, 50_000_000, 1000)
	if c.Sales != 50 {
		t.Errorf("sales component: expected 50, got %f", c.Sales)
	}
	if c.OrderCount != 30 {
		t.Errorf("order component: expected 30, got %f", c.OrderCount)
	}
	if c.ConfirmSpeed != 100 {
		t.Errorf("confirm component: expected 100, got %f", c.ConfirmSpeed)
	}
	if !almostEqual(c.CancelRate, 97.5) {
		t.Errorf("cancel component: expected 97.5, got %f", c.CancelRate)
	}
	if c.DataQuality != 98 {
		t.Errorf("quality component: expected 98, got %f", c.DataQuality)
	}

	t.Run("missing_quality_metrics", func(t *testing.T) {
		c := ComponentsFromAggregate(model.SellerAggregate{TotalSales: 1}, 100, 100)
		if c.ConfirmSpeed != 0 || c.CancelRate != 0 || c.DataQuality != 0 {
			t.Errorf("expected zero components for missing metrics, got %+v", c)
		}
	})
}
