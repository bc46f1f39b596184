package constant

import "testing"

func TestCalculateTotalPrice(t *testing.T) {
	tests := []struct {
		name         string
		planPrice    int
		mealTypes    int
		deliveryDays int
		want         int
	}{
		{
			name:         "pro plan two meals three days",
			planPrice:    40000,
			mealTypes:    2,
			deliveryDays: 3,
			want:         1032000,
		},
		{
			name:         "starter plan minimal schedule",
			planPrice:    30000,
			mealTypes:    1,
			deliveryDays: 1,
			want:         129000,
		},
		{
			name:         "enterprise plan full week",
			planPrice:    60000,
			mealTypes:    3,
			deliveryDays: 7,
			want:         5418000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotalPrice(tt.planPrice, tt.mealTypes, tt.deliveryDays)
			if got != tt.want {
				t.Errorf("CalculateTotalPrice(%d, %d, %d) = %d, want %d",
					tt.planPrice, tt.mealTypes, tt.deliveryDays, got, tt.want)
			}
		})
	}
}

func TestFindPricingPlan(t *testing.T) {
	for _, idx := range []int{1, 2, 3} {
		if plan := FindPricingPlan(idx); plan == nil {
			t.Errorf("FindPricingPlan(%d) = nil, want plan", idx)
		}
	}

	if plan := FindPricingPlan(0); plan != nil {
		t.Errorf("FindPricingPlan(0) = %v, want nil", plan)
	}
	if plan := FindPricingPlan(4); plan != nil {
		t.Errorf("FindPricingPlan(4) = %v, want nil", plan)
	}
}

func TestPricingPlanCatalog(t *testing.T) {
	prices := map[int]int{1: 30000, 2: 40000, 3: 60000}
	for idx, want := range prices {
		plan := FindPricingPlan(idx)
		if plan == nil {
			t.Fatalf("plan %d missing from catalog", idx)
		}
		if plan.Price != want {
			t.Errorf("plan %d price = %d, want %d", idx, plan.Price, want)
		}
	}

	popular := FindPricingPlan(2)
	if popular == nil || !popular.Popular {
		t.Error("plan 2 should be marked popular")
	}
}
