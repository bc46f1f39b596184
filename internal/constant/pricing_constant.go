package constant

import "math"

// WeeksPerMonth converts a weekly delivery schedule into a monthly price.
const WeeksPerMonth = 4.3

// PricingPlan is a static pricing tier. The catalogue is reference data and
// never changes at runtime, so it lives in code rather than the database.
type PricingPlan struct {
	Idx         int      `json:"idx"`
	Name        string   `json:"name"`
	Subtitle    string   `json:"subtitle"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
}

var PricingPlans = []PricingPlan{
	{
		Idx:         1,
		Name:        "Starter",
		Subtitle:    "Diet",
		Price:       30000,
		Description: "Perfect for beginners",
		Features:    []string{"Standard delivery", "Email support"},
	},
	{
		Idx:         2,
		Name:        "Pro",
		Subtitle:    "Protein",
		Price:       40000,
		Description: "For active lifestyles",
		Features: []string{
			"AI meal recommendations",
			"Detailed nutrition analytics",
			"Priority delivery",
			"24/7 chat support",
		},
		Popular: true,
	},
	{
		Idx:         3,
		Name:        "Enterprise",
		Subtitle:    "Royal",
		Price:       60000,
		Description: "Premium everything",
		Features: []string{
			"Advanced AI matching",
			"Exclusive meal plans",
			"Same-hour delivery",
			"Health insights dashboard",
		},
	},
}

// FindPricingPlan resolves a plan by its idx, nil when unknown.
func FindPricingPlan(idx int) *PricingPlan {
	for i := range PricingPlans {
		if PricingPlans[i].Idx == idx {
			return &PricingPlans[i]
		}
	}
	return nil
}

// CalculateTotalPrice computes the monthly subscription price:
// round(planPrice * mealTypes * deliveryDays * 4.3).
func CalculateTotalPrice(planPrice, mealTypes, deliveryDays int) int {
	return int(math.Round(float64(planPrice*mealTypes*deliveryDays) * WeeksPerMonth))
}
