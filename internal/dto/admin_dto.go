package dto

// AdminMetrics holds aggregates computed over the subscriptions table for a
// date range.
type AdminMetrics struct {
	NewSubscriptions    int64 `json:"new_subscriptions"`
	MonthlyRevenue      int64 `json:"monthly_revenue"`
	Reactivations       int64 `json:"reactivations"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
}

type SubscriptionGrowthPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type SubscriptionGrowthResponse struct {
	SubscriptionGrowth []SubscriptionGrowthPoint `json:"subscription_growth"`
}
