package events

import "time"

const (
	SubscriptionCreated   = "SUBSCRIPTION_CREATED"
	SubscriptionPaused    = "SUBSCRIPTION_PAUSED"
	SubscriptionResumed   = "SUBSCRIPTION_RESUMED"
	SubscriptionCancelled = "SUBSCRIPTION_CANCELLED"
)

func NewSubscriptionCreated(subscriptionId, userId string, plan, totalPrice int) Event {
	return BaseEvent{
		Type: SubscriptionCreated,
		Data: map[string]interface{}{
			"subscription_id": subscriptionId,
			"user_id":         userId,
			"plan":            plan,
			"total_price":     totalPrice,
		},
		OccurredAt: time.Now(),
	}
}

func NewSubscriptionPaused(subscriptionId, userId string, pausedFrom, pausedTo time.Time) Event {
	return BaseEvent{
		Type: SubscriptionPaused,
		Data: map[string]interface{}{
			"subscription_id": subscriptionId,
			"user_id":         userId,
			"paused_from":     pausedFrom.Format(time.RFC3339),
			"paused_to":       pausedTo.Format(time.RFC3339),
		},
		OccurredAt: time.Now(),
	}
}

func NewSubscriptionResumed(subscriptionId, userId string) Event {
	return BaseEvent{
		Type: SubscriptionResumed,
		Data: map[string]interface{}{
			"subscription_id": subscriptionId,
			"user_id":         userId,
		},
		OccurredAt: time.Now(),
	}
}

func NewSubscriptionCancelled(subscriptionId, userId string) Event {
	return BaseEvent{
		Type: SubscriptionCancelled,
		Data: map[string]interface{}{
			"subscription_id": subscriptionId,
			"user_id":         userId,
		},
		OccurredAt: time.Now(),
	}
}
