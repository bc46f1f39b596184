package dto

import "github.com/google/uuid"

// PublishSubscriptionCreatedMessage is the payload carried on the in-process
// bus between the subscribe flow and the confirmation email worker.
type PublishSubscriptionCreatedMessage struct {
	SubscriptionId uuid.UUID `json:"subscription_id"`
	UserId         uuid.UUID `json:"user_id"`
}
