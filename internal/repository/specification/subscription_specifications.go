package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySubscriptionIDs filters testimonials by their subscription references
type BySubscriptionIDs struct {
	IDs []uuid.UUID
}

func (s BySubscriptionIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscription_id IN ?", s.IDs)
}
