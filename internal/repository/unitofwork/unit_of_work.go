package unitofwork

import (
	"context"

	"sea-catering-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SubscriptionRepository() contract.SubscriptionRepository
	TestimonialRepository() contract.TestimonialRepository
}
