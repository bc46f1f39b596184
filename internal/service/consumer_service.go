package service

import (
	"context"
	"encoding/json"
	"log"

	"sea-catering-be/internal/dto"
	"sea-catering-be/internal/pkg/mailer"
	"sea-catering-be/internal/repository/specification"
	"sea-catering-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService sends the confirmation email for freshly created
// subscriptions off the request path.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishSubscriptionCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: payload.SubscriptionId})
	if err != nil {
		log.Printf("[ERROR] Failed to get subscription %s: %v", payload.SubscriptionId, err)
		msg.Nack()
		return
	}
	if sub == nil {
		log.Printf("[WARN] Subscription not found: %s", payload.SubscriptionId)
		msg.Ack() // Cancelled already? Ack.
		return
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to get user %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}
	if user == nil {
		log.Printf("[WARN] User not found for subscription %s", payload.SubscriptionId)
		msg.Ack()
		return
	}

	if err := cs.emailService.SendSubscriptionConfirmation(user.Email, sub.FullName, sub.Plan, sub.TotalPrice, sub.DeliveryDays); err != nil {
		log.Printf("[ERROR] Failed to send confirmation email to %s: %v", user.Email, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
