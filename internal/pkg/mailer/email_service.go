package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"sea-catering-be/internal/constant"
)

type IEmailService interface {
	SendSubscriptionConfirmation(toEmail, fullName string, planIdx, totalPrice int, deliveryDays []int) error
	SendPauseNotice(toEmail, fullName string, pausedFrom, pausedTo string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func formatDeliveryDays(days []int) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d < len(dayNames) {
			names = append(names, dayNames[d])
		}
	}
	return strings.Join(names, ", ")
}

func (s *emailService) SendSubscriptionConfirmation(toEmail, fullName string, planIdx, totalPrice int, deliveryDays []int) error {
	planName := "your plan"
	if plan := constant.FindPricingPlan(planIdx); plan != nil {
		planName = plan.Name
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your SEA Catering Subscription is Active")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you, %s!</h2>
			<p>Your subscription to the <b>%s</b> plan is now active.</p>
			<p>Deliveries on: %s</p>
			<p>Monthly total: <b>Rp%d</b></p>
			<p>You can pause or cancel your subscription anytime from your dashboard.</p>
		</div>
	`, fullName, planName, formatDeliveryDays(deliveryDays), totalPrice)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Subscription confirmation sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendPauseNotice(toEmail, fullName string, pausedFrom, pausedTo string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your SEA Catering Subscription is Paused")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your subscription deliveries are paused from <b>%s</b> to <b>%s</b>.</p>
			<p>Deliveries resume automatically after the pause window ends.</p>
		</div>
	`, fullName, pausedFrom, pausedTo)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send pause notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Pause notice sent to %s\n", toEmail)
	return nil
}
