package email

import (
	"context"
	"fmt"

	"github.com/alimikegami/bdseller-service/config"
	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type sendFunc func(message *gomail.Message, sender string, password string, smtpServer string, smtpPort int) error

type Notifier struct {
	config config.SMTPConfig
	send   sendFunc
}

func CreateNotifier(config config.SMTPConfig) *Notifier {
	return &Notifier{config: config, send: utils.SendEmail}
}

// Enabled reports whether an SMTP server has been configured.
func (n *Notifier) Enabled() bool {
	return n.config.Server != ""
}

func (n *Notifier) SendBookingConfirmation(ctx context.Context, booking domain.Booking) error {
	if !n.Enabled() {
		log.Ctx(ctx).Debug().Str("component", "SendBookingConfirmation").Msg("smtp not configured, skipping e-mail")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.config.Sender)
	m.SetHeader("To", booking.UserEmail)
	if booking.SellerEmail != "" {
		m.SetHeader("Cc", booking.SellerEmail)
	}
	m.SetHeader("Subject", fmt.Sprintf("Booking confirmed: %s", productLabel(booking)))
	m.SetBody("text/html", bookingBody(booking))

	return n.send(m, n.config.Sender, n.config.Password, n.config.Server, n.config.Port)
}

func productLabel(booking domain.Booking) string {
	if booking.ProductName != "" {
		return booking.ProductName
	}
	return booking.ProductID
}

func bookingBody(booking domain.Booking) string {
	name := booking.UserName
	if name == "" {
		name = booking.UserEmail
	}

	body := fmt.Sprintf("<p>Hi %s,</p><p>Your booking for <b>%s</b> was placed on %s.</p>",
		name, productLabel(booking), utils.FormatMillis(booking.BookingCreated))
	if booking.Price > 0 {
		body += fmt.Sprintf("<p>Price: %.2f</p>", booking.Price)
	}
	if booking.MeetingLocation != "" {
		body += fmt.Sprintf("<p>Meeting location: %s</p>", booking.MeetingLocation)
	}

	return body + "<p>BD Seller</p>"
}
