package notification

import (
	"context"
	"fmt"

	mailjet "github.com/mailjet/mailjet-apiv3-go"

	"github.com/Leganyst/hotel-booking/internal/model"
)

// MailjetNotifier отправляет письма гостям через Mailjet.
type MailjetNotifier struct {
	client    *mailjet.Client
	fromEmail string
	fromName  string
}

func NewMailjetNotifier(apiKey, secretKey, fromEmail, fromName string) *MailjetNotifier {
	return &MailjetNotifier{
		client:    mailjet.NewMailjetClient(apiKey, secretKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (n *MailjetNotifier) Notify(
	_ context.Context,
	event Event,
	booking *model.Booking,
	room *model.Room,
	email string,
) error {
	subject, body := composeMessage(event, booking, room)

	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: n.fromEmail,
					Name:  n.fromName,
				},
				To: &mailjet.RecipientsV31{
					mailjet.RecipientV31{Email: email},
				},
				Subject:  subject,
				TextPart: body,
			},
		},
	}

	if _, err := n.client.SendMailV31(&messages); err != nil {
		return fmt.Errorf("mailjet send: %w", err)
	}
	return nil
}

func composeMessage(event Event, booking *model.Booking, room *model.Room) (subject, body string) {
	checkIn := booking.CheckInDate.Format("2006-01-02")
	checkOut := booking.CheckOutDate.Format("2006-01-02")

	switch event {
	case EventBookingCanceled:
		subject = "Booking canceled"
		body = fmt.Sprintf(
			"Your booking for room %d (%s to %s) has been canceled.",
			room.Number, checkIn, checkOut,
		)
	default:
		subject = "Booking confirmed"
		body = fmt.Sprintf(
			"Your booking for room %d is confirmed: %s to %s, total %.2f.",
			room.Number, checkIn, checkOut, booking.TotalPrice,
		)
	}
	return subject, body
}
