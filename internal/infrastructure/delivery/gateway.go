// Package delivery routes one-time codes to users over email or SMS.
package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/config"
	"github.com/oksasatya/blinkmaid-backend/pkg/mailer"
	"github.com/oksasatya/blinkmaid-backend/pkg/mailer/templates"
	"github.com/oksasatya/blinkmaid-backend/pkg/sms"
)

var (
	ErrNoEmailTransport = errors.New("no email transport configured")
	ErrNoPhone          = errors.New("user has no phone number")
)

// Publisher puts a JSON job on the email queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Gateway implements application.Delivery. Email goes through the queue when it is
// enabled and falls back to a direct sender otherwise.
type Gateway struct {
	Cfg    *config.Config
	Queue  Publisher
	Mail   mailer.Sender
	SMS    sms.Sender
	Logger *logrus.Logger
}

func NewGateway(cfg *config.Config, queue Publisher, mail mailer.Sender, smsSender sms.Sender, logger *logrus.Logger) *Gateway {
	return &Gateway{Cfg: cfg, Queue: queue, Mail: mail, SMS: smsSender, Logger: logger}
}

func (g *Gateway) SendEmail(ctx context.Context, to, subject, body string) error {
	if !g.Cfg.MailSendEnabled {
		if g.Logger != nil {
			g.Logger.WithField("to", to).Warn("mail sending disabled, email dropped")
		}
		return nil
	}
	data := templates.NewNotificationData(g.Cfg, to, subject, body)

	if g.Cfg.MailQueueEnabled && g.Queue != nil {
		job := mailer.EmailJob{To: to, Template: templates.Notification, Data: data}
		if err := g.Queue.PublishJSON(ctx, job); err != nil {
			return fmt.Errorf("publish email job: %w", err)
		}
		return nil
	}

	if g.Mail == nil {
		return ErrNoEmailTransport
	}
	subj, text, html, err := templates.Render(templates.Notification, data)
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}
	if err := g.Mail.Send(ctx, to, subj, text, html); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func (g *Gateway) DeliverOutOfBand(ctx context.Context, phone, code string) error {
	if phone == "" {
		return ErrNoPhone
	}
	if g.SMS == nil {
		return errors.New("no sms sender configured")
	}
	body := fmt.Sprintf("Your %s OTP is %s", g.Cfg.AppName, code)
	return g.SMS.Send(ctx, phone, body)
}
