// Package sms delivers short text messages to phone numbers.
package sms

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// TwilioSender sends SMS through the Twilio Messages API.
type TwilioSender struct {
	create func(*twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
	from   string
	logger *logrus.Logger
}

func NewTwilioSender(accountSID, authToken, from string, logger *logrus.Logger) (*TwilioSender, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("missing Twilio credentials")
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{create: client.Api.CreateMessage, from: from, logger: logger}, nil
}

type createResult struct {
	msg *twilioApi.ApiV2010Message
	err error
}

// Send returns when the API answers or ctx ends, whichever comes first. The Twilio
// client takes no context, so a call abandoned on ctx finishes in the background.
func (t *TwilioSender) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(to)
	params.SetBody(body)

	done := make(chan createResult, 1)
	go func() {
		msg, err := t.create(params)
		done <- createResult{msg, err}
	}()

	select {
	case <-ctx.Done():
		if t.logger != nil {
			t.logger.WithField("phone", to).Warn("sms send abandoned")
		}
		return ctx.Err()
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("twilio create message: %w", res.err)
		}
		if t.logger != nil && res.msg != nil && res.msg.Sid != nil {
			t.logger.WithField("sid", *res.msg.Sid).Debug("sms sent")
		}
		return nil
	}
}

// LogSender writes messages to the log instead of sending them.
// Used when no SMS provider is configured.
type LogSender struct {
	Logger *logrus.Logger
}

func (l LogSender) Send(_ context.Context, to, body string) error {
	if l.Logger == nil {
		return nil
	}
	l.Logger.WithField("phone", to).Info(body)
	return nil
}
