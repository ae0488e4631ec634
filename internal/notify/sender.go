package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Sender delivers a text message to a phone number.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// TwilioWhatsApp sends through Twilio's WhatsApp channel.
type TwilioWhatsApp struct {
	client *twilio.RestClient
	from   string
	log    *zap.Logger
}

func NewTwilioWhatsApp(accountSID, authToken, from string, log *zap.Logger) *TwilioWhatsApp {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSID,
		Password:   authToken,
		AccountSid: accountSID,
	})

	return &TwilioWhatsApp{client: client, from: whatsappAddress(from), log: log}
}

func (s *TwilioWhatsApp) Send(_ context.Context, to, body string) error {
	phone, ok := NormalizePhone(to)
	if !ok {
		return fmt.Errorf("invalid phone %q", to)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(whatsappAddress(phone))
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send whatsapp: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		s.log.Debug("whatsapp sent", zap.String("to", phone), zap.String("sid", *resp.Sid))
	}
	return nil
}

// LogSender only logs; used when Twilio credentials are missing.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, to, body string) error {
	s.log.Info("whatsapp (not sent, twilio disabled)", zap.String("to", to), zap.String("body", body))
	return nil
}

// NormalizePhone returns an E.164 number. Numbers without a country code
// are assumed Brazilian.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 10 || len(digits) == 11:
		digits = "55" + digits
	case len(digits) < 10 || len(digits) > 15:
		return "", false
	}
	return "+" + digits, true
}

func whatsappAddress(phone string) string {
	if strings.HasPrefix(phone, "whatsapp:") {
		return phone
	}
	return "whatsapp:" + phone
}
