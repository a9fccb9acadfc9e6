// Package whatsapp is the outbound messaging transport: a Twilio-style REST
// client plus TwiML replies for the inbound webhook.
package whatsapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.twilio.com/2010-04-01"

// SendReceipt is the opaque identifier and status returned for one send.
type SendReceipt struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// MessageStatus is the delivery state of a previously sent message.
type MessageStatus struct {
	SID          string     `json:"sid"`
	Status       string     `json:"status"`
	DateSent     *time.Time `json:"date_sent"`
	ErrorCode    *int       `json:"error_code"`
	ErrorMessage string     `json:"error_message"`
}

// Transport submits messages to the messaging provider. `to` is a bare phone
// number; implementations handle channel addressing.
type Transport interface {
	SendText(ctx context.Context, to, body string) (*SendReceipt, error)
	SendMedia(ctx context.Context, to, mediaURL string) (*SendReceipt, error)
	Status(ctx context.Context, sid string) (*MessageStatus, error)
}

type TwilioTransport struct {
	client     *resty.Client
	accountSID string
	authToken  string
	from       string
	baseURL    string
}

func NewTwilioTransport(accountSID, authToken, whatsAppNumber, baseURL string) *TwilioTransport {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &TwilioTransport{
		client:     resty.New(),
		accountSID: accountSID,
		authToken:  authToken,
		from:       whatsAppNumber,
		baseURL:    baseURL,
	}
}

type twilioMessage struct {
	SID          string  `json:"sid"`
	Status       string  `json:"status"`
	DateSent     *string `json:"date_sent"`
	ErrorCode    *int    `json:"error_code"`
	ErrorMessage string  `json:"error_message"`
}

func (t *TwilioTransport) messagesURL() string {
	return fmt.Sprintf("%s/Accounts/%s/Messages.json", t.baseURL, t.accountSID)
}

func (t *TwilioTransport) send(ctx context.Context, form map[string]string) (*SendReceipt, error) {
	var payload twilioMessage

	resp, err := t.client.R().
		SetContext(ctx).
		SetBasicAuth(t.accountSID, t.authToken).
		SetFormData(form).
		SetResult(&payload).
		Post(t.messagesURL())
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("messaging provider returned status %d", resp.StatusCode())
	}

	return &SendReceipt{SID: payload.SID, Status: payload.Status}, nil
}

func (t *TwilioTransport) SendText(ctx context.Context, to, body string) (*SendReceipt, error) {
	return t.send(ctx, map[string]string{
		"Body": body,
		"From": whatsAppAddress(t.from),
		"To":   whatsAppAddress(to),
	})
}

func (t *TwilioTransport) SendMedia(ctx context.Context, to, mediaURL string) (*SendReceipt, error) {
	return t.send(ctx, map[string]string{
		"MediaUrl": mediaURL,
		"From":     whatsAppAddress(t.from),
		"To":       whatsAppAddress(to),
	})
}

func (t *TwilioTransport) Status(ctx context.Context, sid string) (*MessageStatus, error) {
	var payload twilioMessage

	resp, err := t.client.R().
		SetContext(ctx).
		SetBasicAuth(t.accountSID, t.authToken).
		SetResult(&payload).
		Get(fmt.Sprintf("%s/Accounts/%s/Messages/%s.json", t.baseURL, t.accountSID, sid))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("messaging provider returned status %d", resp.StatusCode())
	}

	status := &MessageStatus{
		SID:          payload.SID,
		Status:       payload.Status,
		ErrorCode:    payload.ErrorCode,
		ErrorMessage: payload.ErrorMessage,
	}
	if payload.DateSent != nil {
		if parsed, err := time.Parse(time.RFC1123Z, *payload.DateSent); err == nil {
			status.DateSent = &parsed
		}
	}

	return status, nil
}

func whatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
