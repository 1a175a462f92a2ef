package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

type resendSender struct {
	client *resend.Client
}

// ResendOption configures the Resend sender.
type ResendOption func(*resend.Client) error

// WithResendBaseURL points the client at a different API endpoint.
func WithResendBaseURL(raw string) ResendOption {
	return func(c *resend.Client) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: resend base url: %w", ErrInvalidConfig, err)
		}
		c.BaseURL = u
		return nil
	}
}

// NewResendSender creates a Resend-backed email sender.
func NewResendSender(apiKey string, httpClient *http.Client, opts ...ResendOption) (Sender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: RESEND_API_KEY is required", ErrInvalidConfig)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := resend.NewCustomClient(httpClient, apiKey)
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return &resendSender{client: client}, nil
}

// Send implements Sender using the Resend emails API.
func (s *resendSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	if msg.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: msg.Tag}}
	}
	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     a.Content,
		})
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}

	return resp.Id, nil
}
