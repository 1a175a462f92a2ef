package email

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
}

// NewPostmarkSender creates a Postmark-backed email sender.
func NewPostmarkSender(serverToken, accountToken string) (Sender, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrInvalidConfig)
	}
	if accountToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_ACCOUNT_TOKEN is required", ErrInvalidConfig)
	}

	return &postmarkSender{
		client: postmark.NewClient(serverToken, accountToken),
	}, nil
}

// Send implements Sender using Postmark's transactional API.
// Link tracking is limited to the HTML part.
func (s *postmarkSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	pm := postmark.Email{
		From:       msg.From,
		To:         msg.To,
		ReplyTo:    msg.ReplyTo,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTML,
		TextBody:   msg.Text,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	}
	for _, a := range msg.Attachments {
		pm.Attachments = append(pm.Attachments, postmark.Attachment{
			Name:        a.Filename,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			ContentType: a.ContentType,
		})
	}

	resp, err := s.client.SendEmail(ctx, pm)
	if err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return "", errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return resp.MessageID, nil
}
