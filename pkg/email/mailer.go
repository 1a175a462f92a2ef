package email

import (
	"context"
	"fmt"
	"strings"
)

// Sender delivers a composed message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg Message) (string, error)

func (f SenderFunc) Send(ctx context.Context, msg Message) (string, error) {
	return f(ctx, msg)
}

// Message is a single outbound email.
type Message struct {
	From        string       `json:"from"`               // "Name <addr>" or bare address
	To          string       `json:"to"`                 // Recipient address
	ReplyTo     string       `json:"reply_to,omitempty"` // Optional
	Subject     string       `json:"subject"`
	HTML        string       `json:"-"`
	Text        string       `json:"-"`
	Tag         string       `json:"tag,omitempty"` // Optional, for provider analytics
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a file sent along with a message.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	Content     []byte `json:"-"`
}

// Validate checks that the message can be handed to a provider.
func (m Message) Validate() error {
	if strings.TrimSpace(m.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidParams)
	}
	if _, _, err := ParseAddress(m.From); err != nil {
		return fmt.Errorf("%w: From must be a valid address: %w", ErrInvalidParams, err)
	}
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if _, _, err := ParseAddress(m.To); err != nil {
		return fmt.Errorf("%w: To must be a valid address: %w", ErrInvalidParams, err)
	}
	if m.ReplyTo != "" {
		if _, _, err := ParseAddress(m.ReplyTo); err != nil {
			return fmt.Errorf("%w: ReplyTo must be a valid address: %w", ErrInvalidParams, err)
		}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(m.HTML) == "" && strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("%w: HTML or Text body is required", ErrInvalidParams)
	}
	for _, a := range m.Attachments {
		if a.Filename == "" {
			return fmt.Errorf("%w: attachment filename is required", ErrInvalidParams)
		}
	}
	return nil
}
