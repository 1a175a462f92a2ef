package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/firstengineering/website/pkg/email"
)

func validMessage() email.Message {
	return email.Message{
		From:    "Contact Form <noreply@example.com>",
		To:      "owner@example.com",
		ReplyTo: "jane@x.com",
		Subject: "New Contact Form Submission from Jane",
		HTML:    "<p>Hello</p>",
		Text:    "Hello",
	}
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*email.Message)
		errMsg string
	}{
		{"valid", func(*email.Message) {}, ""},
		{"text only", func(m *email.Message) { m.HTML = "" }, ""},
		{"no reply-to", func(m *email.Message) { m.ReplyTo = "" }, ""},
		{"empty from", func(m *email.Message) { m.From = " " }, "From is required"},
		{"invalid from", func(m *email.Message) { m.From = "Contact Form <nope>" }, "From must be a valid address"},
		{"empty to", func(m *email.Message) { m.To = "" }, "To is required"},
		{"invalid to", func(m *email.Message) { m.To = "owner" }, "To must be a valid address"},
		{"invalid reply-to", func(m *email.Message) { m.ReplyTo = "jane" }, "ReplyTo must be a valid address"},
		{"empty subject", func(m *email.Message) { m.Subject = "  " }, "Subject is required"},
		{"no body", func(m *email.Message) { m.HTML, m.Text = "", " " }, "HTML or Text body is required"},
		{"unnamed attachment", func(m *email.Message) {
			m.Attachments = []email.Attachment{{Content: []byte("x")}}
		}, "attachment filename is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := validMessage()
			tt.modify(&msg)

			err := msg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
