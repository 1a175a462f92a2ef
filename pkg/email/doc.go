// Package email provides a provider-agnostic interface for sending
// transactional emails, with Resend, Postmark and on-disk backends.
//
// # Architecture
//
// Everything is built around the Sender interface. A Sender takes a Message
// and returns the provider's message id:
//   - NewResendSender delivers through the Resend API (default provider)
//   - NewPostmarkSender delivers through Postmark with open and link tracking
//   - NewDevSender writes .html, .txt and .json files for local development
//
// Throttle wraps any Sender with a token bucket from golang.org/x/time/rate so
// a burst of form submissions cannot exceed the provider's API quota.
// NewSender builds the configured provider already throttled.
//
// All providers validate the message before sending and report delivery
// failures wrapped in ErrFailedToSendEmail.
//
// # Addresses
//
// FormatAddress normalises a configured sender into "Name <addr>" form, and
// ParseAddress re-validates the result:
//
//	from := email.FormatAddress(os.Getenv("RESEND_FROM_EMAIL"), "Contact Form")
//	if _, _, err := email.ParseAddress(from); err != nil {
//		// misconfigured sender
//	}
//
// # Usage
//
//	sender, err := email.NewSender(cfg)
//	if err != nil {
//		return err
//	}
//
//	html, err := templates.Render(ctx, templates.ContactNotification(data))
//	if err != nil {
//		return err
//	}
//
//	id, err := sender.Send(ctx, email.Message{
//		From:    from,
//		To:      "owner@example.com",
//		ReplyTo: "visitor@example.com",
//		Subject: "New Contact Form Submission from Jane",
//		HTML:    html,
//		Text:    templates.ContactText(data),
//	})
//
// # Error Handling
//
//   - ErrInvalidConfig: provider configuration is incomplete
//   - ErrInvalidParams: message validation failed
//   - ErrInvalidAddress: an address could not be parsed
//   - ErrFailedToSendEmail: delivery failed
package email
