package contact

import (
	"strings"

	"github.com/firstengineering/website/pkg/email"
)

// resolveAddresses formats the configured sender with fromName and checks
// both sender and recipient. Any failure is a KindConfig error.
func (s *Service) resolveAddresses(fromName string) (from, to string, err error) {
	raw := strings.TrimSpace(s.cfg.FromEmail)
	if raw == "" {
		raw = DefaultFromEmail
	}

	from = email.FormatAddress(raw, fromName)
	if _, _, err := email.ParseAddress(from); err != nil {
		return "", "", misconfigured(
			`Server configuration error: RESEND_FROM_EMAIL must be in format "email@example.com" or "Name <email@example.com>"`,
			err,
		)
	}

	to = strings.TrimSpace(s.cfg.ToEmail)
	if to == "" {
		return "", "", misconfigured("Server configuration error: RESEND_TO_EMAIL is not set", email.ErrInvalidAddress)
	}
	if _, _, err := email.ParseAddress(to); err != nil {
		return "", "", misconfigured("Server configuration error: RESEND_TO_EMAIL must contain a valid email address", err)
	}

	return from, to, nil
}
