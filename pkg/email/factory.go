package email

import (
	"fmt"
	"net/http"
	"time"
)

// NewSender builds the configured provider wrapped in Throttle.
func NewSender(cfg Config) (Sender, error) {
	var (
		sender Sender
		err    error
	)

	switch cfg.Provider {
	case ProviderResend, "":
		sender, err = NewResendSender(cfg.ResendAPIKey, &http.Client{Timeout: 30 * time.Second})
	case ProviderPostmark:
		sender, err = NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	case ProviderDev:
		if cfg.DevDir == "" {
			return nil, fmt.Errorf("%w: MAIL_DEV_DIR is required", ErrInvalidConfig)
		}
		sender = NewDevSender(cfg.DevDir)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return Throttle(sender, cfg.SendRPS, cfg.SendBurst), nil
}

// MustNewSender is NewSender that panics on invalid config.
func MustNewSender(cfg Config) Sender {
	s, err := NewSender(cfg)
	if err != nil {
		panic(err)
	}
	return s
}
