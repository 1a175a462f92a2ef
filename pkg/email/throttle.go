package email

import (
	"context"
	"errors"

	"golang.org/x/time/rate"
)

type throttledSender struct {
	next    Sender
	limiter *rate.Limiter
}

// Throttle bounds outbound calls to next at rps per second with the given
// burst. Callers block until a slot frees or ctx is done.
// A non-positive rps returns next unchanged.
func Throttle(next Sender, rps float64, burst int) Sender {
	if rps <= 0 {
		return next
	}
	return &throttledSender{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), max(1, burst)),
	}
}

func (t *throttledSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}
	return t.next.Send(ctx, msg)
}
