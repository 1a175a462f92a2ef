package logger

import "log/slog"

// Error returns the "error" attribute, or an empty Attr for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID returns the "request_id" attribute. Empty ids are dropped.
func RequestID(id string) slog.Attr {
	return nonEmpty("request_id", id)
}

// ClientID returns the "client_id" attribute holding the rate limiting key.
func ClientID(id string) slog.Attr {
	return nonEmpty("client_id", id)
}

// MessageID returns the "message_id" attribute assigned by the mail provider.
func MessageID(id string) slog.Attr {
	return nonEmpty("message_id", id)
}

// Provider returns the "provider" attribute.
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// Component returns the "component" attribute.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event returns the "event" attribute.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Empty attributes are ignored by slog handlers.
func nonEmpty(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}
