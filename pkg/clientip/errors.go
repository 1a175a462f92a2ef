package clientip

import "errors"

// ErrUnknownFallback is returned by ParseFallback for unsupported values.
var ErrUnknownFallback = errors.New("unknown client identifier fallback")
