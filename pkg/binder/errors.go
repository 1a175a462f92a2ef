package binder

import "errors"

var (
	ErrMissingContentType   = errors.New("binder: missing content type")
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrFailedToParseJSON    = errors.New("binder: malformed JSON body")
	ErrInvalidForm          = errors.New("binder: malformed form body")
)
