package httpserver

import "errors"

var (
	ErrStart          = errors.New("http server failed to start")
	ErrShutdown       = errors.New("http server did not shut down cleanly")
	ErrAlreadyRunning = errors.New("http server already running")
)
