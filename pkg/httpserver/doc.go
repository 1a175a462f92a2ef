// Package httpserver runs an http.Handler with the timeouts from Config and
// graceful shutdown.
//
// Run blocks until its context is cancelled, then stops accepting
// connections and gives in-flight requests Config.ShutdownTimeout to
// finish. Request contexts are detached from the Run context, so a handler
// that is already sending an email is not cut off by SIGTERM. Signal
// handling is left to the caller:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes. Readiness checks
// run sequentially with DefaultCheckTimeout each.
//
// Listen failures wrap ErrStart and drain timeouts wrap ErrShutdown.
package httpserver
