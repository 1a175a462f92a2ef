// Package logger builds the website's *slog.Logger.
//
// New applies functional options on top of JSON-at-info defaults.
// WithEnvironment switches to readable text at debug level in development
// and tags every record with the service and environment. WithFile tees
// records into a size-rotated file managed by lumberjack. Context extractors,
// such as requestid.LoggerExtractor and clientip.LoggerExtractor, add
// request-scoped attributes when a record is written.
//
// Config maps APP_ENV, LOG_LEVEL and LOG_FILE onto those options:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log, err := logger.NewFromConfig(cfg, "website",
//		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
//	)
//
// Attribute helpers (Error, RequestID, ClientID, Provider, MessageID,
// Component, Event) keep key names consistent across packages.
package logger
