// Package logger builds the slog loggers used across the session kit and
// provides attribute helpers so every package names fields the same way.
//
// New creates a *slog.Logger from Option values. NewFromConfig does the same
// from an env-tagged Config: APP_ENV picks a preset (text and debug in
// development, JSON and info elsewhere) and LOG_LEVEL or LOG_FORMAT override
// it. Context extractors registered with WithContextExtractors add
// attributes from the context passed to the *Context logging methods.
//
//	log, err := logger.NewFromConfig(cfg)
//	if err != nil {
//	    return err
//	}
//	log.InfoContext(ctx, "session created",
//	    logger.Component("session"),
//	    logger.SessionID(id),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check.
package logger
