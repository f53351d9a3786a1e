// Package logger builds the *slog.Logger instances used across the module.
//
// New takes functional options for the output format (json or text), minimum
// level, destination and static attributes. Logs go to stderr by default so
// they never mix with results a command prints on stdout.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithService("validate"),
//	)
//	log.Debug("rule failed", logger.Alias("email"), logger.Rule("email"))
//
// The helpers in attr.go keep attribute keys consistent. Helpers taking an
// error or an optional value return an empty slog.Attr when there is nothing
// to record, which slog drops from the output.
package logger
