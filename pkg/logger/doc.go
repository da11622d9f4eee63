// Package logger provides a thin wrapper around Go's slog package with
// functional options for configuration and helper attribute constructors.
//
// New creates a *slog.Logger configured by Option functions that select the
// output format (text or json), the minimum level, the destination and a set
// of static attributes attached to every record. Levels can also be chosen
// from the verbosity names accepted on the command line ("Verbose", "Debug",
// "Information", "Warning", "Error", "Fatal") with ParseVerbosity.
//
// Helper constructors in attr.go keep attribute keys consistent across the
// codebase:
//
//	level, _ := logger.ParseVerbosity("Warning")
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(level),
//	    logger.WithAttr(logger.RunID(id)),
//	)
//	log.Warn("value clamped", logger.Field("Parallelism"), logger.Source(src))
//
// Discard returns a logger that drops everything, the default for library
// components that were not handed one.
package logger
