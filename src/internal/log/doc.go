// Package log provides simple leveled logging for logsrv-assist.
//
// This package implements a lightweight logging system with support for
// different log levels: DEBUG, INFO, WARN, and ERROR. Level prefixes are
// colored with ANSI escape codes only when the target stream is a terminal,
// so piped output stays clean.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures and exceptions
//
// # Example Usage
//
//	log.Infof("Loaded %d properties", catalog.Len())
//	log.Warnf("Template %s is not referenced by any ruleset", name)
//
// Commands that print generated configuration to stdout redirect all log
// output to stderr:
//
//	log.SetForceStdErr(true)
package log
