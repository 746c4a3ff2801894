// Package logger is a standardized event logging framework for interpreter
// sessions. Events are written as newline delimited JSON so they can be
// replayed into reports later.
package logger
