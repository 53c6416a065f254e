package slogx

import (
	"fmt"
	"log/slog"

	"github.com/casualjim/dove/pkg/callsite"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
//
// Parameters:
//   - err: The error to be converted into a slog.Attr.
//
// Returns:
//   - slog.Attr: An attribute with the key "error" and the error's message as the value.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Stringer creates a slog.Attr with the provided key and the string representation
// of the given fmt.Stringer value.
//
// Parameters:
//   - key: A string representing the key for the attribute.
//   - value: An object that implements the fmt.Stringer interface.
//
// Returns:
//   - slog.Attr: An attribute containing the key and the string representation of the value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// Value creates a slog.Attr holding the %v rendering of value. Message types
// are arbitrary comparable values, so they are logged through this helper
// rather than slog.Any to keep the output a flat string.
func Value(key string, value any) slog.Attr {
	return slog.String(key, fmt.Sprintf("%v", value))
}

// Site creates a slog.Attr grouping the file and line of a source location.
func Site(key string, site callsite.Site) slog.Attr {
	return slog.Group(key,
		slog.String("file", site.File),
		slog.Int("line", site.Line),
	)
}

const (
	// KeyLoggerName is the key for the logger name attribute.
	KeyLoggerName = "logger"
)

// LoggerName creates a slog.Attr with the provided logger name.
// The attribute key is defined by KeyLoggerName.
//
// Parameters:
//   - name: The name of the logger.
//
// Returns:
//
//	A slog.Attr containing the logger name.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}
