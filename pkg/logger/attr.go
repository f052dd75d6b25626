package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Operation records the arithmetic operation name under the key "op".
func Operation(name string) slog.Attr {
	return slog.String("op", name)
}

// Operands records the inputs of an operation as a group keyed by position.
// Values implementing fmt.Stringer are logged as text.
func Operands(values ...any) slog.Attr {
	if len(values) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, len(values))
	for i, v := range values {
		if s, ok := v.(fmt.Stringer); ok {
			as[i] = slog.String(strconv.Itoa(i), s.String())
			continue
		}
		as[i] = slog.Any(strconv.Itoa(i), v)
	}
	return slog.Attr{Key: "operands", Value: slog.GroupValue(as...)}
}

// Result records the outcome of an operation under the key "result".
// If v is nil, it returns an empty Attr.
func Result(v any) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any("result", v)
}

// Digits records a precision in fractional digits under the key "digits".
func Digits(n int) slog.Attr {
	return slog.Int("digits", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI command path under the key "command".
func Command(path string) slog.Attr {
	return slog.String("command", path)
}
