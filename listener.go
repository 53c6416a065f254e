package dove

import (
	"log/slog"

	"github.com/casualjim/dove/pkg/slogx"
)

// Claim adapts a function that always handles its messages into a Listener
// that claims every message it receives.
func Claim[K comparable, D any](fn func(typ K, data D)) Listener[K, D] {
	return func(_ Handle, typ K, data D) bool {
		fn(typ, data)
		return true
	}
}

// LoggingListener returns a Listener that logs every message at info level
// and claims it. A nil logger uses slog.Default() and a nil formatter uses
// PrettyPayload.
func LoggingListener[K comparable, D any](logger *slog.Logger, formatter PayloadFormatter) Listener[K, D] {
	if formatter == nil {
		formatter = PrettyPayload
	}
	return func(who Handle, typ K, data D) bool {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.Info("message",
			slogx.Value("type", typ),
			slogx.Stringer("handle", who),
			slog.String("data", formatter(data)),
		)
		return true
	}
}

// Chain returns a Listener that invokes listeners in order and claims the
// message only when every one of them does. All listeners run even after one
// declines.
func Chain[K comparable, D any](listeners ...Listener[K, D]) Listener[K, D] {
	return func(who Handle, typ K, data D) bool {
		claimed := true
		for _, l := range listeners {
			if !l(who, typ, data) {
				claimed = false
			}
		}
		return claimed
	}
}
