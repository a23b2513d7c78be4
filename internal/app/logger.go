package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/volunteer-backend/internal/config"
	"github.com/heartmarshall/volunteer-backend/pkg/ctxutil"
)

// Attribute keys whose values are replaced before output. Scan tokens are
// bearer credentials for attendance, so they are hidden as well.
var redactedKeys = map[string]bool{
	"authorization": true,
	"token":         true,
	"scan_token":    true,
	"jwt_secret":    true,
	"dsn":           true,
}

// NewLogger builds the service logger from cfg, writes to stderr and
// installs it as the slog default.
//
// "json" is the production format; "text" adds source locations.
// Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: redact,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(requestContextHandler{handler}).With(slog.String("app", "volunteer-backend"))
}

// requestContextHandler copies the request ID and the authenticated caller
// from the context onto every record logged with one, unless the record
// already names them.
type requestContextHandler struct {
	slog.Handler
}

func (h requestContextHandler) Handle(ctx context.Context, r slog.Record) error {
	var hasRequestID, hasCaller bool
	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			hasRequestID = true
		case "caller_id":
			hasCaller = true
		}
		return !(hasRequestID && hasCaller)
	})

	if id := ctxutil.RequestIDFromCtx(ctx); id != "" && !hasRequestID {
		r.AddAttrs(slog.String("request_id", id))
	}
	if id, role, ok := ctxutil.CallerFromCtx(ctx); ok && !hasCaller {
		r.AddAttrs(slog.String("caller_id", id.String()), slog.String("caller_role", role))
	}
	return h.Handler.Handle(ctx, r)
}

func (h requestContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return requestContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h requestContextHandler) WithGroup(name string) slog.Handler {
	return requestContextHandler{h.Handler.WithGroup(name)}
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if redactedKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, "[REDACTED]")
	}
	return a
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
