package logs

import (
	"context"
	"log/slog"
)

type programKeyType struct{}

// ProgramKey carries the name of the program a driver loop is
// executing, so every log line under that loop identifies it.
var ProgramKey programKeyType

func WithProgram(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ProgramKey, name)
}

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(ProgramKey); v != nil {
		record.Add("moo.program", v.(string))
	}
	return h.Handler.Handle(ctx, record)
}
