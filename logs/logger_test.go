package logs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestProgramHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithProgram(context.Background(), "double.moo")
		logger.InfoContext(ctx, "step")
		if !strings.Contains(buf.String(), "moo.program=double.moo") {
			t.Fatalf("got %q", buf.String())
		}
	})
}
