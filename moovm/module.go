package moovm

import (
	"github.com/reusee/dscope"

	"github.com/reusee/moo/logs"
	"github.com/reusee/moo/moolang"
)

type Module struct {
	dscope.Module
}

// NewRunner builds runners bound to the scope's logger.
type NewRunner func(prog *moolang.Program) *Runner

func (Module) NewRunner(
	logger logs.Logger,
) NewRunner {
	return func(prog *moolang.Program) *Runner {
		r := New(prog)
		r.SetLogger(logger)
		return r
	}
}
