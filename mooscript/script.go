package mooscript

import (
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/reusee/moo/moovm"
)

// Bind exposes a runner to starlark, for scripted drivers and
// regression harnesses. All bindings go through the runner's public
// operations; scripts cannot reach into execution state directly.
func Bind(r *moovm.Runner) starlark.StringDict {
	return starlark.StringDict{

		"step": starlarkutil.MakeFunc("step", func() error {
			return r.Step()
		}),

		// run steps up to max times, stopping at halt, fault or
		// awaiting input; returns the number of completed steps
		"run": starlarkutil.MakeFunc("run", func(max int) int {
			n := 0
			for n < max && !r.Halted() {
				if r.Step() != nil {
					break
				}
				if r.AwaitingInput() {
					break
				}
				n++
			}
			return n
		}),

		"fault": starlarkutil.MakeFunc("fault", func() string {
			if err := r.Fault(); err != nil {
				return err.Error()
			}
			return ""
		}),

		"reset": starlarkutil.MakeFunc("reset", func() {
			r.Reset()
		}),

		"feed": starlarkutil.MakeFunc("feed", func(s string) {
			r.FeedInput([]byte(s))
		}),

		"halted": starlarkutil.MakeFunc("halted", func() bool {
			return r.Halted()
		}),

		"awaiting": starlarkutil.MakeFunc("awaiting", func() bool {
			return r.AwaitingInput()
		}),

		"output": starlarkutil.MakeFunc("output", func() string {
			return r.Output()
		}),

		"output_len": starlarkutil.MakeFunc("output_len", func() int {
			return r.OutputLen()
		}),

		"pointer": starlarkutil.MakeFunc("pointer", func() int {
			return r.Pointer()
		}),

		"cell": starlarkutil.MakeFunc("cell", func() int {
			return int(r.Cell())
		}),

		"tape": starlarkutil.MakeFunc("tape", func(size int) []int {
			win := r.TapeWindow(size)
			cells := make([]int, len(win))
			for i, b := range win {
				cells[i] = int(b)
			}
			return cells
		}),

		"span": starlarkutil.MakeFunc("span", func() []int {
			s := r.InstructionSpan()
			return []int{s.Offset, s.Len}
		}),

		"stack": starlarkutil.MakeFunc("stack", func(max int) []int {
			return r.ReturnStack(max)
		}),
	}
}

// RunScript executes a starlark driver script against a runner.
func RunScript(name string, script string, r *moovm.Runner) error {
	thread := &starlark.Thread{
		Name: name,
	}
	_, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		},
		thread,
		name,
		script,
		Bind(r),
	)
	return err
}
