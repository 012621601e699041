package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"

	"github.com/reusee/moo/cmds"
	"github.com/reusee/moo/configs"
	"github.com/reusee/moo/logs"
	"github.com/reusee/moo/modes"
	"github.com/reusee/moo/moolang"
	"github.com/reusee/moo/mooscript"
	"github.com/reusee/moo/moovm"
	"github.com/reusee/moo/vars"
)

var (
	file   = cmds.Var[string]("-file")
	input  = cmds.Var[string]("-input")
	steps  = cmds.Var[int]("-steps")
	script = cmds.Var[string]("-script")
	window = cmds.Var[int]("-window")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <program.moo> is required")
		os.Exit(1)
	}

	src, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	prog, err := moolang.Compile(*file, string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scope := dscope.New(
		new(logs.Module),
		new(configs.Module),
		new(moovm.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		loader configs.Loader,
		newRunner moovm.NewRunner,
	) {
		ctx := logs.WithProgram(context.Background(), prog.Name)
		runner := newRunner(prog)
		if *input != "" {
			runner.FeedInput([]byte(*input))
		}

		if *script != "" {
			content, err := os.ReadFile(*script)
			if err != nil {
				logger.ErrorContext(ctx, "read script", "error", err)
				os.Exit(1)
			}
			if err := mooscript.RunScript(*script, string(content), runner); err != nil {
				logger.ErrorContext(ctx, "script failed", "error", err)
				os.Exit(1)
			}

		} else {
			maxSteps := vars.FirstNonZero(
				*steps,
				configs.First[int](loader, "moo.maxSteps"),
			)
			n := 0
			for !runner.Halted() {
				if maxSteps > 0 && n >= maxSteps {
					logger.InfoContext(ctx, "step limit reached", "steps", n)
					break
				}
				if err := runner.Step(); err != nil {
					logger.ErrorContext(ctx, "execution fault", "error", err)
					os.Exit(1)
				}
				if runner.AwaitingInput() {
					logger.InfoContext(ctx, "awaiting input",
						"offset", runner.InstructionSpan().Offset,
					)
					break
				}
				n++
			}
		}

		fmt.Print(runner.Output())

		if w := vars.FirstNonZero(
			*window,
			configs.First[int](loader, "moo.window"),
		); w > 0 {
			logger.InfoContext(ctx, "tape window",
				"pointer", runner.Pointer(),
				"cells", runner.TapeWindow(w),
			)
		}
	})
}
