package moovm

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/reusee/moo/moolang"
)

// ErrMalformedProgram marks run-time structural faults: popping an
// empty return stack, or a call naming a subroutine id with no table
// entry. Once Step returns such a fault it latches and the runner
// stops; later Steps return the same error without touching state.
var ErrMalformedProgram = errors.New("malformed program")

// Runner owns the whole execution state of one compiled Program.
// Independent runners share nothing and may run concurrently. State
// fields are exported for gob snapshots; mutate them only through
// Step, Reset and FeedInput.
type Runner struct {
	Program *moolang.Program

	IP          int
	DataPointer int
	MetaPointer int
	OnMetaTape  bool

	// Tapes are sparse and doubly infinite: absent positions read as
	// zero and negative positions are as good as any other.
	DataTape map[int]byte
	MetaTape map[int]byte

	// Returns holds loop re-entry points and subroutine return
	// addresses on one shared stack, most recent at the end.
	Returns []int

	IsHalted bool

	// Waiting is set when a ReadInput found no buffered input; the
	// runner rests on that instruction until input is fed.
	Waiting bool

	Input    []byte
	InputPos int
	Out      []byte

	// FaultMsg latches the first structural fault; empty means none.
	FaultMsg string

	logger *slog.Logger
}

func New(prog *moolang.Program) *Runner {
	return &Runner{
		Program:  prog,
		IP:       prog.Entry,
		DataTape: make(map[int]byte),
		MetaTape: make(map[int]byte),
		logger:   slog.New(slog.DiscardHandler),
	}
}

func (r *Runner) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

// Reset discards all execution state and reuses the compiled program.
// Fed input is rewound, not discarded, so a replay after Reset is
// deterministic for the same input.
func (r *Runner) Reset() {
	r.IP = r.Program.Entry
	r.DataPointer = 0
	r.MetaPointer = 0
	r.OnMetaTape = false
	r.DataTape = make(map[int]byte)
	r.MetaTape = make(map[int]byte)
	r.Returns = nil
	r.IsHalted = false
	r.Waiting = false
	r.InputPos = 0
	r.Out = nil
	r.FaultMsg = ""
	r.logger.Debug("runner reset", "program", r.Program.Name)
}

// FeedInput appends bytes to the input buffer and clears the
// awaiting-input condition.
func (r *Runner) FeedInput(data []byte) {
	r.Input = append(r.Input, data...)
	if r.InputPos < len(r.Input) {
		r.Waiting = false
	}
}

func (r *Runner) tape() map[int]byte {
	if r.OnMetaTape {
		return r.MetaTape
	}
	return r.DataTape
}

func (r *Runner) activePos() int {
	if r.OnMetaTape {
		return r.MetaPointer
	}
	return r.DataPointer
}

// Cell returns the byte under the active pointer; absent cells are 0.
func (r *Runner) Cell() byte {
	return r.tape()[r.activePos()]
}

func (r *Runner) setCell(v byte) {
	r.tape()[r.activePos()] = v
}

func (r *Runner) popReturn() (int, bool) {
	n := len(r.Returns)
	if n == 0 {
		return 0, false
	}
	pos := r.Returns[n-1]
	r.Returns = r.Returns[:n-1]
	return pos, true
}

func (r *Runner) fail(format string, args ...any) error {
	r.FaultMsg = fmt.Sprintf("%s at instruction %d", fmt.Sprintf(format, args...), r.IP)
	r.logger.Error("structural fault",
		"program", r.Program.Name,
		"ip", r.IP,
		"fault", r.FaultMsg,
	)
	return r.Fault()
}

// Fault returns the latched structural fault, or nil. The error
// matches ErrMalformedProgram under errors.Is.
func (r *Runner) Fault() error {
	if r.FaultMsg == "" {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMalformedProgram, r.FaultMsg)
}
