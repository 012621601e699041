package moovm

import (
	"github.com/rivo/uniseg"

	"github.com/reusee/moo/moolang"
)

// Read-only queries over the execution state, for visualization and
// testing. None of these mutate the runner.

// InstructionSpan returns the source span of the instruction the
// runner currently rests on, for highlighting.
func (r *Runner) InstructionSpan() moolang.Span {
	return r.Program.Code[r.IP].Span
}

func (r *Runner) Halted() bool {
	return r.IsHalted
}

func (r *Runner) AwaitingInput() bool {
	return r.Waiting
}

// ReturnStack returns return-stack entries most recent first. A max of
// zero or less returns the whole stack.
func (r *Runner) ReturnStack(max int) []int {
	n := len(r.Returns)
	if max <= 0 || max > n {
		max = n
	}
	ret := make([]int, 0, max)
	for i := n - 1; i >= n-max; i-- {
		ret = append(ret, r.Returns[i])
	}
	return ret
}

func (r *Runner) Output() string {
	return string(r.Out)
}

// OutputLen measures the output in user-perceived characters, not
// bytes or runes.
func (r *Runner) OutputLen() int {
	return uniseg.GraphemeClusterCount(string(r.Out))
}

// Pointer returns the active tape's pointer position.
func (r *Runner) Pointer() int {
	return r.activePos()
}

// TapeWindow returns a size-wide slice of the active tape, aligned to
// the block containing the active pointer. Absent cells read as zero.
func (r *Runner) TapeWindow(size int) []byte {
	if size <= 0 {
		return nil
	}
	start := floorDiv(r.activePos(), size) * size
	tape := r.tape()
	win := make([]byte, size)
	for i := range win {
		win[i] = tape[start+i]
	}
	return win
}

// floored division, so window alignment holds for negative pointers
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
