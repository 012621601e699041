package moovm

import (
	"unicode/utf8"

	"github.com/reusee/moo/moolang"
)

// Step executes exactly one semantic instruction, then moves the
// instruction pointer past any trailing no-ops so it always rests on
// the next semantic instruction or the halt sentinel. Once halted,
// Step changes nothing. A ReadInput with no buffered input sets the
// awaiting-input condition and leaves the pointer in place.
func (r *Runner) Step() error {
	if r.FaultMsg != "" {
		return r.Fault()
	}
	if r.IsHalted {
		return nil
	}

	code := r.Program.Code

	for {
		inst := code[r.IP]
		switch inst.Op.Kind() {

		case moolang.OpHalt:
			r.IsHalted = true
			r.logger.Debug("halted", "program", r.Program.Name)

		case moolang.OpInc:
			r.setCell(r.Cell() + 1)
			r.IP++

		case moolang.OpDec:
			r.setCell(r.Cell() - 1)
			r.IP++

		case moolang.OpMoveLeft:
			if r.OnMetaTape {
				r.MetaPointer--
			} else {
				r.DataPointer--
			}
			r.IP++

		case moolang.OpMoveRight:
			if r.OnMetaTape {
				r.MetaPointer++
			} else {
				r.DataPointer++
			}
			r.IP++

		case moolang.OpWrite:
			// the cell byte is reinterpreted as one character
			r.Out = utf8.AppendRune(r.Out, rune(r.Cell()))
			r.IP++

		case moolang.OpRead:
			if r.InputPos >= len(r.Input) {
				r.Waiting = true
				return nil
			}
			r.Waiting = false
			r.setCell(r.Input[r.InputPos])
			r.InputPos++
			r.IP++

		case moolang.OpLoopStart:
			if r.Cell() == 0 {
				depth := 1
				j := r.IP
				for depth > 0 {
					j++
					if j >= len(code) {
						return r.fail("loop has no matching ']'")
					}
					switch code[j].Op.Kind() {
					case moolang.OpLoopStart:
						depth++
					case moolang.OpLoopEnd:
						depth--
					}
				}
				r.IP = j + 1
			} else {
				r.Returns = append(r.Returns, r.IP)
				r.IP++
			}

		case moolang.OpLoopEnd:
			pos, ok := r.popReturn()
			if !ok {
				return r.fail("']' with empty return stack")
			}
			r.IP = pos

		case moolang.OpCall:
			id := inst.Op.Arg()
			if id >= len(r.Program.Subroutines) || r.Program.Subroutines[id] < 0 {
				return r.fail("call to unknown subroutine id %d", id)
			}
			r.Returns = append(r.Returns, r.IP)
			r.IP = r.Program.Subroutines[id]

		case moolang.OpSubStart:
			r.IP++

		case moolang.OpSubEnd:
			pos, ok := r.popReturn()
			if !ok {
				return r.fail("'}' with empty return stack")
			}
			r.IP = pos + 1

		case moolang.OpToggleTape:
			r.OnMetaTape = !r.OnMetaTape
			r.IP++

		case moolang.OpNop:
			r.IP++
			continue
		}

		break
	}

	for code[r.IP].Op.Kind() == moolang.OpNop {
		r.IP++
	}

	return nil
}
