package moolang

import "fmt"

// Compile scans src left to right into a Program. Compilation is
// atomic: on error no partial Program is returned.
func Compile(name, src string) (*Program, error) {
	p := &Program{
		Name:   name,
		Source: src,
	}

	fail := func(offset int, format string, args ...any) error {
		return &SyntaxError{
			Name:   name,
			Offset: offset,
			Msg:    fmt.Sprintf(format, args...),
			Source: src,
		}
	}

	ids := make(map[string]int)
	intern := func(ident string) int {
		id, ok := ids[ident]
		if !ok {
			id = len(ids)
			ids[ident] = id
			p.SubroutineNames = append(p.SubroutineNames, ident)
			p.Subroutines = append(p.Subroutines, -1)
		}
		return id
	}

	// first call site per id, for undefined-subroutine reporting
	firstCall := make(map[int]int)

	s := &scanner{src: src}
	currentDef := -1

	for !s.eof() {
		start := s.pos
		c := s.next()

		emit := func(op OpCode) {
			p.Code = append(p.Code, Instruction{
				Op: op,
				Span: Span{
					Offset: start,
					Len:    s.pos - start,
				},
			})
		}

		switch c {

		case '+':
			emit(OpInc)
		case '-':
			emit(OpDec)
		case '>':
			emit(OpMoveRight)
		case '<':
			emit(OpMoveLeft)
		case '.':
			emit(OpWrite)
		case ',':
			emit(OpRead)
		case '[':
			emit(OpLoopStart)
		case ']':
			emit(OpLoopEnd)
		case '^':
			emit(OpToggleTape)

		case '(':
			if currentDef >= 0 {
				return nil, fail(start, "subroutine definition inside another definition")
			}
			ident, err := s.fetchIdentifier()
			if err != nil {
				return nil, fail(start, "%s", err.Error())
			}
			for _, guard := range [...]rune{')', ':', '{'} {
				if s.eof() || s.next() != guard {
					return nil, fail(start, "expected %q after subroutine name", guard)
				}
			}
			id := intern(ident)
			p.Subroutines[id] = len(p.Code)
			emit(OpSubStart.With(id))
			currentDef = id

		case '}':
			if currentDef < 0 {
				return nil, fail(start, "closing brace outside subroutine definition")
			}
			emit(OpSubEnd.With(currentDef))
			currentDef = -1

		case '~':
			ident, err := s.fetchIdentifier()
			if err != nil {
				return nil, fail(start, "%s", err.Error())
			}
			if s.eof() || s.next() != ';' {
				return nil, fail(start, "expected ';' after subroutine call")
			}
			id := intern(ident)
			if _, ok := firstCall[id]; !ok {
				firstCall[id] = start
			}
			emit(OpCall.With(id))

		default:
			emit(OpNop.With(int(c)))
		}
	}

	if currentDef >= 0 {
		return nil, fail(len(src), "unterminated subroutine definition %q",
			p.SubroutineNames[currentDef])
	}

	p.Code = append(p.Code, Instruction{
		Op: OpHalt,
		Span: Span{
			Offset: len(src),
			Len:    1,
		},
	})

	// Calls may precede their definitions, but every called name must
	// be defined somewhere.
	for id, idx := range p.Subroutines {
		if idx < 0 {
			return nil, fail(firstCall[id], "subroutine %q is never defined",
				p.SubroutineNames[id])
		}
	}

	p.Entry = entryPoint(p.Code)
	return p, nil
}
