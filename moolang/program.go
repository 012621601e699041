package moolang

// Span locates an instruction in the source text as a byte offset and
// byte length. Slicing the source with a span yields the text the
// instruction was compiled from.
type Span struct {
	Offset int
	Len    int
}

type Instruction struct {
	Op   OpCode
	Span Span
}

// Program is the compiled, immutable form of a source text: the
// instruction sequence terminated by a synthetic Halt, plus the
// subroutine table. Subroutine ids are dense, assigned in first-seen
// order across definitions and calls.
type Program struct {
	Name   string
	Source string
	Code   []Instruction

	// Subroutines maps id to the index of the OpSubStart instruction.
	Subroutines     []int
	SubroutineNames []string

	// Entry is the index of the first live top-level instruction.
	Entry int
}

// Text returns the source text a span covers. The halt sentinel's span
// sits past the end of input and yields the empty string.
func (p *Program) Text(s Span) string {
	if s.Offset >= len(p.Source) {
		return ""
	}
	end := min(s.Offset+s.Len, len(p.Source))
	return p.Source[s.Offset:end]
}
