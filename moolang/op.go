package moolang

// OpCode packs an instruction kind in the low byte and an optional
// argument in the high bits: a subroutine id for OpCall, OpSubStart and
// OpSubEnd, the original character for OpNop.
type OpCode uint32

const (
	OpHalt OpCode = iota
	OpInc
	OpDec
	OpMoveLeft
	OpMoveRight
	OpRead
	OpWrite
	OpLoopStart
	OpLoopEnd
	OpToggleTape
	OpNop
	OpCall
	OpSubStart
	OpSubEnd
)

func (o OpCode) With(arg int) OpCode {
	return o | OpCode(arg)<<8
}

func (o OpCode) Kind() OpCode {
	return o & 0xff
}

func (o OpCode) Arg() int {
	return int(o >> 8)
}

// Char returns the source character of an OpNop instruction.
func (o OpCode) Char() rune {
	return rune(o >> 8)
}
