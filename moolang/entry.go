package moolang

// entryPoint finds the first live top-level instruction: instruction
// indexes inside a subroutine definition are suppressed, no-ops never
// start execution. A program with no live instruction starts on the
// halt sentinel.
func entryPoint(code []Instruction) int {
	inDef := false
	for i, inst := range code {
		switch inst.Op.Kind() {
		case OpSubStart:
			inDef = true
		case OpSubEnd:
			inDef = false
		case OpNop:
		default:
			if !inDef {
				return i
			}
		}
	}
	return len(code) - 1
}
