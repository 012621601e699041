package moolang

import (
	"fmt"
	"strings"
)

// SyntaxError reports a structural compile error with the byte offset
// it was detected at and a snippet of the surrounding source.
type SyntaxError struct {
	Name   string
	Offset int
	Msg    string
	Source string
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	if e.Name != "" {
		fmt.Fprintf(&sb, "%s: ", e.Name)
	}
	fmt.Fprintf(&sb, "%s at offset %d", e.Msg, e.Offset)
	if snippet := e.snippet(); snippet != "" {
		fmt.Fprintf(&sb, ": %q", snippet)
	}
	return sb.String()
}

func (e *SyntaxError) snippet() string {
	if e.Offset >= len(e.Source) {
		return ""
	}
	end := min(e.Offset+16, len(e.Source))
	if i := strings.IndexByte(e.Source[e.Offset:end], '\n'); i >= 0 {
		end = e.Offset + i
	}
	return e.Source[e.Offset:end]
}
