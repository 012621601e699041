package moolang

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() rune {
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

func (s *scanner) next() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	return r
}

var (
	errMissingIdent = errors.New("missing identifier")
	errIdentStart   = errors.New("identifier must start with a lowercase letter")
)

// fetchIdentifier reads a subroutine name with optional surrounding
// whitespace. The whitespace counts toward the enclosing instruction's
// span but is not part of the name. Names start with a lowercase ASCII
// letter and continue with ASCII letters, digits or underscores.
func (s *scanner) fetchIdentifier() (string, error) {
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.next()
	}
	if s.eof() {
		return "", errMissingIdent
	}
	if c := s.peek(); c < 'a' || c > 'z' {
		return "", errIdentStart
	}
	var name strings.Builder
	for !s.eof() && isIdentChar(s.peek()) {
		name.WriteRune(s.next())
	}
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.next()
	}
	return name.String(), nil
}

func isIdentChar(c rune) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_'
}
