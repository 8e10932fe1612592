package lexer

import "fmt"

// ParseError is the single failure type the lexer produces. Offset is the
// character offset of the first offending character (or the end of input for
// unterminated literals).
type ParseError struct {
	Msg    string
	Offset uint32
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}
