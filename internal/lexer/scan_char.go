package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// scanCharacter consumes 'x' or '\x' where x is one escape letter from
// b n r t ' " \. The lexeme keeps the quotes and the backslash verbatim.
func (lx *Lexer) scanCharacter() (token.Token, error) {
	cur := &lx.cursor
	cur.MatchPattern(is('\''))

	switch {
	case cur.MatchPattern(is('\\')):
		if !cur.MatchPattern(isCharEscape) {
			return lx.fail(diag.LexInvalidEscape, cur.Off(), "Invalid escape sequence")
		}
	case cur.PeekPattern(is('\'')):
		return lx.fail(diag.LexEmptyChar, cur.Off(), "Empty character literal")
	case cur.EOF(), cur.Peek() == '\n', cur.Peek() == '\r':
		return lx.fail(diag.LexUnterminatedChar, cur.Off(), "Unterminated character literal")
	default:
		cur.Bump()
	}

	if !cur.MatchPattern(is('\'')) {
		return lx.fail(diag.LexUnterminatedChar, cur.Off(), "Unterminated character literal")
	}
	return cur.Emit(token.CharLit), nil
}
