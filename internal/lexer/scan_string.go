package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// scanString consumes a double-quoted literal. Escapes allow the character
// set of char literals plus a literal space; raw newlines terminate with an
// error. The lexeme keeps quotes and escapes unprocessed.
func (lx *Lexer) scanString() (token.Token, error) {
	cur := &lx.cursor
	cur.MatchPattern(is('"'))

	for {
		switch {
		case cur.MatchPattern(is('"')):
			return cur.Emit(token.StringLit), nil
		case cur.MatchPattern(is('\\')):
			if !cur.MatchPattern(isStringEscape) {
				return lx.fail(diag.LexInvalidEscape, cur.Off(), "Invalid escape sequence")
			}
		case cur.EOF(), cur.Peek() == '\n', cur.Peek() == '\r':
			return lx.fail(diag.LexUnterminatedString, cur.Off(), "Unterminated string literal")
		default:
			cur.Bump()
		}
	}
}
