package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// scanNumber consumes an optional sign, an integer part (a single 0 or a
// run of digits with no leading zero) and an optional fraction. Dispatch
// only routes here when the cursor sits on a digit or on sign+digit, so the
// sign is never consumed speculatively.
func (lx *Lexer) scanNumber() (token.Token, error) {
	cur := &lx.cursor
	cur.MatchPattern(isSign)

	switch {
	case cur.MatchPattern(is('0')):
		// После одиночного нуля цифры не добираются: "0123" даёт
		// INTEGER "0", остаток лексится заново.
	case cur.MatchPattern(isNonZeroDigit):
		for cur.MatchPattern(isAsciiDigit) {
		}
	default:
		// Одинокий знак; недостижимо при корректной диспетчеризации.
		return lx.fail(diag.LexInvalidNumber, cur.Off(), "Invalid number")
	}

	if cur.PeekPattern(is('.'), isAsciiDigit) {
		cur.MatchPattern(is('.'))
		for cur.MatchPattern(isAsciiDigit) {
		}
		return cur.Emit(token.DecLit), nil
	}
	if cur.MatchPattern(is('.')) {
		return lx.fail(diag.LexInvalidDecimal, cur.Off(), "Invalid decimal number")
	}
	return cur.Emit(token.IntLit), nil
}
