package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// scanIdentifier consumes one leading letter or underscore, then greedily
// letters, digits, underscores and hyphens.
func (lx *Lexer) scanIdentifier() (token.Token, error) {
	cur := &lx.cursor
	if !cur.MatchPattern(isIdentStart) {
		// Недостижимо при корректной диспетчеризации.
		return lx.fail(diag.LexInvalidIdent, cur.Off(), "Invalid identifier")
	}
	for cur.MatchPattern(isIdentContinue) {
	}
	return cur.Emit(token.Ident), nil
}
