package lexer

import "quill/internal/token"

// scanOperator applies maximal munch over the fixed two-character set
// (&&, ||, !=, ==, <=, >=), then falls back to a single character. Любой
// непробельный символ, не забранный другими ветками, становится оператором,
// поэтому провалов здесь нет.
func (lx *Lexer) scanOperator() (token.Token, error) {
	cur := &lx.cursor
	switch {
	case cur.MatchPattern(is('&'), is('&')):
	case cur.MatchPattern(is('|'), is('|')):
	case cur.MatchPattern(isCompareStart, is('=')):
	default:
		cur.Bump()
	}
	return cur.Emit(token.Operator), nil
}
