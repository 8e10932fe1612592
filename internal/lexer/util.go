package lexer

// Классификация только по ASCII: идентификаторы и числа в языке
// семибитные, всё остальное уходит в operator как одиночный символ.

func isSpace(r rune) bool {
	switch r {
	case ' ', '\b', '\n', '\r', '\t':
		return true
	}
	return false
}

func isAsciiLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAsciiDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNonZeroDigit(r rune) bool {
	return r >= '1' && r <= '9'
}

func isIdentStart(r rune) bool {
	return isAsciiLetter(r) || r == '_'
}

func isIdentContinue(r rune) bool {
	return isAsciiLetter(r) || isAsciiDigit(r) || r == '_' || r == '-'
}

func isSign(r rune) bool {
	return r == '+' || r == '-'
}

func isCompareStart(r rune) bool {
	switch r {
	case '!', '=', '<', '>':
		return true
	}
	return false
}

// is adapts a single rune into a Pattern for PeekPattern/MatchPattern.
func is(want rune) Pattern {
	return func(r rune) bool { return r == want }
}

func isCharEscape(r rune) bool {
	switch r {
	case 'b', 'n', 'r', 't', '\'', '"', '\\':
		return true
	}
	return false
}

// Строковые литералы дополнительно разрешают экранированный пробел.
func isStringEscape(r rune) bool {
	return isCharEscape(r) || r == ' '
}
