package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Ident represents an identifier token: [A-Za-z_][A-Za-z0-9_-]*.
	Ident Kind = iota
	// IntLit represents an integer literal token, sign included.
	IntLit
	// DecLit represents a decimal literal token with a fractional part.
	DecLit
	// CharLit represents a character literal token, quotes included.
	CharLit
	// StringLit represents a string literal token, quotes included.
	StringLit
	// Operator represents an operator token: one character, or one of the
	// recognized two-character sequences.
	Operator
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "Identifier"
	case IntLit:
		return "Integer"
	case DecLit:
		return "Decimal"
	case CharLit:
		return "Character"
	case StringLit:
		return "String"
	case Operator:
		return "Operator"
	}
	return "Unknown"
}
