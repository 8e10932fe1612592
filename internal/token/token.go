package token

import (
	"quill/internal/source"
)

// Token represents a single source token with its location.
// Tokens are immutable once created; equality is field equality.
type Token struct {
	Kind Kind
	Text string
	Span source.Span
}

// Offset returns the character index of the token's first character.
func (t Token) Offset() uint32 { return t.Span.Start }

// End returns the character index one past the token's last character.
func (t Token) End() uint32 { return t.Span.End }

// IsLiteral reports whether the token is a numeric, character, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, DecLit, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is an operator.
func (t Token) IsOperator() bool { return t.Kind == Operator }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
