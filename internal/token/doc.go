// Package token defines the lexical token kinds for the Quill language.
// Invariants:
//   - Token.Text is exactly the source text of the token, quotes and escape
//     backslashes included; the lexer never unescapes literal content.
//   - Token.Span matches Text exactly (Start..End), counted in characters.
//   - The kind set is closed: whitespace produces no token, and every
//     non-whitespace character that starts no other kind lexes as Operator.
//   - The language has no keywords at the lexical level; words like "LET"
//     or "IF" are ordinary identifiers recognized by later stages.
package token
