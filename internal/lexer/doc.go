// Package lexer turns source text into a flat stream of token.Token values.
//
// The scanner is atomic: Lex either returns the complete token slice for the
// file or a *ParseError describing the first character that could not be
// consumed. Offsets are character (rune) offsets into source.File.Content,
// never byte offsets, so diagnostics line up with what an editor shows.
//
// Internally the lexer is a hand-written cursor machine: Cursor owns the
// current offset and the mark of the token in progress; scan_*.go files hold
// one routine per token family (identifier, number, character, string,
// operator). Dispatch in Next looks at most two characters ahead.
package lexer
