package lexer

import (
	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/token"
)

// Lexer scans one source file. A Lexer is single-use: create, call Lex,
// discard. Инстансы не делят состояние, параллельные запуски безопасны.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Lex tokenizes the entire file. The result is atomic: either the full
// token slice, or nil plus a *ParseError for the first invalid construct.
func (lx *Lexer) Lex() ([]token.Token, error) {
	var out []token.Token
	for {
		lx.skipSpace()
		if lx.cursor.EOF() {
			return out, nil
		}
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
}

// Next scans exactly one token at the current position. Exposed separately
// so tests and incremental callers can pull tokens one at a time.
func (lx *Lexer) Next() (token.Token, error) {
	switch ch := lx.cursor.Peek(); {
	case isIdentStart(ch):
		return lx.scanIdentifier()
	case isAsciiDigit(ch):
		return lx.scanNumber()
	case isSign(ch) && lx.cursor.PeekPattern(isSign, isAsciiDigit):
		// Знак принадлежит числу только когда сразу за ним цифра,
		// иначе уходит в operator.
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanCharacter()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperator()
	}
}

func (lx *Lexer) skipSpace() {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
		lx.cursor.Skip()
	}
}

func (lx *Lexer) fail(code diag.Code, off uint32, msg string) (token.Token, error) {
	span := source.Span{File: lx.file.ID, Start: off, End: off}
	diag.ReportError(lx.opts.Reporter, code, span, msg).Emit()
	return token.Token{}, &ParseError{Msg: msg, Offset: off}
}

// LexString tokenizes standalone text. Convenience for tests and tools that
// have no FileSet of their own.
func LexString(input string) ([]token.Token, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(input))
	return New(fs.Get(id), Options{}).Lex()
}
