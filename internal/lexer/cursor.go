package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"quill/internal/source"
	"quill/internal/token"
)

// Pattern matches a single character during lookahead.
type Pattern func(r rune) bool

// Cursor tracks a position inside a source file plus the mark where the
// current token started. Смещения всегда в символах, не в байтах.
type Cursor struct {
	file *source.File
	off  uint32 // текущая позиция
	mark uint32 // начало собираемого токена
}

func NewCursor(file *source.File) Cursor {
	return Cursor{file: file}
}

func (c *Cursor) limit() uint32 {
	n, err := safecast.Conv[uint32](len(c.file.Content))
	if err != nil {
		panic(fmt.Errorf("file content overflow: %w", err))
	}
	return n
}

// Off returns the current character offset.
func (c *Cursor) Off() uint32 { return c.off }

// Mark returns the offset where the pending token started.
func (c *Cursor) Mark() uint32 { return c.mark }

// EOF reports whether the cursor is past the last character.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit()
}

// Has reports whether at least n more characters are available.
func (c *Cursor) Has(n uint32) bool {
	return c.off+n <= c.limit()
}

// Peek returns the current character, or 0 at end of input.
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.off]
}

// PeekAt returns the character n positions ahead, or 0 past end of input.
func (c *Cursor) PeekAt(n uint32) rune {
	if !c.Has(n + 1) {
		return 0
	}
	return c.file.Content[c.off+n]
}

// Bump advances past the current character. No-op at end of input.
func (c *Cursor) Bump() {
	if !c.EOF() {
		c.off++
	}
}

// Skip discards everything accumulated since the mark, so the next Emit
// starts at the current offset. Used for whitespace.
func (c *Cursor) Skip() {
	c.mark = c.off
}

// Emit cuts a token of the given kind from the mark to the current offset
// and moves the mark forward.
func (c *Cursor) Emit(kind token.Kind) token.Token {
	span := source.Span{File: c.file.ID, Start: c.mark, End: c.off}
	tok := token.Token{
		Kind: kind,
		Text: c.file.Slice(span),
		Span: span,
	}
	c.mark = c.off
	return tok
}

// PeekPattern reports whether the next len(pats) characters exist and each
// matches its pattern, без продвижения курсора.
func (c *Cursor) PeekPattern(pats ...Pattern) bool {
	n, err := safecast.Conv[uint32](len(pats))
	if err != nil {
		panic(fmt.Errorf("pattern count overflow: %w", err))
	}
	if !c.Has(n) {
		return false
	}
	for i, p := range pats {
		if !p(c.file.Content[c.off+uint32(i)]) { // #nosec G115 -- i < len(pats) checked above
			return false
		}
	}
	return true
}

// MatchPattern is PeekPattern plus advancing past the matched characters
// when they all match.
func (c *Cursor) MatchPattern(pats ...Pattern) bool {
	if !c.PeekPattern(pats...) {
		return false
	}
	for range pats {
		c.Bump()
	}
	return true
}
