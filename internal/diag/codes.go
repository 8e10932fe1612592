package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexInvalidIdent       Code = 1001
	LexInvalidNumber      Code = 1002
	LexInvalidDecimal     Code = 1003
	LexEmptyChar          Code = 1004
	LexInvalidEscape      Code = 1005
	LexUnterminatedChar   Code = 1006
	LexUnterminatedString Code = 1007

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown error",
	LexInfo:               "lexer note",
	LexInvalidIdent:       "invalid identifier start",
	LexInvalidNumber:      "invalid number",
	LexInvalidDecimal:     "invalid decimal number",
	LexEmptyChar:          "empty character literal",
	LexInvalidEscape:      "invalid escape sequence",
	LexUnterminatedChar:   "unterminated character literal",
	LexUnterminatedString: "unterminated string literal",
	IOLoadFileError:       "failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
