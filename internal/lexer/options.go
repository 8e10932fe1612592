package lexer

import "quill/internal/diag"

// Options configures a single Lexer run.
type Options struct {
	// Reporter receives a diagnostic for every failure in addition to the
	// returned *ParseError. Nil disables reporting.
	Reporter diag.Reporter
}
