package diag

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"

	"quill/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	locColor     = color.New(color.Faint)
)

func severityColor(sev Severity) *color.Color {
	switch sev {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Render writes a human readable, optionally colorized report:
//
//	error [LEX1007] unterminated string literal
//	  --> main.ql:3:5
//	   |
//	 3 | let s = "oops
//	   |     ^
//
// Color output follows the fatih/color global (NO_COLOR etc.).
func Render(w io.Writer, d Diagnostic, fs *source.FileSet) {
	sevc := severityColor(d.Severity)
	fmt.Fprintf(w, "%s %s %s\n",
		sevc.Sprint(d.Severity.String()),
		locColor.Sprintf("[%s]", d.Code.ID()),
		d.Message)

	renderSpan(w, fs, d.Primary, "^")

	for _, note := range d.Notes {
		fmt.Fprintf(w, "%s %s\n", noteColor.Sprint("note:"), note.Msg)
		renderSpan(w, fs, note.Span, "-")
	}
}

// RenderBag renders every diagnostic in the bag, sorted.
func RenderBag(w io.Writer, bag *Bag, fs *source.FileSet) {
	bag.Sort()
	for _, d := range bag.Items() {
		Render(w, d, fs)
	}
}

func renderSpan(w io.Writer, fs *source.FileSet, span source.Span, marker string) {
	if fs == nil {
		return
	}
	loc, ok := resolveSpan(fs, span)
	if !ok {
		return
	}
	file := fs.Get(span.File)
	fmt.Fprintf(w, "  %s %s:%d:%d\n", locColor.Sprint("-->"), loc.Path, loc.Line, loc.Column)

	line := file.GetLine(loc.Line)
	if line == "" {
		contentLen, err := safecast.Conv[uint32](len(file.Content))
		if err != nil {
			panic(fmt.Errorf("content length overflow: %w", err))
		}
		if span.Start >= contentLen {
			return
		}
	}
	gutter := fmt.Sprintf("%d", loc.Line)
	pad := strings.Repeat(" ", len(gutter))
	fmt.Fprintf(w, "  %s |\n", pad)
	fmt.Fprintf(w, "  %s | %s\n", gutter, strings.TrimRight(line, "\n"))

	width := span.Len()
	if width == 0 {
		width = 1
	}
	fmt.Fprintf(w, "  %s | %s%s\n", pad,
		strings.Repeat(" ", int(loc.Column-1)),
		severityColor(SevError).Sprint(strings.Repeat(marker, int(width))))
}
