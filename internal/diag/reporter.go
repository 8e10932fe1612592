package diag

import "quill/internal/source"

// Reporter is the emission side of the diagnostic pipeline.
// Implementations must be safe for use from a single goroutine;
// the driver gives each worker its own reporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter stores everything it receives in a Bag.
type BagReporter struct {
	bag *Bag
}

func NewBagReporter(bag *Bag) *BagReporter {
	return &BagReporter{bag: bag}
}

func (r *BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	r.bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *BagReporter) Bag() *Bag { return r.bag }

// ReportBuilder accumulates one diagnostic fluently:
//
//	diag.ReportError(r, code, span, "msg").WithNote(span2, "hint").Emit()
//
// A nil reporter makes Emit a no-op, so call sites never need nil checks.
type ReportBuilder struct {
	r     Reporter
	code  Code
	sev   Severity
	span  source.Span
	msg   string
	notes []Note
}

func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{r: r, code: code, sev: SevError, span: primary, msg: msg}
}

func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{r: r, code: code, sev: SevWarning, span: primary, msg: msg}
}

func ReportInfo(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{r: r, code: code, sev: SevInfo, span: primary, msg: msg}
}

func (b *ReportBuilder) WithNote(span source.Span, msg string) *ReportBuilder {
	b.notes = append(b.notes, Note{Span: span, Msg: msg})
	return b
}

func (b *ReportBuilder) Emit() {
	if b.r == nil {
		return
	}
	b.r.Report(b.code, b.sev, b.span, b.msg, b.notes)
}
