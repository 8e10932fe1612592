package diag

import (
	"sort"

	"quill/internal/source"
)

// Bag аккумулирует диагностики с ограничением на максимальное число.
type Bag struct {
	items []Diagnostic
	max   int
	errs  int
	warns int
}

// NewBag creates a bag holding at most max diagnostics.
// max <= 0 means unlimited.
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add appends a diagnostic unless the bag is already full.
// Возвращает false, если диагностика была отброшена.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	switch d.Severity {
	case SevError:
		b.errs++
	case SevWarning:
		b.warns++
	}
	return true
}

func (b *Bag) Len() int { return len(b.items) }

func (b *Bag) HasErrors() bool { return b.errs > 0 }

func (b *Bag) HasWarnings() bool { return b.warns > 0 }

// Items returns the underlying slice; callers must not mutate it.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge moves every diagnostic from other into b, honoring b's limit.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	for _, d := range other.items {
		b.Add(d)
	}
}

// Sort orders diagnostics by file, then start offset, then severity
// (errors first), then code. Stable so equal entries keep insert order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup drops exact duplicates (same code, severity, span and message).
// Call Sort first for deterministic survivors.
func (b *Bag) Dedup() {
	seen := make(map[dedupKey]struct{}, len(b.items))
	out := b.items[:0]
	b.errs, b.warns = 0, 0
	for _, d := range b.items {
		k := dedupKey{d.Code, d.Severity, d.Primary, d.Message}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, d)
		switch d.Severity {
		case SevError:
			b.errs++
		case SevWarning:
			b.warns++
		}
	}
	b.items = out
}

type dedupKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}
