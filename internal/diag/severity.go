package diag

// Severity ранжирует влияние диагностики на прогон. Лексер атомарен и сам
// по себе выдаёт только SevError; SevWarning покрывает восстановимые сбои
// драйвера (например, запись кэша токенов), SevInfo — заметки уровня
// LexInfo. Порядок значений используется сортировкой Bag: выше — важнее.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// String returns the lowercase label used by golden output and the renderer.
func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}
