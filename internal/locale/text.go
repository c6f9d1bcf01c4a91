package locale

import "strings"

// Text is a bilingual field: Base is required, EN is an optional override.
type Text struct {
	Base string
	EN   string
}

// T builds a Text.
func T(base, en string) Text { return Text{Base: base, EN: en} }

// Resolve returns the English override when lang is EN and the override is
// non-blank, the base value otherwise.
func (t Text) Resolve(lang Lang) string {
	return Resolve(t.Base, t.EN, lang)
}

// IsZero reports whether both variants are empty.
func (t Text) IsZero() bool { return t.Base == "" && t.EN == "" }

func Resolve(base, en string, lang Lang) string {
	if lang == EN && strings.TrimSpace(en) != "" {
		return en
	}
	return base
}
