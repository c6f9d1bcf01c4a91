package locale

import (
	"fmt"
	"strings"
	"time"
)

var monthNames = map[Lang][12]string{
	ES: {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	EN: {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
}

// RangeSeparator joins the two ends of a date range.
const RangeSeparator = " – "

func month(t time.Time, lang Lang) string {
	names, ok := monthNames[lang]
	if !ok {
		names = monthNames[Default]
	}
	return names[t.Month()-1]
}

// Present is the token shown for an open-ended range.
func Present(lang Lang) string {
	if lang == EN {
		return "Present"
	}
	return "Actualidad"
}

// FormatMonthYear renders "Enero de 2022" or "January 2022".
func FormatMonthYear(t time.Time, lang Lang) string {
	if lang == EN {
		return fmt.Sprintf("%s %d", month(t, lang), t.Year())
	}
	m := month(t, ES)
	return fmt.Sprintf("%s%s de %d", strings.ToUpper(m[:1]), m[1:], t.Year())
}

// FormatYear renders the four-digit year.
func FormatYear(t time.Time, _ Lang) string {
	return fmt.Sprintf("%d", t.Year())
}

// FormatShortDate renders a full day date: "3 de marzo de 1990" or "3 March 1990".
func FormatShortDate(t time.Time, lang Lang) string {
	if lang == EN {
		return fmt.Sprintf("%d %s %d", t.Day(), month(t, lang), t.Year())
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), month(t, ES), t.Year())
}

// FormatRange joins start and end with RangeSeparator. A nil end renders the
// Present token.
func FormatRange(start time.Time, end *time.Time, lang Lang, format func(time.Time, Lang) string) string {
	to := Present(lang)
	if end != nil {
		to = format(*end, lang)
	}
	return format(start, lang) + RangeSeparator + to
}
