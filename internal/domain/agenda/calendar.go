package agenda

import (
	"time"

	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

// ===============================
// Calendário (funções puras)
// ===============================

// Weekday ordinal: 1=segunda .. 7=domingo (ISO-8601).
// A conversão para time.Weekday (0=domingo) acontece só aqui.

func isoWeekday(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// NextWeekdayOnOrAfter retorna a primeira data em/após from cujo dia da
// semana é weekday (inclusive: se from já cai no dia, retorna from).
// weekday precisa estar em 1..7 — o chamador valida, não esta função.
func NextWeekdayOnOrAfter(weekday int, from time.Time) time.Time {
	delta := (weekday - isoWeekday(from) + 7) % 7
	return from.AddDate(0, 0, delta)
}

// DatesForHorizon expande a recorrência de um Schedule nas datas concretas
// dentro de [today, today+horizonDays], recortadas pela janela de vigência
// [EffectiveFrom, EffectiveUntil]. Schedule avulso (FixedDate) gera no
// máximo uma data. Sempre à meia-noite na localidade de today.
func DatesForHorizon(sch *models.Schedule, today time.Time, horizonDays int) []time.Time {
	loc := today.Location()

	start := dateOnly(today, loc)
	if ef := dateOnly(sch.EffectiveFrom, loc); ef.After(start) {
		start = ef
	}

	end := dateOnly(today, loc).AddDate(0, 0, horizonDays)
	if sch.EffectiveUntil != nil {
		if eu := dateOnly(*sch.EffectiveUntil, loc); eu.Before(end) {
			end = eu
		}
	}

	if end.Before(start) {
		return nil
	}

	if sch.FixedDate != nil {
		d := dateOnly(*sch.FixedDate, loc)
		if d.Before(start) || d.After(end) {
			return nil
		}
		return []time.Time{d}
	}

	if sch.Weekday == nil {
		return nil
	}

	var dates []time.Time
	for d := NextWeekdayOnOrAfter(*sch.Weekday, start); !d.After(end); d = d.AddDate(0, 0, 7) {
		dates = append(dates, d)
	}
	return dates
}
