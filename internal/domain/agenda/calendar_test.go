package agenda

import (
	"testing"
	"time"

	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

// 2026-01-05 é segunda-feira
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func weekdayPtr(w int) *int { return &w }

func TestNextWeekdayOnOrAfter(t *testing.T) {
	tests := []struct {
		name    string
		weekday int
		from    time.Time
		want    time.Time
	}{
		{"mesmo dia é inclusivo", 1, monday, monday},
		{"quarta a partir de segunda", 3, monday, monday.AddDate(0, 0, 2)},
		{"domingo a partir de segunda", 7, monday, monday.AddDate(0, 0, 6)},
		{"segunda a partir de terça vira semana seguinte", 1, monday.AddDate(0, 0, 1), monday.AddDate(0, 0, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextWeekdayOnOrAfter(tt.weekday, tt.from)
			if !got.Equal(tt.want) {
				t.Errorf("NextWeekdayOnOrAfter(%d, %s) = %s, want %s",
					tt.weekday, tt.from, got, tt.want)
			}
			if isoWeekday(got) != tt.weekday {
				t.Errorf("resultado %s não cai no weekday %d", got, tt.weekday)
			}
		})
	}
}

func TestDatesForHorizonWeekly(t *testing.T) {
	sch := &models.Schedule{
		Weekday:       weekdayPtr(3), // quarta
		EffectiveFrom: monday.AddDate(0, 0, -30),
	}

	dates := DatesForHorizon(sch, monday, 14)

	want := []time.Time{
		monday.AddDate(0, 0, 2), // 07/01
		monday.AddDate(0, 0, 9), // 14/01
	}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d: %v", len(dates), len(want), dates)
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Errorf("dates[%d] = %s, want %s", i, dates[i], want[i])
		}
		if isoWeekday(dates[i]) != 3 {
			t.Errorf("dates[%d] = %s não é quarta", i, dates[i])
		}
	}
}

func TestDatesForHorizonRespectsValidity(t *testing.T) {
	until := monday.AddDate(0, 0, 5) // 10/01

	sch := &models.Schedule{
		Weekday:        weekdayPtr(3),
		EffectiveFrom:  monday,
		EffectiveUntil: &until,
	}

	dates := DatesForHorizon(sch, monday, 14)
	if len(dates) != 1 || !dates[0].Equal(monday.AddDate(0, 0, 2)) {
		t.Fatalf("janela de vigência ignorada: %v", dates)
	}

	// vigência começando depois de hoje desloca a primeira ocorrência
	sch = &models.Schedule{
		Weekday:       weekdayPtr(3),
		EffectiveFrom: monday.AddDate(0, 0, 3), // 08/01, depois da 1ª quarta
	}
	dates = DatesForHorizon(sch, monday, 14)
	if len(dates) != 1 || !dates[0].Equal(monday.AddDate(0, 0, 9)) {
		t.Fatalf("effective_from ignorado: %v", dates)
	}
}

func TestDatesForHorizonFixedDate(t *testing.T) {
	inRange := monday.AddDate(0, 0, 4)
	outOfRange := monday.AddDate(0, 0, 30)

	tests := []struct {
		name  string
		fixed time.Time
		want  int
	}{
		{"dentro do horizonte", inRange, 1},
		{"fora do horizonte", outOfRange, 0},
		{"antes de hoje", monday.AddDate(0, 0, -1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixed := tt.fixed
			sch := &models.Schedule{
				FixedDate:     &fixed,
				EffectiveFrom: monday.AddDate(0, 0, -30),
			}
			dates := DatesForHorizon(sch, monday, 14)
			if len(dates) != tt.want {
				t.Errorf("got %d dates, want %d", len(dates), tt.want)
			}
		})
	}
}

func TestDatesForHorizonMalformedRecurrence(t *testing.T) {
	// sem weekday e sem fixed_date: construção inválida barrada no store,
	// o calendário só devolve vazio
	sch := &models.Schedule{EffectiveFrom: monday}
	if dates := DatesForHorizon(sch, monday, 14); len(dates) != 0 {
		t.Errorf("schedule sem recorrência gerou datas: %v", dates)
	}
}
