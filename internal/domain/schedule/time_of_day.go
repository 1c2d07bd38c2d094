package schedule

import (
	"fmt"
	"time"
)

// LayoutHM é o formato de horário usado em toda a API.
const LayoutHM = "15:04"

// MaxDurationMinutes limita a duração de um atendimento a um dia.
const MaxDurationMinutes = 24 * 60

// TimeOfDay representa minutos desde a meia-noite local.
type TimeOfDay int

// ParseTimeOfDay aceita exatamente "HH:MM" entre 00:00 e 23:59.
func ParseTimeOfDay(field, s string) (TimeOfDay, error) {
	if len(s) != len(LayoutHM) || s[2] != ':' {
		return 0, &ConfigError{Field: field, Value: s, Reason: "expected HH:MM"}
	}

	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, &ConfigError{Field: field, Value: s, Reason: "expected HH:MM"}
	}

	return TimeOfDay(h*60 + m), nil
}

// MustParse é usado em testes e seeds com valores fixos.
func MustParse(s string) TimeOfDay {
	t, err := ParseTimeOfDay("time", s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromClock extrai o horário local de um instante.
func FromClock(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Add soma minutos sem normalizar para o dia seguinte.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// On posiciona o horário na data informada, no fuso da própria data.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		int(t)/60, int(t)%60, 0, 0,
		date.Location(),
	)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
