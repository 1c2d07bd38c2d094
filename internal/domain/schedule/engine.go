package schedule

import (
	"maps"
	"slices"
	"time"
)

// DefaultStepMinutes é o intervalo entre inícios de horário oferecidos.
const DefaultStepMinutes = 30

// Query reúne tudo o que o cálculo de horários precisa. Depois de montada
// não há mais I/O: o cálculo é puro e determinístico.
type Query struct {
	// Date é a meia-noite do dia consultado, no fuso da barbearia.
	Date time.Time
	Now  time.Time

	// MinAdvance desloca o corte de "agora" para frente.
	MinAdvance time.Duration

	DurationMinutes int
	StepMinutes     int
	BarberID        *uint
	Mode            CapacityMode

	WorkingHours []WorkingHoursWindow
	Barbers      []Barber
	Bookings     []BookedInterval
}

// AvailableSlots devolve os inícios livres em ordem crescente, já sem os
// horários que não estão estritamente depois de Now+MinAdvance.
func AvailableSlots(q Query) []string {
	return DropPast(Candidates(q), q.Date, q.Now.Add(q.MinAdvance))
}

// Candidates gera, deduplica, ordena e filtra por capacidade. Não aplica
// o corte de horário atual, por isso o resultado pode ser guardado em cache.
func Candidates(q Query) []string {
	out := make([]string, 0)
	if q.DurationMinutes <= 0 || q.DurationMinutes > MaxDurationMinutes {
		return out
	}

	step := q.StepMinutes
	if step <= 0 {
		step = DefaultStepMinutes
	}

	day := q.Date.Weekday()

	seen := make(map[TimeOfDay]struct{})
	for _, w := range candidateWindows(q, day) {
		for t := range EnumerateSlots(w, step, q.DurationMinutes) {
			seen[t] = struct{}{}
		}
	}

	resolver := NewResolver(q.Mode, day, q.Barbers, q.Bookings, q.BarberID)

	for _, t := range slices.Sorted(maps.Keys(seen)) {
		if resolver.Available(t, q.DurationMinutes) {
			out = append(out, t.String())
		}
	}

	return out
}

// DropPast mantém apenas horários cujo início absoluto (date + HH:MM) é
// estritamente posterior a cutoff.
func DropPast(slots []string, date time.Time, cutoff time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		t, err := ParseTimeOfDay("slot", s)
		if err != nil {
			continue
		}
		if t.On(date).After(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// candidateWindows escolhe de onde saem os horários:
//   - barbeiro específico: só as janelas dele (nenhuma = dia sem horários);
//   - qualquer barbeiro: a união das janelas de todos;
//   - barbearia sem barbeiros: o expediente da própria barbearia.
func candidateWindows(q Query, day time.Weekday) []Window {
	if q.BarberID != nil {
		for _, b := range q.Barbers {
			if b.ID == *q.BarberID {
				return b.WindowsOn(day)
			}
		}
		return nil
	}

	if len(q.Barbers) > 0 {
		var out []Window
		for _, b := range q.Barbers {
			out = append(out, b.WindowsOn(day)...)
		}
		return out
	}

	for _, wh := range q.WorkingHours {
		if wh.Day == day && wh.IsOpen {
			return []Window{wh.Window}
		}
	}

	return nil
}
