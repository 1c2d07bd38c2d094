package schedule

import (
	"strings"
	"time"
)

// CapacityMode define como o modo "qualquer barbeiro" decide se ainda
// existe alguém livre.
type CapacityMode string

const (
	// CapacityHeadcount compara agendamentos simultâneos com o total de
	// barbeiros da barbearia.
	CapacityHeadcount CapacityMode = "headcount"

	// CapacityIdentity exige um barbeiro ocioso (janela cobre o horário e
	// sem agendamento próprio) para cada agendamento sem barbeiro, mais um.
	CapacityIdentity CapacityMode = "identity"
)

// ParseCapacityMode aceita o modo sem diferenciar maiúsculas; desconhecido
// cai em headcount com ok=false.
func ParseCapacityMode(s string) (CapacityMode, bool) {
	switch CapacityMode(strings.ToLower(strings.TrimSpace(s))) {
	case CapacityHeadcount:
		return CapacityHeadcount, true
	case CapacityIdentity:
		return CapacityIdentity, true
	}
	return CapacityHeadcount, false
}

// Resolver decide, horário a horário, se ainda há vaga.
type Resolver struct {
	mode     CapacityMode
	day      time.Weekday
	barbers  []Barber
	bookings []BookedInterval
	barberID *uint
}

func NewResolver(
	mode CapacityMode,
	day time.Weekday,
	barbers []Barber,
	bookings []BookedInterval,
	barberID *uint,
) Resolver {
	return Resolver{
		mode:     mode,
		day:      day,
		barbers:  barbers,
		bookings: bookings,
		barberID: barberID,
	}
}

// Available não trata conflito como erro: false é um resultado esperado.
func (r Resolver) Available(slot TimeOfDay, durationMin int) bool {
	if r.barberID != nil {
		b, ok := r.barber(*r.barberID)
		return ok && r.barberFree(b, slot, durationMin)
	}

	if r.mode == CapacityIdentity && len(r.barbers) > 0 {
		return r.identityFree(slot, durationMin)
	}

	return r.overlapping(slot, durationMin, nil) < r.headcount()
}

// headcount considera uma barbearia sem barbeiros cadastrados como uma
// única cadeira.
func (r Resolver) headcount() int {
	if len(r.barbers) == 0 {
		return 1
	}
	return len(r.barbers)
}

func (r Resolver) identityFree(slot TimeOfDay, durationMin int) bool {
	idle := 0
	for _, b := range r.barbers {
		if r.barberFree(b, slot, durationMin) {
			idle++
		}
	}

	unassigned := r.overlapping(slot, durationMin, func(bi BookedInterval) bool {
		return bi.BarberID == nil
	})

	return idle > unassigned
}

func (r Resolver) barberFree(b Barber, slot TimeOfDay, durationMin int) bool {
	covered := false
	for _, w := range b.WindowsOn(r.day) {
		if w.Covers(slot, durationMin) {
			covered = true
			break
		}
	}
	if !covered {
		return false
	}

	return r.overlapping(slot, durationMin, func(bi BookedInterval) bool {
		return bi.heldBy(b.ID)
	}) == 0
}

func (r Resolver) overlapping(slot TimeOfDay, durationMin int, match func(BookedInterval) bool) int {
	n := 0
	for _, bi := range r.bookings {
		if match != nil && !match(bi) {
			continue
		}
		if Overlaps(slot, durationMin, bi.Start, bi.DurationMinutes) {
			n++
		}
	}
	return n
}

func (r Resolver) barber(id uint) (Barber, bool) {
	for _, b := range r.barbers {
		if b.ID == id {
			return b, true
		}
	}
	return Barber{}, false
}
