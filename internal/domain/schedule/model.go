package schedule

import (
	"strconv"
	"time"
)

// Window é um intervalo semi-aberto [Start, End) dentro de um único dia.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Covers informa se um atendimento iniciado em start cabe inteiro na janela.
func (w Window) Covers(start TimeOfDay, durationMin int) bool {
	return start >= w.Start && start <= w.End && durationMin <= int(w.End-start)
}

// WorkingHoursWindow é o expediente da barbearia em um dia da semana.
type WorkingHoursWindow struct {
	Day    time.Weekday
	IsOpen bool
	Window
}

// BarberAvailability é a janela pessoal de um barbeiro em um dia da semana.
type BarberAvailability struct {
	Day time.Weekday
	Window
}

// Barber é a visão do barbeiro usada no cálculo de horários.
type Barber struct {
	ID           uint
	Availability []BarberAvailability
	ServiceIDs   []uint
}

// WindowsOn retorna as janelas do barbeiro no dia informado.
func (b Barber) WindowsOn(day time.Weekday) []Window {
	var out []Window
	for _, av := range b.Availability {
		if av.Day == day {
			out = append(out, av.Window)
		}
	}
	return out
}

// Offers informa se o barbeiro atende o serviço. Sem serviços atribuídos,
// o barbeiro atende todos.
func (b Barber) Offers(serviceID uint) bool {
	if len(b.ServiceIDs) == 0 {
		return true
	}
	for _, id := range b.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// BookedInterval é um agendamento ativo lido do banco. BarberID nil
// significa agendamento sem barbeiro definido.
type BookedInterval struct {
	BarberID        *uint
	Start           TimeOfDay
	DurationMinutes int
}

func (b BookedInterval) heldBy(barberID uint) bool {
	return b.BarberID != nil && *b.BarberID == barberID
}

// NewWorkingHoursWindow valida um registro bruto de expediente. Dias
// fechados não têm horário validado.
func NewWorkingHoursWindow(day int, isOpen bool, start, end string) (WorkingHoursWindow, error) {
	wd, err := weekday(day)
	if err != nil {
		return WorkingHoursWindow{}, err
	}

	if !isOpen {
		return WorkingHoursWindow{Day: wd}, nil
	}

	w, err := newWindow("working_hours", start, end)
	if err != nil {
		return WorkingHoursWindow{}, err
	}

	return WorkingHoursWindow{Day: wd, IsOpen: true, Window: w}, nil
}

// NewBarberAvailability valida uma janela bruta de barbeiro.
func NewBarberAvailability(day int, start, end string) (BarberAvailability, error) {
	wd, err := weekday(day)
	if err != nil {
		return BarberAvailability{}, err
	}

	w, err := newWindow("availability", start, end)
	if err != nil {
		return BarberAvailability{}, err
	}

	return BarberAvailability{Day: wd, Window: w}, nil
}

func weekday(day int) (time.Weekday, error) {
	if day < 0 || day > 6 {
		return 0, &ConfigError{
			Field:  "day_of_week",
			Value:  strconv.Itoa(day),
			Reason: "must be between 0 (sunday) and 6",
		}
	}
	return time.Weekday(day), nil
}

func newWindow(prefix, start, end string) (Window, error) {
	s, err := ParseTimeOfDay(prefix+".start", start)
	if err != nil {
		return Window{}, err
	}

	e, err := ParseTimeOfDay(prefix+".end", end)
	if err != nil {
		return Window{}, err
	}

	if e <= s {
		return Window{}, &ConfigError{
			Field:  prefix + ".end",
			Value:  end,
			Reason: "must be after " + start,
		}
	}

	return Window{Start: s, End: e}, nil
}
