package appointment

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// AvailabilityInput é a consulta de horários livres. BarberID nil significa
// "qualquer barbeiro".
type AvailabilityInput struct {
	BarbershopID    uint
	DurationMinutes int
	Date            time.Time
	BarberID        *uint
}

// SlotKey identifica uma lista de horários candidata no cache.
type SlotKey struct {
	BarbershopID    uint
	Date            string
	DurationMinutes int
	BarberID        *uint
}

func NewSlotKey(in AvailabilityInput) SlotKey {
	return SlotKey{
		BarbershopID:    in.BarbershopID,
		Date:            in.Date.Format(DateLayout),
		DurationMinutes: in.DurationMinutes,
		BarberID:        in.BarberID,
	}
}

// Field distingue as variações de um mesmo dia (duração e barbeiro).
func (k SlotKey) Field() string {
	barber := "any"
	if k.BarberID != nil {
		barber = fmt.Sprintf("%d", *k.BarberID)
	}
	return fmt.Sprintf("%d:%s", k.DurationMinutes, barber)
}
