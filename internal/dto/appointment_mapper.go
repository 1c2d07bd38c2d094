package dto

import "github.com/frenetico9/Corte-Digital/internal/models"

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:           ap.ID,
		StartTime:    ap.StartTime,
		EndTime:      ap.EndTime,
		DurationMin:  ap.DurationMin,
		Status:       ap.Status,
		ClientName:   ap.Client.Name,
		ClientPhone:  ap.Client.Phone,
		BarberID:     ap.BarberID,
		ServiceNames: make([]string, 0, len(ap.Services)),
		TotalPrice:   ap.TotalPrice,
	}
	if ap.Barber != nil {
		out.BarberName = ap.Barber.Name
	}
	for _, s := range ap.Services {
		out.ServiceNames = append(out.ServiceNames, s.Name)
	}
	return out
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
