package dto

import "time"

type AppointmentListDTO struct {
	ID           uint      `json:"id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	DurationMin  int       `json:"duration_min"`
	Status       string    `json:"status"`
	ClientName   string    `json:"client_name"`
	ClientPhone  string    `json:"client_phone"`
	BarberID     *uint     `json:"barber_id"`
	BarberName   string    `json:"barber_name"`
	ServiceNames []string  `json:"service_names"`
	TotalPrice   float64   `json:"total_price"`
}
