package dto

type AvailabilityResponse struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	BarberID        *uint    `json:"barber_id,omitempty"`
	Slots           []string `json:"slots"`
}
