package models

import "time"

// WorkingHours é o expediente da barbearia, uma linha por dia da semana
// (0 = domingo).
type WorkingHours struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"uniqueIndex:idx_shop_weekday;not null" json:"barbershop_id"`

	Weekday int `gorm:"uniqueIndex:idx_shop_weekday;not null" json:"weekday"`

	IsOpen    bool   `json:"is_open"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultWorkingHours é o modelo aplicado no cadastro: segunda a sábado
// das 09:00 às 18:00, domingo fechado.
func DefaultWorkingHours(barbershopID uint) []WorkingHours {
	out := make([]WorkingHours, 0, 7)
	for day := 0; day < 7; day++ {
		wh := WorkingHours{
			BarbershopID: barbershopID,
			Weekday:      day,
			IsOpen:       day != 0,
			StartTime:    "09:00",
			EndTime:      "18:00",
		}
		out = append(out, wh)
	}
	return out
}
