package models

import "time"

type Barber struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	BarbershopID uint       `gorm:"index;not null" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name string `gorm:"size:100;not null" json:"name"`

	Availability []BarberAvailability `gorm:"constraint:OnDelete:CASCADE;" json:"availability"`
	Services     []Service            `gorm:"many2many:barber_services;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceIDs devolve os serviços atribuídos ao barbeiro.
func (b *Barber) ServiceIDs() []uint {
	ids := make([]uint, 0, len(b.Services))
	for _, s := range b.Services {
		ids = append(ids, s.ID)
	}
	return ids
}

// BarberAvailability é uma janela de atendimento do barbeiro em um dia da
// semana. Pode haver mais de uma por dia (ex.: manhã e tarde).
type BarberAvailability struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index;not null" json:"barber_id"`

	Weekday   int    `json:"weekday"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
}
