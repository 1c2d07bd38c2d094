package db

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/frenetico9/Corte-Digital/internal/models"
	"github.com/frenetico9/Corte-Digital/internal/timezone"
)

// ======================================================
// Dados de demonstração
// ======================================================

type seedService struct {
	name        string
	description string
	duration    int
	price       float64
	active      bool
}

type seedBarber struct {
	name     string
	days     []int
	start    string
	end      string
	services []int // índices em services
}

type seedShop struct {
	name, slug, phone, address, description string
	owner, email                            string
	open, close                             string
	services                                []seedService
	barbers                                 []seedBarber
}

var demoShops = []seedShop{
	{
		name:        "Barbearia do Carlos",
		slug:        "barbearia-do-carlos",
		phone:       "(21) 91234-5678",
		address:     "Rua das Tesouras, 123, Rio de Janeiro",
		description: "Cortes clássicos e modernos com a melhor navalha da cidade.",
		owner:       "Carlos Dono",
		email:       "admin@barbearia.com",
		open:        "09:00",
		close:       "18:00",
		services: []seedService{
			{"Corte Masculino", "Corte clássico ou moderno, tesoura e máquina.", 45, 50, true},
			{"Barba Tradicional", "Toalha quente, navalha e produtos premium.", 30, 35, true},
			{"Combo Corte + Barba", "O pacote completo para um visual impecável.", 75, 75, true},
			{"Hidratação Capilar", "Tratamento para fortalecer e dar brilho.", 30, 40, false},
		},
		barbers: []seedBarber{
			{name: "Zé da Navalha", days: []int{1, 2}, start: "09:00", end: "18:00", services: []int{0, 2}},
			{name: "Roberto Tesoura", days: []int{3, 4}, start: "10:00", end: "19:00", services: []int{0, 1}},
		},
	},
	{
		name:        "Navalha VIP Club",
		slug:        "navalha-vip-club",
		phone:       "(31) 99999-8888",
		address:     "Avenida Principal, 789, Belo Horizonte",
		description: "Experiência premium para o homem que se cuida.",
		owner:       "Ana Estilista",
		email:       "vip@navalha.com",
		open:        "10:00",
		close:       "20:00",
		services: []seedService{
			{"Corte VIP", "Atendimento exclusivo com consultoria de imagem.", 60, 120, true},
			{"Barboterapia Premium", "Ritual completo de cuidados para a barba.", 45, 90, true},
		},
		barbers: []seedBarber{
			{name: "Mestre Arthur", days: []int{1}, start: "10:00", end: "20:00", services: []int{0, 1}},
		},
	},
}

const demoPassword = "password123"

// Seed insere as barbearias de demonstração. Barbearia com o mesmo slug já
// existente é mantida como está.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for _, s := range demoShops {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing models.Barbershop
			err := tx.Where("slug = ?", s.slug).First(&existing).Error
			if err == nil {
				log.Info("seed skipped, barbershop exists", zap.String("slug", s.slug))
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			return seedOne(tx, s, string(hashed))
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.slug, err)
		}
	}

	return nil
}

func seedOne(tx *gorm.DB, s seedShop, passwordHash string) error {
	shop := models.Barbershop{
		Name:        s.name,
		Slug:        s.slug,
		Phone:       s.phone,
		Address:     s.address,
		Description: s.description,
		Timezone:    timezone.Default(),
	}
	if err := tx.Create(&shop).Error; err != nil {
		return err
	}

	owner := models.User{
		BarbershopID: shop.ID,
		Name:         s.owner,
		Email:        s.email,
		PasswordHash: passwordHash,
		Phone:        s.phone,
		Role:         "owner",
	}
	if err := tx.Create(&owner).Error; err != nil {
		return err
	}

	hours := models.DefaultWorkingHours(shop.ID)
	for i := range hours {
		hours[i].StartTime = s.open
		hours[i].EndTime = s.close
	}
	if err := tx.Create(&hours).Error; err != nil {
		return err
	}

	services := make([]models.Service, 0, len(s.services))
	for _, sv := range s.services {
		services = append(services, models.Service{
			BarbershopID: shop.ID,
			Name:         sv.name,
			Description:  sv.description,
			DurationMin:  sv.duration,
			Price:        sv.price,
			Active:       sv.active,
		})
	}
	if err := tx.Create(&services).Error; err != nil {
		return err
	}
	// default:true do gorm ignora o false na criação
	for _, sv := range services {
		if !sv.Active {
			if err := tx.Model(&sv).Update("active", false).Error; err != nil {
				return err
			}
		}
	}

	for _, b := range s.barbers {
		barber := models.Barber{BarbershopID: shop.ID, Name: b.name}
		for _, day := range b.days {
			barber.Availability = append(barber.Availability, models.BarberAvailability{
				Weekday:   day,
				StartTime: b.start,
				EndTime:   b.end,
			})
		}
		for _, idx := range b.services {
			barber.Services = append(barber.Services, services[idx])
		}
		if err := tx.Create(&barber).Error; err != nil {
			return err
		}
	}

	return nil
}
