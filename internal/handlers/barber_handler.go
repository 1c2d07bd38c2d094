package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/frenetico9/Corte-Digital/internal/audit"
	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
	"github.com/frenetico9/Corte-Digital/internal/httperr"
	"github.com/frenetico9/Corte-Digital/internal/middleware"
	"github.com/frenetico9/Corte-Digital/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	db    *gorm.DB
	cache domain.SlotCache
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewBarberHandler(
	db *gorm.DB,
	cache domain.SlotCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *BarberHandler {
	return &BarberHandler{db: db, cache: cache, audit: audit, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type BarberAvailabilityRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type BarberRequest struct {
	Name         string                      `json:"name" binding:"required"`
	Availability []BarberAvailabilityRequest `json:"availability" binding:"dive"`
	ServiceIDs   []uint                      `json:"service_ids"`
}

var errUnknownService = &schedule.NotFoundError{Entity: "service"}

// ======================================================
// LIST
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	barbershopID := middleware.BarbershopID(c)

	var barbers []models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Availability", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday ASC, start_time ASC")
		}).
		Preload("Services").
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	barbershopID := middleware.BarbershopID(c)

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	availability, ok := barberAvailability(c, req.Availability)
	if !ok {
		return
	}

	barber := models.Barber{
		BarbershopID: barbershopID,
		Name:         req.Name,
		Availability: availability,
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		services, err := shopServices(tx, barbershopID, req.ServiceIDs)
		if err != nil {
			return err
		}
		barber.Services = services
		return tx.Create(&barber).Error
	})
	if !h.writeOK(c, err) {
		return
	}

	h.changed(c, "barber_created", barber.ID)
	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	barbershopID := middleware.BarbershopID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	availability, ok := barberAvailability(c, req.Availability)
	if !ok {
		return
	}

	var barber models.Barber
	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND barbershop_id = ?", id, barbershopID).First(&barber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &schedule.NotFoundError{Entity: "barber", ID: id}
			}
			return err
		}

		services, err := shopServices(tx, barbershopID, req.ServiceIDs)
		if err != nil {
			return err
		}

		barber.Name = req.Name
		if err := tx.Model(&barber).Update("name", barber.Name).Error; err != nil {
			return err
		}

		// janelas e serviços são substituídos por inteiro
		if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.BarberAvailability{}).Error; err != nil {
			return err
		}
		for i := range availability {
			availability[i].BarberID = barber.ID
		}
		if len(availability) > 0 {
			if err := tx.Create(&availability).Error; err != nil {
				return err
			}
		}
		barber.Availability = availability

		if err := tx.Model(&barber).Association("Services").Replace(services); err != nil {
			return err
		}
		barber.Services = services
		return nil
	})
	if !h.writeOK(c, err) {
		return
	}

	h.changed(c, "barber_updated", barber.ID)
	c.JSON(http.StatusOK, barber)
}

// ======================================================
// DELETE
// ======================================================

func (h *BarberHandler) Delete(c *gin.Context) {
	barbershopID := middleware.BarbershopID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var barber models.Barber
	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND barbershop_id = ?", id, barbershopID).First(&barber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &schedule.NotFoundError{Entity: "barber", ID: id}
			}
			return err
		}
		if err := tx.Model(&barber).Association("Services").Clear(); err != nil {
			return err
		}
		if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.BarberAvailability{}).Error; err != nil {
			return err
		}
		return tx.Delete(&barber).Error
	})
	if !h.writeOK(c, err) {
		return
	}

	h.changed(c, "barber_deleted", barber.ID)
	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func barberAvailability(c *gin.Context, in []BarberAvailabilityRequest) ([]models.BarberAvailability, bool) {
	out := make([]models.BarberAvailability, 0, len(in))
	for _, a := range in {
		if _, err := schedule.NewBarberAvailability(a.Weekday, a.StartTime, a.EndTime); err != nil {
			httperr.Respond(c, err)
			return nil, false
		}
		out = append(out, models.BarberAvailability{
			Weekday:   a.Weekday,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		})
	}
	return out, true
}

func shopServices(tx *gorm.DB, barbershopID uint, ids []uint) ([]models.Service, error) {
	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := tx.Where("barbershop_id = ? AND id IN ?", barbershopID, ids).Find(&services).Error; err != nil {
		return nil, err
	}
	if len(services) != len(uniqueUints(ids)) {
		return nil, errUnknownService
	}
	return services, nil
}

func uniqueUints(ids []uint) map[uint]struct{} {
	out := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func (h *BarberHandler) writeOK(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}

	var notFound *schedule.NotFoundError
	if errors.As(err, &notFound) {
		httperr.Respond(c, err)
		return false
	}

	h.log.Error("barber write failed", zap.Uint("barbershop_id", middleware.BarbershopID(c)), zap.Error(err))
	httperr.Internal(c, "failed_to_save_barber", "Erro ao salvar barbeiro.")
	return false
}

func (h *BarberHandler) changed(c *gin.Context, action string, barberID uint) {
	barbershopID := middleware.BarbershopID(c)
	userID := middleware.UserID(c)

	invalidateShop(c, h.cache, h.log, barbershopID)

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       action,
		Entity:       "barber",
		EntityID:     &barberID,
	})
}
