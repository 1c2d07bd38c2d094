package handlers

import (
	"net/http"

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

type WorkingHoursHandler struct {
	db    *gorm.DB
	cache domain.SlotCache
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewWorkingHoursHandler(
	db *gorm.DB,
	cache domain.SlotCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, cache: cache, audit: audit, log: log}
}

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barbershopID := middleware.BarbershopID(c)

	var hours []models.WorkingHours
	if err := h.db.WithContext(c.Request.Context()).
		Where("barbershop_id = ?", barbershopID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar horário de funcionamento.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barbershopID := middleware.BarbershopID(c)
	userID := middleware.UserID(c)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	seen := make(map[int]bool, len(req.Days))
	toCreate := make([]models.WorkingHours, 0, len(req.Days))
	for _, d := range req.Days {
		if seen[d.Weekday] {
			httperr.BadRequest(c, "duplicated_weekday", "Dia da semana repetido.")
			return
		}
		seen[d.Weekday] = true

		// horário malformado é recusado na escrita
		if _, err := schedule.NewWorkingHoursWindow(d.Weekday, d.IsOpen, d.StartTime, d.EndTime); err != nil {
			httperr.Respond(c, err)
			return
		}

		toCreate = append(toCreate, models.WorkingHours{
			BarbershopID: barbershopID,
			Weekday:      d.Weekday,
			IsOpen:       d.IsOpen,
			StartTime:    d.StartTime,
			EndTime:      d.EndTime,
		})
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barbershop_id = ?", barbershopID).Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		h.log.Error("working hours update failed", zap.Uint("barbershop_id", barbershopID), zap.Error(err))
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar horário de funcionamento.")
		return
	}

	invalidateShop(c, h.cache, h.log, barbershopID)

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "working_hours_updated",
		Entity:       "barbershop",
		EntityID:     &barbershopID,
		Metadata:     map[string]any{"days": len(toCreate)},
	})

	c.JSON(http.StatusOK, toCreate)
}

// invalidateShop descarta os horários em cache da barbearia inteira. Falha
// de cache não derruba a escrita: o TTL cobre o resto.
func invalidateShop(c *gin.Context, cache domain.SlotCache, log *zap.Logger, barbershopID uint) {
	if err := cache.InvalidateShop(c.Request.Context(), barbershopID); err != nil {
		log.Warn("slot cache invalidation failed",
			zap.Uint("barbershop_id", barbershopID),
			zap.Error(err),
		)
	}
}
