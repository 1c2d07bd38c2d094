package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/frenetico9/Corte-Digital/internal/httperr"
	"github.com/frenetico9/Corte-Digital/internal/httpresp"
	"github.com/frenetico9/Corte-Digital/internal/middleware"
	"github.com/frenetico9/Corte-Digital/internal/models"
	"github.com/frenetico9/Corte-Digital/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type AuditLogsQuery struct {
	Action   string `form:"action"`
	Entity   string `form:"entity"`
	EntityID *uint  `form:"entity_id"`
	From     string `form:"from"` // YYYY-MM-DD, no fuso da barbearia
	To       string `form:"to"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	barbershopID := middleware.BarbershopID(c)
	ctx := c.Request.Context()

	var query AuditLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, "invalid_request", "Filtros inválidos.")
		return
	}

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 || query.Limit > 200 {
		query.Limit = 50
	}

	var shop models.Barbershop
	if err := h.db.WithContext(ctx).First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}
	loc := timezone.Location(shop.Timezone)

	// --------------------------------------------------
	// Query base (sempre protegido por barbershop)
	// --------------------------------------------------

	q := h.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("barbershop_id = ?", barbershopID)

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if query.Action != "" {
		q = q.Where("action = ?", query.Action)
	}

	if query.Entity != "" {
		q = q.Where("entity = ?", query.Entity)
	}

	if query.EntityID != nil {
		q = q.Where("entity_id = ?", *query.EntityID)
	}

	if query.From != "" {
		from, err := timezone.ParseDate(query.From, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Data inicial inválida.")
			return
		}
		q = q.Where("created_at >= ?", from)
	}

	if query.To != "" {
		to, err := timezone.ParseDate(query.To, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Data final inválida.")
			return
		}
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(query.Limit).
		Offset((query.Page - 1) * query.Limit).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, logs, query.Page, query.Limit, total)
}
