package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/frenetico9/Corte-Digital/internal/dto"
	"github.com/frenetico9/Corte-Digital/internal/httperr"
	"github.com/frenetico9/Corte-Digital/internal/httpresp"
	"github.com/frenetico9/Corte-Digital/internal/middleware"
	"github.com/frenetico9/Corte-Digital/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	barbershopID := middleware.BarbershopID(c)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Where("barbershop_id = ?", barbershopID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// HISTORY
// ======================================================

// History traz os agendamentos do cliente, do mais recente ao mais antigo.
func (h *ClientHandler) History(c *gin.Context) {
	barbershopID := middleware.BarbershopID(c)

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND barbershop_id = ?", c.Param("id"), barbershopID).
		First(&client).Error; err != nil {

		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var aps []models.Appointment
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Client").
		Preload("Barber").
		Preload("Services").
		Where("barbershop_id = ? AND client_id = ?", barbershopID, client.ID).
		Order("start_time DESC").
		Limit(100).
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_history", "Erro ao buscar histórico.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":       client,
		"appointments": dto.FromAppointments(aps),
	})
}
