package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
	"github.com/frenetico9/Corte-Digital/internal/dto"
	"github.com/frenetico9/Corte-Digital/internal/httperr"
	"github.com/frenetico9/Corte-Digital/internal/timezone"
	"github.com/frenetico9/Corte-Digital/internal/usecase/appointment"
)

// ======================================================
// Consulta de horários (pública e privada)
// ======================================================
// ?date=YYYY-MM-DD obrigatório; duração por ?service_ids=1,2 ou ?duration=45;
// ?barber_id= opcional.

func parseUintList(raw string) ([]uint, error) {
	var out []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, uint(v))
	}
	return out, nil
}

func parseOptionalUint(raw string) (*uint, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	id := uint(v)
	return &id, nil
}

func writeAvailability(c *gin.Context, uc *appointment.GetAvailability, barbershopID uint) {
	ctx := c.Request.Context()

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}
	date, err := timezone.ParseDate(dateStr, timezone.Location(""))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	barberID, err := parseOptionalUint(c.Query("barber_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var duration int
	switch {
	case c.Query("service_ids") != "":
		ids, err := parseUintList(c.Query("service_ids"))
		if err != nil {
			httperr.BadRequest(c, "invalid_service_ids", "Serviços inválidos.")
			return
		}
		if duration, err = uc.ServiceDuration(ctx, barbershopID, ids); err != nil {
			httperr.Respond(c, err)
			return
		}
	case c.Query("duration") != "":
		if duration, err = strconv.Atoi(c.Query("duration")); err != nil {
			httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
			return
		}
	default:
		httperr.Respond(c, &schedule.InvalidArgumentError{Field: "duration_minutes", Reason: "service_ids or duration is required"})
		return
	}

	slots, err := uc.Execute(ctx, domain.AvailabilityInput{
		BarbershopID:    barbershopID,
		DurationMinutes: duration,
		Date:            date,
		BarberID:        barberID,
	})
	if err != nil {
		_ = c.Error(err)
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, dto.AvailabilityResponse{
		Date:            dateStr,
		DurationMinutes: duration,
		BarberID:        barberID,
		Slots:           slots,
	})
}
