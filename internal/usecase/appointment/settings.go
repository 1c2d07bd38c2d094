package appointment

import (
	"time"

	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
)

// Settings são os parâmetros de agenda que vêm da configuração.
type Settings struct {
	StepMinutes int
	Mode        schedule.CapacityMode
	// Timeout limita a leitura de expediente, barbeiros e agendamentos.
	Timeout time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		StepMinutes: schedule.DefaultStepMinutes,
		Mode:        schedule.CapacityHeadcount,
		Timeout:     5 * time.Second,
	}
}
