package cache

import (
	"context"

	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
)

// Noop é usado quando REDIS_ADDR não está configurado.
type Noop struct{}

func (Noop) Get(context.Context, domain.SlotKey) ([]string, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, domain.SlotKey, []string) error         { return nil }
func (Noop) InvalidateDay(context.Context, uint, string) error           { return nil }
func (Noop) InvalidateShop(context.Context, uint) error                  { return nil }

var _ domain.SlotCache = Noop{}
