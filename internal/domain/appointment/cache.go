package appointment

import "context"

// SlotCache guarda listas de horários candidatas, antes do corte de
// "agora". Escritas de agenda invalidam o dia; mudanças de expediente ou
// de barbeiros invalidam a barbearia inteira.
type SlotCache interface {
	Get(ctx context.Context, key SlotKey) ([]string, bool, error)
	Set(ctx context.Context, key SlotKey, slots []string) error
	InvalidateDay(ctx context.Context, barbershopID uint, date string) error
	InvalidateShop(ctx context.Context, barbershopID uint) error
}
