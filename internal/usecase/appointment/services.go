package appointment

import (
	"context"
	"slices"

	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
	"github.com/frenetico9/Corte-Digital/internal/models"
)

// resolveServices carrega os serviços ativos pedidos, ordenados por id.
// Ids repetidos contam uma vez.
func resolveServices(
	ctx context.Context,
	repo domain.Repository,
	barbershopID uint,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return nil, &schedule.InvalidArgumentError{Field: "service_ids", Reason: "at least one service is required"}
	}

	unique := slices.Compact(slices.Sorted(slices.Values(ids)))

	rows, err := repo.ListServices(ctx, barbershopID, unique)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Service, len(rows))
	for _, s := range rows {
		byID[s.ID] = s
	}

	out := make([]models.Service, 0, len(unique))
	for _, id := range unique {
		s, ok := byID[id]
		if !ok {
			return nil, &schedule.NotFoundError{Entity: "service", ID: id}
		}
		out = append(out, s)
	}
	return out, nil
}

func serviceTotals(services []models.Service) (minutes int, price float64) {
	for _, s := range services {
		minutes += s.DurationMin
		price += s.Price
	}
	return minutes, price
}
