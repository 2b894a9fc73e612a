package repository

import (
	"context"

	"github.com/cloudmoonocus/home-inventory/internal/domain/entity"
)

// ItemFilter filtros ya tipados y validados para el listado de artículos.
// Un campo en su valor cero significa "sin filtro"; los filtros presentes se combinan con AND.
type ItemFilter struct {
	Search     string          // coincidencia parcial sin distinguir mayúsculas en name/location/source/notes
	CategoryID *int64          // igualdad exacta sobre category_id
	SizeType   entity.SizeType // igualdad exacta, solo small o large
}

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	List(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int64) error
}
