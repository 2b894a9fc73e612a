package repository

import (
	"context"

	"github.com/cloudmoonocus/home-inventory/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las categorías son datos de referencia: solo lectura desde la API.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
}
