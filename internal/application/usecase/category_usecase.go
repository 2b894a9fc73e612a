package usecase

import (
	"context"

	"github.com/cloudmoonocus/home-inventory/internal/application/dto"
	"github.com/cloudmoonocus/home-inventory/internal/domain/catalog"
	"github.com/cloudmoonocus/home-inventory/internal/domain/repository"
)

// CategoryUseCase listado de categorías (datos de referencia, solo lectura).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías ordenadas por nombre, con la etiqueta
// localizada y la clave de icono resueltas desde el catálogo estático.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.CategoryResponse{
			ID:          cat.ID,
			Name:        cat.Name,
			DisplayName: catalog.Label(cat.Name),
			Icon:        catalog.Icon(cat.Icon),
			CreatedAt:   cat.CreatedAt,
		})
	}
	return out, nil
}
