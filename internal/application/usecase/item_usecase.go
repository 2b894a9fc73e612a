package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cloudmoonocus/home-inventory/internal/application/dto"
	"github.com/cloudmoonocus/home-inventory/internal/domain"
	"github.com/cloudmoonocus/home-inventory/internal/domain/entity"
	"github.com/cloudmoonocus/home-inventory/internal/domain/repository"
)

const purchaseDateLayout = "2006-01-02"

// ItemUseCase casos de uso CRUD para artículos del inventario.
// Valida y normaliza la entrada antes de tocar el repositorio; el PUT es reemplazo
// completo de campos, no merge parcial.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// ParseFilter convierte los query params crudos en un filtro tipado.
// Cada filtro se normaliza o descarta de forma independiente: una categoría no
// numérica o un size_type fuera de la enumeración se ignoran, nunca son error.
func ParseFilter(in dto.ItemFilterRequest) repository.ItemFilter {
	filter := repository.ItemFilter{Search: strings.TrimSpace(in.Search)}

	if in.Category != "" {
		if id, err := strconv.ParseInt(in.Category, 10, 64); err == nil {
			filter.CategoryID = &id
		}
	}
	if st := entity.SizeType(in.SizeType); st.Valid() {
		filter.SizeType = st
	}
	return filter
}

// List devuelve los artículos que pasan el filtro, más recientes primero.
func (uc *ItemUseCase) List(ctx context.Context, in dto.ItemFilterRequest) ([]dto.ItemResponse, error) {
	items, err := uc.repo.List(ctx, ParseFilter(in))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Create valida, normaliza y persiste un artículo nuevo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := itemFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update reemplaza todos los campos mutables del artículo indicado.
// Misma validación que Create; domain.ErrNotFound si el ID no existe.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := itemFromRequest(in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un artículo. domain.ErrNotFound si el ID no existe.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// itemFromRequest valida los campos requeridos y normaliza los opcionales:
// quantity ausente pasa a 1, strings vacíos pasan a NULL, la fecha se parsea YYYY-MM-DD.
// Toda la validación ocurre aquí, antes de cualquier acceso al almacén.
func itemFromRequest(in dto.ItemRequest) (*entity.Item, error) {
	if strings.TrimSpace(in.Name) == "" || in.SizeType == "" {
		return nil, domain.ErrInvalidInput
	}
	sizeType := entity.SizeType(in.SizeType)
	if !sizeType.Valid() {
		return nil, domain.ErrInvalidInput
	}

	quantity := 1
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		quantity = *in.Quantity
	}

	var purchaseDate *time.Time
	if in.PurchaseDate != nil && *in.PurchaseDate != "" {
		d, err := time.Parse(purchaseDateLayout, *in.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: purchase_date", domain.ErrInvalidInput)
		}
		purchaseDate = &d
	}

	var categoryID *int64
	if in.CategoryID != nil && *in.CategoryID > 0 {
		categoryID = in.CategoryID
	}

	return &entity.Item{
		Name:         strings.TrimSpace(in.Name),
		CategoryID:   categoryID,
		SizeType:     sizeType,
		Quantity:     quantity,
		Source:       normalizeText(in.Source),
		Location:     normalizeText(in.Location),
		Notes:        normalizeText(in.Notes),
		PurchaseDate: purchaseDate,
	}, nil
}

// normalizeText convierte strings vacíos en NULL.
func normalizeText(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	var purchaseDate *string
	if it.PurchaseDate != nil {
		d := it.PurchaseDate.Format(purchaseDateLayout)
		purchaseDate = &d
	}
	return &dto.ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		CategoryID:   it.CategoryID,
		CategoryName: it.CategoryName,
		CategoryIcon: it.CategoryIcon,
		SizeType:     string(it.SizeType),
		Quantity:     it.Quantity,
		Source:       it.Source,
		Location:     it.Location,
		Notes:        it.Notes,
		PurchaseDate: purchaseDate,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
