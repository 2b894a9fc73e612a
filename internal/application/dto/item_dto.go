package dto

import "time"

// ItemRequest entrada para crear o reemplazar un artículo (POST y PUT comparten forma).
// Los campos opcionales son punteros: nil distingue "ausente" de valor cero.
type ItemRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	CategoryID   *int64  `json:"category_id"`
	SizeType     string  `json:"size_type" validate:"required,oneof=small large"`
	Quantity     *int    `json:"quantity" validate:"omitempty,min=0"`
	Source       *string `json:"source"`
	Location     *string `json:"location"`
	PurchaseDate *string `json:"purchase_date"` // formato YYYY-MM-DD
	Notes        *string `json:"notes"`
}

// ItemResponse salida de un artículo. category_name/category_icon vienen del JOIN
// con categories y faltan cuando el artículo no tiene categoría.
type ItemResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CategoryID   *int64    `json:"category_id"`
	CategoryName *string   `json:"category_name,omitempty"`
	CategoryIcon *string   `json:"category_icon,omitempty"`
	SizeType     string    `json:"size_type"`
	Quantity     int       `json:"quantity"`
	Source       *string   `json:"source"`
	Location     *string   `json:"location"`
	Notes        *string   `json:"notes"`
	PurchaseDate *string   `json:"purchase_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ItemFilterRequest query params crudos de GET /api/items, antes de tipar y validar.
type ItemFilterRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	SizeType string `query:"size_type"`
}
