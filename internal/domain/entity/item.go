package entity

import "time"

// SizeType clasifica el tamaño físico de un artículo. Solo hay dos valores.
type SizeType string

const (
	SizeSmall SizeType = "small"
	SizeLarge SizeType = "large"
)

// Valid indica si el valor pertenece a la enumeración.
func (s SizeType) Valid() bool {
	return s == SizeSmall || s == SizeLarge
}

// Item representa un artículo del inventario doméstico.
// CategoryID en nil significa "sin categoría". ID, CreatedAt y UpdatedAt los asigna la base de datos.
type Item struct {
	ID           int64
	Name         string
	CategoryID   *int64
	SizeType     SizeType
	Quantity     int
	Source       *string
	Location     *string
	Notes        *string
	PurchaseDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Poblados por el LEFT JOIN con categories en los listados; nil si el artículo no tiene categoría.
	CategoryName *string
	CategoryIcon *string
}
