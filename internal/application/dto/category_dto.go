package dto

import "time"

// CategoryResponse salida de una categoría. display_name es la etiqueta localizada
// resuelta desde el catálogo estático (fallback: el nombre crudo).
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}
