package entity

import "time"

// Category representa una categoría de artículos. Datos de referencia de solo lectura:
// se siembran con cmd/seed y la API no expone mutaciones sobre ellas.
type Category struct {
	ID        int64
	Name      string // clave interna corta, ej. "electronics"
	Icon      string // clave de icono para la UI
	CreatedAt time.Time
}
