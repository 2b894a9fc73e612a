package dto

// StatsResponse respuesta de GET /api/stats. Derivada bajo demanda, nunca persistida.
// Los slices siempre se serializan como arreglos (vacíos, no null) con inventario vacío.
type StatsResponse struct {
	TotalItems        int64              `json:"totalItems"`
	TotalQuantity     int64              `json:"totalQuantity"`
	SmallItems        int64              `json:"smallItems"`
	LargeItems        int64              `json:"largeItems"`
	CategoryBreakdown []CategoryUsageDTO `json:"categoryBreakdown"`
	RecentItems       []ItemResponse     `json:"recentItems"`
}

// CategoryUsageDTO una fila del desglose por categoría, ordenado por count descendente.
// Incluye categorías con cero artículos.
type CategoryUsageDTO struct {
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	Icon          string `json:"icon"`
	Count         int64  `json:"count"`
	TotalQuantity int64  `json:"total_quantity"`
}
