package repository

import (
	"context"

	"github.com/cloudmoonocus/home-inventory/internal/domain/entity"
)

// InventoryTotals agregados globales sobre la tabla de artículos.
type InventoryTotals struct {
	TotalItems    int64 // count(*) de filas
	TotalQuantity int64 // suma de cantidades, 0 si no hay filas
	SmallItems    int64
	LargeItems    int64
}

// CategoryUsage uso de una categoría: cuántos artículos la referencian y cuántas unidades suman.
// Incluye categorías sin artículos (count y quantity en 0).
type CategoryUsage struct {
	Name     string
	Icon     string
	Count    int64
	Quantity int64
}

// StatsRepository consultas de solo lectura para las estadísticas del inventario.
type StatsRepository interface {
	Totals(ctx context.Context) (InventoryTotals, error)
	CategoryBreakdown(ctx context.Context) ([]CategoryUsage, error)
	RecentItems(ctx context.Context, limit int) ([]*entity.Item, error)
}
